package gutter

import "fmt"

// tree is the state shared by Retriever and Applier: the op and the one based
// heap array. The two structures differ only in their propagation protocols;
// everything here is common.
type tree[T any] struct {
	op   Op[T]
	n    uint64
	heap []T // slot 0 unused
}

// newTree allocates the backing array, 2n-1 live slots, every one holding the
// identity. This is the only allocation either structure ever makes.
func newTree[T any](n uint64, op Op[T]) tree[T] {
	if op == nil {
		panic(ErrNilOp)
	}
	heap := make([]T, 2*n)
	id := op.Identity()
	for i := range heap {
		heap[i] = id
	}
	return tree[T]{op: op, n: n, heap: heap}
}

// Size returns the number of leaves, fixed at construction.
func (t *tree[T]) Size() uint64 {
	return t.n
}

func (t *tree[T]) checkLeaf(k uint64) {
	if k >= t.n {
		panic(fmt.Errorf("%w: leaf %d, size %d", ErrLeafOutOfRange, k, t.n))
	}
}

// checkRange validates the half-open leaf range [k1, k2). k1 == k2 is a
// defined no-op and passes for any k1 <= n.
func (t *tree[T]) checkRange(k1, k2 uint64) {
	if k1 > k2 {
		panic(fmt.Errorf("%w: [%d, %d)", ErrRangeInverted, k1, k2))
	}
	if k2 > t.n {
		panic(fmt.Errorf("%w: [%d, %d), size %d", ErrLeafOutOfRange, k1, k2, t.n))
	}
}
