package gutter

// Applier stores a fixed-size sequence and combines a value into every
// element of a contiguous range in O(log n). Propagation is lazy: an internal
// node holds a pending delta meant for its entire subtree, combined in but
// not yet pushed down, and a leaf's true value is its slot combined with
// every pending delta on its root-to-leaf path. Pending deltas are resolved
// (consolidated down to the children) only when an operation needs a leaf
// slot to be authoritative.
//
// Read computes a non-mutating fold of the root-to-leaf path; only Assign and
// ReadRange consolidate. An Applier is nonetheless not safe for concurrent
// use without external synchronization, since those two resolve pending
// state in place.
type Applier[T any] struct {
	tree[T]
}

// NewApplier returns an Applier over n leaves, all holding op's identity.
func NewApplier[T any](n uint64, op Op[T]) *Applier[T] {
	return &Applier[T]{newTree(n, op)}
}

// Apply combines x into leaf k in O(1). A point write needs no
// consolidation: the pending deltas above k apply to the leaf's combined
// value just as they did to its old one.
func (a *Applier[T]) Apply(k uint64, x T) {
	a.checkLeaf(k)
	i := LeafSlot(a.n, k)
	a.heap[i] = a.op.Combine(a.heap[i], x)
}

// Assign overwrites leaf k with x in O(log n). The pending deltas on k's
// root-to-leaf path would otherwise still apply to the new value, so they
// are first pushed out of the path, root first: a delta cannot be pushed
// further down before its own parent's delta has reached it.
func (a *Applier[T]) Assign(k uint64, x T) {
	a.checkLeaf(k)
	i := LeafSlot(a.n, k)
	WalkAncestorsRootDown(Parent(i), a.consolidate)
	a.heap[i] = x
}

// Read returns the value of leaf k in O(log n), folding the leaf slot with
// every pending delta on its root-to-leaf path. The fold is non-mutating;
// pending state is left exactly as found.
func (a *Applier[T]) Read(k uint64) T {
	a.checkLeaf(k)
	acc := a.op.Identity()
	WalkAncestorsLeafUp(LeafSlot(a.n, k), func(i uint64) {
		acc = a.op.Combine(acc, a.heap[i])
	})
	return acc
}

// ApplyRange combines x into every leaf of the half-open range [k1, k2) in
// O(log n), by combining x into the pending value of each minimal covering
// ancestor instead of visiting the leaves below them. The empty range is a
// no-op.
func (a *Applier[T]) ApplyRange(k1, k2 uint64, x T) {
	a.checkRange(k1, k2)
	MinCoveringAncestors(a.n, k1, k2, func(i uint64) {
		a.heap[i] = a.op.Combine(a.heap[i], x)
	})
}

// ReadRange resolves the leaves of the half-open range [k1, k2) and streams
// them into sink in logical order, in O(k + log n - log k). Every pending
// delta over the range is first consolidated down to the leaf row, root
// first; the visited leaf slots are authoritative afterwards. The empty
// range writes nothing to sink.
func (a *Applier[T]) ReadRange(k1, k2 uint64, sink Sink[T]) {
	a.checkRange(k1, k2)
	if k1 == k2 {
		return
	}
	i1 := LeafSlot(a.n, k1)
	i2 := LeafSlot(a.n, k2-1)
	WalkRangeAncestorsRootDown(a.n, Parent(i1), Parent(i2), a.consolidate)
	LeavesInOrder(a.n, i1, i2, func(i uint64) {
		sink(a.heap[i])
	})
}

// ReadSlice returns the resolved values of the leaves [k1, k2).
func (a *Applier[T]) ReadSlice(k1, k2 uint64) []T {
	a.checkRange(k1, k2)
	values := make([]T, 0, k2-k1)
	a.ReadRange(k1, k2, SliceSink(&values))
	return values
}

// consolidate pushes i's pending delta into both children and resets i to
// the identity, leaving i clean. i must be an internal node.
func (a *Applier[T]) consolidate(i uint64) {
	l, r := LeftChild(i), RightChild(i)
	a.heap[l] = a.op.Combine(a.heap[l], a.heap[i])
	a.heap[r] = a.op.Combine(a.heap[r], a.heap[i])
	a.heap[i] = a.op.Identity()
}
