package gutter

// Retriever stores a fixed-size sequence and answers folds of Op over any
// contiguous range in O(log n). Propagation is eager: at rest, every internal
// node equals Op folded over its entire leaf subtree, so writes restore that
// invariant immediately and point reads are O(1).
//
// A Retriever is not safe for concurrent mutation without external
// synchronization.
type Retriever[T any] struct {
	tree[T]
}

// NewRetriever returns a Retriever over n leaves, all holding op's identity.
func NewRetriever[T any](n uint64, op Op[T]) *Retriever[T] {
	return &Retriever[T]{newTree(n, op)}
}

// NewRetrieverFromSlice returns a Retriever over len(values) leaves holding
// values, built by a single bulk assign.
func NewRetrieverFromSlice[T any](values []T, op Op[T]) *Retriever[T] {
	r := NewRetriever(uint64(len(values)), op)
	r.AssignRange(0, uint64(len(values)), SliceSource(values))
	return r
}

// Read returns the value of leaf k in O(1): ancestors carry only redundant
// fold state, so the leaf slot is always current.
func (r *Retriever[T]) Read(k uint64) T {
	r.checkLeaf(k)
	return r.heap[LeafSlot(r.n, k)]
}

// Assign sets leaf k to x and refolds its ancestors, in O(log n).
func (r *Retriever[T]) Assign(k uint64, x T) {
	r.checkLeaf(k)
	i := LeafSlot(r.n, k)
	r.heap[i] = x
	WalkAncestorsLeafUp(Parent(i), r.refold)
}

// Apply combines x into leaf k and refolds its ancestors, in O(log n).
func (r *Retriever[T]) Apply(k uint64, x T) {
	r.checkLeaf(k)
	i := LeafSlot(r.n, k)
	r.heap[i] = r.op.Combine(r.heap[i], x)
	WalkAncestorsLeafUp(Parent(i), r.refold)
}

// Accumulate folds Op over the half-open leaf range [k1, k2) in O(log n),
// reading one node per minimal covering ancestor. The empty range returns the
// identity.
func (r *Retriever[T]) Accumulate(k1, k2 uint64) T {
	r.checkRange(k1, k2)
	acc := r.op.Identity()
	MinCoveringAncestors(r.n, k1, k2, func(i uint64) {
		acc = r.op.Combine(acc, r.heap[i])
	})
	return acc
}

// AssignRange streams k2-k1 values from src into the leaves [k1, k2) in
// logical order, then refolds every touched ancestor bottom up, in
// O(k + log n - log k). The empty range reads nothing and writes nothing.
func (r *Retriever[T]) AssignRange(k1, k2 uint64, src Source[T]) {
	r.checkRange(k1, k2)
	if k1 == k2 {
		return
	}
	i1 := LeafSlot(r.n, k1)
	i2 := LeafSlot(r.n, k2-1)
	LeavesInOrder(r.n, i1, i2, func(i uint64) {
		r.heap[i] = src()
	})
	WalkRangeAncestorsLeafUp(r.n, Parent(i1), Parent(i2), r.refold)
}

// AssignSlice assigns values to the leaves starting at k1.
func (r *Retriever[T]) AssignSlice(k1 uint64, values []T) {
	r.AssignRange(k1, k1+uint64(len(values)), SliceSource(values))
}

// refold recomputes an internal node from its children, restoring the eager
// invariant at i.
func (r *Retriever[T]) refold(i uint64) {
	r.heap[i] = r.op.Combine(r.heap[LeftChild(i)], r.heap[RightChild(i)])
}
