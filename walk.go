package gutter

// Generic tree walks. Each walk invokes a Visitor once per visited node, in
// the stated order, and carries no semantics of its own: the visitor closes
// over whatever structure state it needs. The walks that must reason about
// the partially filled deepest row take the leaf count n explicitly.

// Visitor is invoked with the heap index of each visited node.
type Visitor func(i uint64)

// WalkAncestorsLeafUp visits i and each of its ancestors, leaf end first,
// finishing at the root. i == 0 visits nothing.
func WalkAncestorsLeafUp(i uint64, visit Visitor) {
	for i > 0 {
		visit(i)
		i = Parent(i)
	}
}

// WalkAncestorsRootDown visits the root, then each node on the path down to
// and including i. i == 0 visits nothing.
func WalkAncestorsRootDown(i uint64, visit Visitor) {
	for rowFirst := uint64(1); rowFirst <= i; rowFirst *= 2 {
		visit(AncestorInRow(i, rowFirst))
	}
}

// WalkRangeAncestorsLeafUp visits, generation by generation from the deepest
// row upward, every node lying between the row-aligned images of i1 and i2
// inclusive. It is used to recompute every node bordering a contiguous leaf
// range, across every row the range spans.
//
// i1 > i2 is not an inverted range: it is how a leaf range presents when it
// wraps off the end of a partially filled deepest row (see LeafSlot). In that
// case the deepest-row segment i1..2n-1 is visited first, then i1 is lifted a
// row to rejoin i2.
func WalkRangeAncestorsLeafUp(n, i1, i2 uint64, visit Visitor) {
	if i1 > i2 {
		rowLast := AncestorInRow(2*n-1, FirstOfRow(i1))
		for j := i1; j <= rowLast; j++ {
			visit(j)
		}
		i1 = Parent(i1)
	}
	for i1 > 0 {
		for j := i1; j <= i2; j++ {
			visit(j)
		}
		i1 = Parent(i1)
		i2 = Parent(i2)
	}
}

// WalkRangeAncestorsRootDown visits the same nodes as
// WalkRangeAncestorsLeafUp but generation by generation from the root
// downward, which is the order consolidation requires: a node's pending value
// must arrive before the node itself is pushed.
//
// Rows below i2's (reachable only via the deepest-row wraparound) are bounded
// on the right by the last slot of the array, 2n-1.
func WalkRangeAncestorsRootDown(n, i1, i2 uint64, visit Visitor) {
	for rowFirst := uint64(1); rowFirst <= i1; rowFirst *= 2 {
		right := i2
		if rowFirst > i2 {
			right = 2*n - 1
		}
		for j := AncestorInRow(i1, rowFirst); j <= AncestorInRow(right, rowFirst); j++ {
			visit(j)
		}
	}
}

// MinCoveringAncestors visits the unique minimal set of heap nodes whose
// subtrees exactly partition the half-open leaf range [k1, k2): every visited
// node is an ancestor of at least one leaf in the range, every leaf in the
// range is under exactly one visited node, and no leaf outside the range is
// under any. The set has O(log n) members. k1 >= k2 visits nothing.
//
// The two range bounds climb toward their common ancestor a generation at a
// time, emitting a node whenever a bound is about to climb past a subtree
// that lies wholly inside the range: a right-branch left bound covers leaves
// the parent does not, as does a left-branch right bound. Emission therefore
// alternates between the two flanks of the range, which is why Op.Combine is
// expected to be commutative.
func MinCoveringAncestors(n, k1, k2 uint64, visit Visitor) {
	if k1 >= k2 {
		return
	}
	i1 := LeafSlot(n, k1)
	i2 := LeafSlot(n, k2-1) // inclusive bound
	for i1 != i2 {
		if !IsLeftChild(i1) {
			visit(i1)
			i1++
			if i1 == i2 {
				break
			}
		}
		i1 = Parent(i1)
		if i1 == i2 {
			break
		}
		if IsLeftChild(i2) {
			visit(i2)
			i2--
			if i1 == i2 {
				break
			}
		}
		i2 = Parent(i2)
	}
	// The bounds have met; the subtree here covers everything not yet emitted.
	visit(i1)
}

// LeavesInOrder visits the heap indices i1..i2 inclusive, left to right in
// logical leaf order, wrapping at the end of the array back to the
// equivalent slot one row up when the deepest row is partial. Both bounds
// must be leaf slots (see LeafSlot) and the range must hold at least one
// leaf.
func LeavesInOrder(n, i1, i2 uint64, visit Visitor) {
	i := i1
	end := i2 + 1
	for {
		if i == 2*n {
			i = Parent(i)
		}
		visit(i)
		i++
		if i == end {
			return
		}
	}
}
