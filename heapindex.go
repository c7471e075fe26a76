package gutter

// Navigation primitives for the dense, one based heap array. These are pure
// index arithmetic; they know nothing about what is stored at a node. None of
// them validate their arguments (see the package remarks on the burden of
// knowledge placed on callers of the low level functions).

// Parent returns the heap index of i's parent. Parent(1) is 0, which is not a
// node; walks use that as their termination condition.
func Parent(i uint64) uint64 {
	return i / 2
}

// LeftChild returns the heap index of i's left child.
func LeftChild(i uint64) uint64 {
	return 2 * i
}

// RightChild returns the heap index of i's right child.
func RightChild(i uint64) uint64 {
	return 2*i + 1
}

// IsLeftChild reports whether i is the left child of its parent.
func IsLeftChild(i uint64) bool {
	return i%2 == 0
}

// FirstOfRow returns the greatest power of two less than or equal to i, which
// is the heap index of the first node in i's tree row. i must be >= 1.
func FirstOfRow(i uint64) uint64 {
	return uint64(1) << Log2Uint64(i)
}

// AncestorInRow returns i's ancestor in the row beginning at heap index
// rowFirst. rowFirst must be the first index of a row at or above i's.
func AncestorInRow(i, rowFirst uint64) uint64 {
	for Parent(i) >= rowFirst {
		i = Parent(i)
	}
	return i
}

// LeafSlot maps the logical leaf k (0 based, k < n) to its heap index in a
// structure over n leaves.
//
// When n is not a power of two the deepest row is only partially filled: it
// holds 2n - FirstOfRow(2n-1) slots, and the surplus leaves wrap back one row
// up, landing just after the parents of the deepest-row nodes. For n = 5 the
// deepest row holds leaves 0 and 1 at heap indices 8 and 9, and leaves 2, 3,
// 4 wrap to heap indices 5, 6, 7:
//
//	row 1            1
//	row 2        2       3
//	row 4     4    k2  k3  k4
//	row 8   k0 k1
func LeafSlot(n, k uint64) uint64 {
	deepFirst := FirstOfRow(2*n - 1)
	i := k + deepFirst
	if i >= 2*n {
		i -= n
	}
	return i
}
