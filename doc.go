// Package gutter provides a pair of generic array-backed structures for
// range aggregation and range update over a fixed-size sequence, under a
// caller-supplied associative operation with identity (sum, product, min,
// max, gcd, lcm and so on).
package gutter

/*

# Two structures, one engine

Both structures store their elements in the leaves of a dense, array-backed
binary tree, and keep redundant per-operation information in the internal
nodes. They differ only in which direction that information flows:

  - Retriever: eager propagation. Every internal node always equals the fold
    of its leaf subtree. Point reads are O(1), point writes and range folds
    O(log n).

  - Applier: lazy propagation. An internal node holds a pending delta meant
    for its entire subtree, combined in but not yet pushed down. Range applies
    are O(log n), point writes O(1), and reads resolve the pending deltas on
    the root-to-leaf path.

Everything they share - the leaf/heap index arithmetic and the generic tree
walks parameterised by a per-node Visitor - lives in heapindex.go and walk.go
and carries no semantics of its own.

# Heap layout

Nodes are stored at *one based* heap indices. The root is 1, and node i has
children 2i and 2i+1. A structure over n leaves occupies indices 1..2n-1 (the
backing slice reserves slot 0 unused to keep the arithmetic direct).

For n = 8 the rows are perfectly filled:

	row 1                 1
	row 2         2               3
	row 4     4       5       6       7
	row 8   8   9  10  11  12  13  14  15

and the leaves k = 0..7 are simply heap indices 8..15.

# Leaf wraparound for non-power-of-two n

n need not be a power of two. The deepest row is then only partially filled,
and the surplus leaves wrap back one row up, *after* the parents of the
deepest-row nodes. For n = 5 (heap indices 1..9):

	row 1            1
	row 2        2       3
	row 4     4    k2  k3  k4
	row 8   k0 k1

Leaves k = 0..4 live at heap indices 8, 9, 5, 6, 7. LeafSlot implements this
mapping once; every traversal that touches the leaf rows goes through it or
through LeavesInOrder, which wraps at index 2n back to the equivalent slot one
row up. This wraparound is the most delicate arithmetic in the package, which
is why it exists in exactly one place.

# Burden of knowledge

As with low-level position arithmetic elsewhere in our libraries, the index
and walk functions in this package place a burden of knowledge on the caller
in the interests of simplicity and efficiency: out-of-range or inverted
arguments yield nonsense results rather than errors. The Retriever and
Applier methods are the opinionated surface on top; they validate leaf
indices and range orientation and fail fast (see errors.go).

# Operation preconditions

The supplied Op must be associative and its Identity a two-sided identity for
Combine. Range folds additionally visit covering nodes from both flanks of the
range alternately, so Combine is expected to be commutative as well. None of
this is detectable at runtime; a violation silently yields wrong aggregates.

*/
