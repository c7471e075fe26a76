package gutter

import (
	"reflect"
	"testing"
)

func collect(walk func(Visitor)) []uint64 {
	var visited []uint64
	walk(func(i uint64) {
		visited = append(visited, i)
	})
	return visited
}

func TestWalkAncestorsLeafUp(t *testing.T) {
	tests := []struct {
		name string
		i    uint64
		want []uint64
	}{
		{"from 0 visits nothing", 0, nil},
		{"root only", 1, []uint64{1}},
		{"from 13", 13, []uint64{13, 6, 3, 1}},
		{"from 8", 8, []uint64{8, 4, 2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) { WalkAncestorsLeafUp(tt.i, v) })
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WalkAncestorsLeafUp(%d) visited %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestWalkAncestorsRootDown(t *testing.T) {
	tests := []struct {
		name string
		i    uint64
		want []uint64
	}{
		{"from 0 visits nothing", 0, nil},
		{"root only", 1, []uint64{1}},
		// the same chains as leaf-up, reversed
		{"down to 13", 13, []uint64{1, 3, 6, 13}},
		{"down to 8", 8, []uint64{1, 2, 4, 8}},
		// a power-of-two node is still included as the final visit
		{"down to 4", 4, []uint64{1, 2, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) { WalkAncestorsRootDown(tt.i, v) })
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WalkAncestorsRootDown(%d) visited %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestWalkRangeAncestorsLeafUp(t *testing.T) {
	type args struct {
		n, i1, i2 uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		// n=8: parents of leaves 10..13 are 5..6
		{"n=8 rows above 5..6", args{8, 5, 6}, []uint64{5, 6, 2, 3, 1}},
		{"n=8 single chain", args{8, 5, 5}, []uint64{5, 2, 1}},

		// n=5 wraparound: i1=4 (deep-parents row), i2=3 (row above); the
		// deepest-row segment 4..4 is visited first, then the walk rejoins at
		// row 2
		{"n=5 wrapped full range parents", args{5, 4, 3}, []uint64{4, 2, 3, 1}},
		// n=6: parents of touched leaves 9..11,6 are 4..5 and 3
		{"n=6 wrapped parents", args{6, 4, 3}, []uint64{4, 5, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) {
				WalkRangeAncestorsLeafUp(tt.args.n, tt.args.i1, tt.args.i2, v)
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WalkRangeAncestorsLeafUp(%d, %d, %d) visited %v, want %v",
					tt.args.n, tt.args.i1, tt.args.i2, got, tt.want)
			}
		})
	}
}

func TestWalkRangeAncestorsRootDown(t *testing.T) {
	type args struct {
		n, i1, i2 uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		// same node sets as the leaf-up walk, visited top row first
		{"n=8 rows above 5..6", args{8, 5, 6}, []uint64{1, 2, 3, 5, 6}},
		{"n=8 single chain", args{8, 5, 5}, []uint64{1, 2, 5}},
		{"n=5 wrapped full range parents", args{5, 4, 3}, []uint64{1, 2, 3, 4}},
		{"n=6 wrapped parents", args{6, 4, 3}, []uint64{1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) {
				WalkRangeAncestorsRootDown(tt.args.n, tt.args.i1, tt.args.i2, v)
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WalkRangeAncestorsRootDown(%d, %d, %d) visited %v, want %v",
					tt.args.n, tt.args.i1, tt.args.i2, got, tt.want)
			}
		})
	}
}

func TestMinCoveringAncestors(t *testing.T) {
	type args struct {
		n, k1, k2 uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		{"empty range visits nothing", args{8, 3, 3}, nil},
		{"inverted range visits nothing", args{8, 5, 3}, nil},
		{"full n=8 range is the root", args{8, 0, 8}, []uint64{1}},
		{"single leaf is its own cover", args{8, 3, 4}, []uint64{11}},
		{"adjacent siblings fold to parent", args{8, 2, 4}, []uint64{5}},
		// [1, 7) over n=8: leaves 9..14
		{"n=8 interior range", args{8, 1, 7}, []uint64{9, 14, 5, 6}},
		// wraparound decompositions over n=5 (leaves at 8, 9, 5, 6, 7)
		{"full n=5 range is the root", args{5, 0, 5}, []uint64{1}},
		{"n=5 tail range", args{5, 1, 5}, []uint64{9, 5, 3}},
		{"n=5 head range", args{5, 0, 3}, []uint64{2}},
		{"n=5 wrapped leaves only", args{5, 2, 5}, []uint64{5, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) {
				MinCoveringAncestors(tt.args.n, tt.args.k1, tt.args.k2, v)
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MinCoveringAncestors(%d, %d, %d) visited %v, want %v",
					tt.args.n, tt.args.k1, tt.args.k2, got, tt.want)
			}
		})
	}
}

// The covering subtrees must exactly partition the range: each range leaf
// under exactly one visited node, each outside leaf under none.
func TestMinCoveringAncestorsPartitions(t *testing.T) {
	leavesUnder := func(n, node uint64) map[uint64]bool {
		under := map[uint64]bool{}
		for k := uint64(0); k < n; k++ {
			for i := LeafSlot(n, k); i > 0; i = Parent(i) {
				if i == node {
					under[k] = true
				}
			}
		}
		return under
	}
	for n := uint64(1); n <= 16; n++ {
		for k1 := uint64(0); k1 <= n; k1++ {
			for k2 := k1; k2 <= n; k2++ {
				covered := map[uint64]int{}
				MinCoveringAncestors(n, k1, k2, func(i uint64) {
					for k := range leavesUnder(n, i) {
						covered[k]++
					}
				})
				for k := uint64(0); k < n; k++ {
					want := 0
					if k >= k1 && k < k2 {
						want = 1
					}
					if covered[k] != want {
						t.Fatalf("n=%d [%d,%d): leaf %d covered %d times, want %d",
							n, k1, k2, k, covered[k], want)
					}
				}
			}
		}
	}
}

func TestLeavesInOrder(t *testing.T) {
	type args struct {
		n, i1, i2 uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		{"n=1 root leaf", args{1, 1, 1}, []uint64{1}},
		{"n=8 full row", args{8, 8, 15}, []uint64{8, 9, 10, 11, 12, 13, 14, 15}},
		{"n=8 single", args{8, 11, 11}, []uint64{11}},
		// n=5: walking off the end of the array at 10 wraps to slot 5
		{"n=5 all leaves", args{5, 8, 7}, []uint64{8, 9, 5, 6, 7}},
		{"n=5 deep leaves only", args{5, 8, 9}, []uint64{8, 9}},
		{"n=5 wrapped only", args{5, 5, 7}, []uint64{5, 6, 7}},
		{"n=6 crossing the wrap", args{6, 10, 6}, []uint64{10, 11, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(func(v Visitor) {
				LeavesInOrder(tt.args.n, tt.args.i1, tt.args.i2, v)
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LeavesInOrder(%d, %d, %d) visited %v, want %v",
					tt.args.n, tt.args.i1, tt.args.i2, got, tt.want)
			}
		})
	}
}
