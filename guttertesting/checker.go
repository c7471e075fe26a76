package guttertesting

import (
	"github.com/stretchr/testify/require"

	"github.com/CrepeGoat/gutter"
)

// CheckRetriever drives a Retriever over int64 sums through Rounds randomized
// interleavings of point applies and range accumulates, cross-checking every
// accumulate against a naive O(n) reference slice. The structures must agree
// exactly under every valid operation sequence; the first disagreement fails
// the test.
func (c *TestContext) CheckRetriever() {
	op := gutter.Sum[int64]{}
	r := gutter.NewRetriever(c.Cfg.Size, op)
	ref := make([]int64, c.Cfg.Size)

	for round := 0; round < c.Cfg.Rounds; round++ {
		k := c.RandLeaf()
		delta := c.RandDelta()
		r.Apply(k, delta)
		ref[k] += delta

		for trial := 0; trial < 8; trial++ {
			k1, k2 := c.RandRange()
			want := int64(0)
			for _, v := range ref[k1:k2] {
				want += v
			}
			got := r.Accumulate(k1, k2)
			if got != want {
				c.Log.Infow("accumulate disagrees with reference",
					"round", round, "k1", k1, "k2", k2, "got", got, "want", want)
			}
			require.Equal(c.T, want, got, "accumulate [%d, %d) after round %d", k1, k2, round)
		}
	}

	// The aggregate state must also survive a bulk round trip.
	for k := uint64(0); k < c.Cfg.Size; k++ {
		require.Equal(c.T, ref[k], r.Read(k), "leaf %d", k)
	}
}

// CheckApplier drives an Applier over int64 sums through Rounds randomized
// interleavings of range applies, point assigns and point applies,
// cross-checking point reads and bulk reads against the reference slice.
func (c *TestContext) CheckApplier() {
	op := gutter.Sum[int64]{}
	a := gutter.NewApplier(c.Cfg.Size, op)
	ref := make([]int64, c.Cfg.Size)

	for round := 0; round < c.Cfg.Rounds; round++ {
		switch c.Rand.Intn(3) {
		case 0:
			k1, k2 := c.RandRange()
			delta := c.RandDelta()
			a.ApplyRange(k1, k2, delta)
			for k := k1; k < k2; k++ {
				ref[k] += delta
			}
		case 1:
			k := c.RandLeaf()
			v := c.RandDelta()
			a.Assign(k, v)
			ref[k] = v
		case 2:
			k := c.RandLeaf()
			delta := c.RandDelta()
			a.Apply(k, delta)
			ref[k] += delta
		}

		for trial := 0; trial < 8; trial++ {
			k := c.RandLeaf()
			require.Equal(c.T, ref[k], a.Read(k), "leaf %d after round %d", k, round)
		}

		k1, k2 := c.RandRange()
		got := a.ReadSlice(k1, k2)
		require.Equal(c.T, ref[k1:k2], got, "bulk read [%d, %d) after round %d", k1, k2, round)
	}
}
