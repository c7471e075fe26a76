// Package guttertesting provides a reusable context for randomized
// cross-checking of the gutter structures against a naive reference array.
package guttertesting

import (
	"math/rand"
	"testing"

	"go.uber.org/zap"
)

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed value
	// so that the generated operation interleavings are the same from run to
	// run.
	Seed     int64
	Size     uint64 // leaf count; deliberately default to a non power of two
	Rounds   int    // mutation rounds per checker
	MaxDelta int64  // point/range deltas drawn from [1, MaxDelta]

	TestLabelPrefix string
}

type TestContext struct {
	T    *testing.T
	Log  *zap.SugaredLogger
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.Size == 0 {
		cfg.Size = 1000
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = 200
	}
	if cfg.MaxDelta == 0 {
		cfg.MaxDelta = 200000
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return TestContext{
		T:    t,
		Log:  log.Sugar().Named(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
}

// RandLeaf returns a uniformly random leaf index.
func (c *TestContext) RandLeaf() uint64 {
	return uint64(c.Rand.Int63n(int64(c.Cfg.Size)))
}

// RandRange returns a uniformly random valid half-open leaf range, possibly
// empty.
func (c *TestContext) RandRange() (uint64, uint64) {
	k1 := uint64(c.Rand.Int63n(int64(c.Cfg.Size) + 1))
	k2 := k1 + uint64(c.Rand.Int63n(int64(c.Cfg.Size)-int64(k1)+1))
	return k1, k2
}

// RandDelta returns a delta in [1, MaxDelta].
func (c *TestContext) RandDelta() int64 {
	return c.Rand.Int63n(c.Cfg.MaxDelta) + 1
}
