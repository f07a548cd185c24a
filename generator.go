package cgkit

import "math/rand/v2"

// SegmentGenerator produces batches of random line segments for the clip
// kernel. Coordinates are drawn uniformly from the configured range and Z
// is always zero.
//
// A SegmentGenerator is not safe for concurrent use.
type SegmentGenerator struct {
	rng      *rand.Rand
	count    int
	min, max float64
}

// NewSegmentGenerator creates a generator. Without WithSeed or WithSource
// it is seeded from system entropy.
func NewSegmentGenerator(opts ...GeneratorOption) *SegmentGenerator {
	o := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &SegmentGenerator{
		rng:   rand.New(o.source),
		count: o.count,
		min:   o.min,
		max:   o.max,
	}
}

// Count returns the number of segments produced per batch.
func (g *SegmentGenerator) Count() int {
	return g.count
}

// Range returns the coordinate interval.
func (g *SegmentGenerator) Range() (lo, hi float64) {
	return g.min, g.max
}

// Generate returns a fresh batch of segments. The raw segments are not
// accepted: their Accepted flag is false.
func (g *SegmentGenerator) Generate() []LineSegment {
	segs := make([]LineSegment, g.count)
	for i := range segs {
		segs[i] = Seg(g.coord(), g.coord(), g.coord(), g.coord())
	}
	return segs
}

func (g *SegmentGenerator) coord() float64 {
	return g.min + g.rng.Float64()*(g.max-g.min)
}
