package cgkit

import "math/rand/v2"

// GeneratorOption configures a SegmentGenerator during creation.
// Use functional options to customize generator behavior.
//
// Example:
//
//	// Default: 15 segments in [-5, 5), seeded from system entropy
//	gen := cgkit.NewSegmentGenerator()
//
//	// Reproducible batches for tests
//	gen := cgkit.NewSegmentGenerator(cgkit.WithSeed(42), cgkit.WithCount(100))
type GeneratorOption func(*generatorOptions)

// generatorOptions holds optional configuration for SegmentGenerator creation.
type generatorOptions struct {
	count    int
	min, max float64
	source   rand.Source
}

// Generator defaults.
const (
	DefaultSegmentCount = 15
	DefaultRangeMin     = -5.0
	DefaultRangeMax     = 5.0
)

// defaultGeneratorOptions returns the default generator options.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		count:  DefaultSegmentCount,
		min:    DefaultRangeMin,
		max:    DefaultRangeMax,
		source: nil, // Seeded from system entropy if nil
	}
}

// WithCount sets the number of segments produced by each Generate call.
// Negative counts are treated as zero.
func WithCount(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.count = max(n, 0)
	}
}

// WithRange sets the half-open interval [lo, hi) from which every
// coordinate is drawn. The bounds are swapped if lo > hi.
func WithRange(lo, hi float64) GeneratorOption {
	return func(o *generatorOptions) {
		if lo > hi {
			lo, hi = hi, lo
		}
		o.min, o.max = lo, hi
	}
}

// WithSeed makes the generator deterministic: two generators created with
// the same seed and options produce identical batches.
func WithSeed(seed uint64) GeneratorOption {
	return func(o *generatorOptions) {
		o.source = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
}

// WithSource sets the random source directly.
// It overrides any earlier WithSeed.
func WithSource(src rand.Source) GeneratorOption {
	return func(o *generatorOptions) {
		o.source = src
	}
}
