package roadmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ridepath/core"
)

// WeightFn derives the cost of a road from its two endpoints.
// It must return a finite, non-negative value.
type WeightFn func(a, b core.Node) float64

// Euclidean returns the straight-line distance between a and b.
// Complexity: O(1). Never panics.
func Euclidean(a, b core.Node) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Manhattan returns |dx| + |dy| between a and b.
func Manhattan(a, b core.Node) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Constant returns a WeightFn that always yields value.
// Panics if value < 0 or is not finite.
func Constant(value float64) WeightFn {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("roadmap: Constant(%g): weight must be finite and ≥ 0", value))
	}

	return func(_, _ core.Node) float64 {
		return value
	}
}

// Option customizes graph construction.
type Option func(*config)

type config struct {
	weightFn WeightFn
}

func defaultConfig() config {
	return config{weightFn: Euclidean}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithWeightFn sets the function used for roads without an explicit weight.
// Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("roadmap: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
	}
}
