package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/ridepath/core"
)

// Sentinel errors returned by ComputeNearest.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidSource indicates that the source ID is empty or absent from the graph.
	ErrInvalidSource = errors.New("dijkstra: invalid source node")

	// ErrInvalidGraph indicates that the graph failed structural validation.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would close every road.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoUpdates is the single Updates entry of a Step that relaxed nothing.
const NoUpdates = "-"

// TargetFunc selects the nodes that qualify as destinations.
type TargetFunc func(n core.Node) bool

// IsRole returns a TargetFunc accepting nodes tagged with r.
func IsRole(r core.Role) TargetFunc {
	return func(n core.Node) bool { return n.Role == r }
}

// IsDriver accepts driver nodes. It is the default TargetFunc.
var IsDriver = IsRole(core.RoleTarget)

// Options configures ComputeNearest.
//
// MaxDistance      – nodes whose shortest distance exceeds this value are
//
//	never finalized. Must be ≥ 0. Default +Inf (no cap).
//
// InfEdgeThreshold – roads with weight ≥ this threshold are treated as closed.
//
//	Must be > 0. Default +Inf (every road is open).
//
// OnStep           – called with every Step right after it is recorded.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	OnStep           func(Step)
}

// Option represents a functional option for configuring ComputeNearest.
type Option func(*Options)

// WithMaxDistance caps the search radius.
// Panics with ErrBadMaxDistance if max < 0 or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold closes every road whose weight is ≥ threshold.
// Panics with ErrBadInfThreshold if threshold <= 0 or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnStep registers a callback invoked with each recorded Step.
// A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// DefaultOptions returns the Options used when no Option is supplied:
// no distance cap, no closed roads, a no-op step hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		OnStep:           func(Step) {},
	}
}
