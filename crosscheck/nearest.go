package crosscheck

import (
	"errors"
	"fmt"
	"math"

	"github.com/maruel/natural"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
)

// VerifyNearest runs Verify and then checks the choice of r.Target among the
// nodes matching target. A nil target means dijkstra.IsDriver.
//
// Two checks are made:
//
//   - Against an all-pairs table: r.Target is within Tolerance of the
//     closest reachable match, and "not found" means no match is reachable.
//   - Against r.Distances, which Verify has already matched to the reference:
//     no match is strictly closer than r.Target, and no match at exactly the
//     same distance has a natural-order smaller ID.
//
// Near ties are settled by exact comparison, so a node 1 ulp farther away
// never counts as a tie.
func VerifyNearest(g *core.Graph, r *dijkstra.Result, target dijkstra.TargetFunc) error {
	if err := Verify(g, r); err != nil {
		return err
	}
	if target == nil {
		target = dijkstra.IsDriver
	}

	t := AllPairs(g)
	var (
		matches []core.Node
		closest = math.Inf(1)
	)
	for _, n := range g.Nodes() {
		if !target(n) {
			continue
		}
		matches = append(matches, n)
		if d := t.Distance(r.Source, n.ID); d < closest {
			closest = d
		}
	}

	if !r.Found() {
		if !math.IsInf(closest, 1) {
			return fmt.Errorf("%w: no target chosen but a match is reachable at %g", ErrMismatch, closest)
		}

		return nil
	}
	if math.IsInf(closest, 1) {
		return fmt.Errorf("%w: target %s but no matching node is reachable", ErrMismatch, r.Target)
	}

	var errs []error
	chosen, err := g.Node(r.Target)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("target: %w", err))
	case !target(chosen):
		errs = append(errs, fmt.Errorf("target %s does not match", r.Target))
	}
	if d := t.Distance(r.Source, r.Target); !same(d, closest) {
		errs = append(errs, fmt.Errorf("target %s at %g, closest match at %g", r.Target, d, closest))
	}

	for _, n := range matches {
		d := r.Distances[n.ID]
		switch {
		case n.ID == r.Target:
		case d < r.Distance:
			errs = append(errs, fmt.Errorf("%s at %g is closer than %s at %g", n.ID, d, r.Target, r.Distance))
		case d == r.Distance && natural.Less(n.ID, r.Target):
			errs = append(errs, fmt.Errorf("%s ties with %s at %g and sorts first", n.ID, r.Target, d))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrMismatch, errors.Join(errs...))
}
