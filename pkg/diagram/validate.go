package diagram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRadius is returned by [Diagram.Validate] for nodes with a
	// non-positive radius.
	ErrInvalidRadius = errors.New("node radius must be positive")

	// ErrInvalidProportion is returned by [Diagram.Validate] for bands with
	// a proportion outside [0, 1].
	ErrInvalidProportion = errors.New("band proportion must be within [0, 1]")

	// ErrInvalidStrength is returned by [Diagram.Validate] for edges with a
	// strength outside [0, 1].
	ErrInvalidStrength = errors.New("edge strength must be within [0, 1]")

	// ErrDegenerateEdge is returned by [Diagram.Validate] for edges whose
	// endpoint nodes share the same center. Such an edge has no direction
	// and cannot be padded or capped.
	ErrDegenerateEdge = errors.New("edge endpoints must have distinct centers")
)

// Validate checks the geometric preconditions the renderer relies on and
// returns the first violation found. These are caller-misuse conditions with
// no recovery path, so rendering an invalid diagram is refused outright
// rather than degrading silently.
//
// Band proportions summing above 1 within one stack are deliberately NOT an
// error: the composer saturates the cumulative fraction at 1, truncating
// the overflow. Self-loops count as degenerate edges (coincident centers).
func (d *Diagram) Validate() error {
	for _, id := range d.order {
		n := d.nodes[id]
		if n.R <= 0 {
			return fmt.Errorf("node %s: %w (got %v)", n.ID, ErrInvalidRadius, n.R)
		}
		if err := validateBands(n.ID, "bands", n.Bands); err != nil {
			return err
		}
		if err := validateBands(n.ID, "counter_bands", n.CounterBands); err != nil {
			return err
		}
	}

	for _, e := range d.edges {
		if e.Strength < 0 || e.Strength > 1 {
			return fmt.Errorf("edge %s->%s: %w (got %v)", e.From, e.To, ErrInvalidStrength, e.Strength)
		}
		if e.Strength == 0 {
			continue // never drawn, degeneracy is irrelevant
		}
		from, to := d.nodes[e.From], d.nodes[e.To]
		if from.X == to.X && from.Y == to.Y {
			return fmt.Errorf("edge %s->%s: %w", e.From, e.To, ErrDegenerateEdge)
		}
	}
	return nil
}

func validateBands(nodeID, stack string, bands []Band) error {
	for i, b := range bands {
		if b.Proportion < 0 || b.Proportion > 1 {
			return fmt.Errorf("node %s: %s[%d]: %w (got %v)", nodeID, stack, i, ErrInvalidProportion, b.Proportion)
		}
	}
	return nil
}
