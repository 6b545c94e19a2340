package disk

import (
	"math"

	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/geom"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

const (
	// minProportion is the fraction below which a band is dropped: it would
	// be invisible at any reasonable size. Tunable fidelity threshold, not
	// a correctness requirement.
	minProportion = 0.001

	// minExtent is the smallest band thickness (in user units) worth
	// emitting. Thinner rectangles alias away at 1x scale.
	minExtent = 0.5
)

// BandRect is one band of a node's stack resolved to a drawable rectangle.
// The rectangle extends past the disk on the non-cut axis and relies on
// the node's circular clip to trim it.
type BandRect struct {
	X, Y, W, H float64
	Fill       string
	Counter    bool // true when the band belongs to the counter stack
}

// EdgeShape is an edge resolved to drawable geometry: the padded line, its
// stroke width, and the optional cancellation bar for blocked edges.
type EdgeShape struct {
	From, To string
	Line     geom.Segment
	Width    float64
	Blocked  bool
	Bar      *geom.Segment // midpoint cancellation bar, blocked edges only
}

// bandRects resolves both of a node's stacks to rectangles: the primary
// stack first, then the counter stack. Emission order is stacking order,
// so overlap between the stacks resolves to "last drawn wins".
func bandRects(n *diagram.Node) []BandRect {
	rects := stackRects(n, n.Bands, false)
	return append(rects, stackRects(n, n.CounterBands, true)...)
}

// stackRects folds one ordered band stack into rectangles. The accumulator
// is (cumulative fraction, previous extent): each band advances the
// cumulative fraction, clamped to 1 before the inverse-area lookup so that
// overflow past a full disk is silently truncated. Skipped bands still
// advance the running extent, keeping later bands gap-free.
func stackRects(n *diagram.Node, bands []diagram.Band, counter bool) []BandRect {
	var rects []BandRect
	cum, prev := 0.0, 0.0
	for _, b := range bands {
		cum += b.Proportion
		next := geom.HeightForFraction(math.Min(cum, 1), n.R)
		extent := next - prev
		if b.Proportion < minProportion || extent < minExtent {
			prev = next
			continue
		}
		rects = append(rects, stackRect(n, prev, next, counter, b.Fill))
		prev = next
	}
	return rects
}

// stackRect places a band spanning cut distances [prev, next] at the
// correct edge-relative offset. Primary stacks grow from the bottom
// (vertical) or left (horizontal) edge; counter stacks from the opposite
// edge. SVG y grows downward, so "bottom" is y = center + radius.
func stackRect(n *diagram.Node, prev, next float64, counter bool, fill string) BandRect {
	extent := next - prev
	r := BandRect{Fill: fill, Counter: counter}
	switch {
	case n.Orientation == diagram.OrientationVertical && !counter:
		r.X, r.W = n.X-n.R, 2*n.R
		r.Y, r.H = n.Y+n.R-next, extent
	case n.Orientation == diagram.OrientationVertical && counter:
		r.X, r.W = n.X-n.R, 2*n.R
		r.Y, r.H = n.Y-n.R+prev, extent
	case n.Orientation == diagram.OrientationHorizontal && !counter:
		r.X, r.W = n.X-n.R+prev, extent
		r.Y, r.H = n.Y-n.R, 2*n.R
	default: // horizontal counter stack
		r.X, r.W = n.X+n.R-next, extent
		r.Y, r.H = n.Y-n.R, 2*n.R
	}
	return r
}

// edgeShape resolves an edge to drawable geometry. The second return is
// false when the edge is not drawn at all: strength 0 is a valid, silent
// no-op. The line is shortened so it clears both node boundaries by the
// theme gap and additionally leaves room for the arrowhead at the target.
func edgeShape(from, to *diagram.Node, e diagram.Edge, th *theme.Theme) (EdgeShape, bool) {
	if e.Strength == 0 {
		return EdgeShape{}, false
	}
	center := geom.Segment{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y}
	line := center.Shorten(from.R+th.Edge.Gap, to.R+th.Edge.Gap+th.Edge.ArrowLength)

	shape := EdgeShape{
		From:    e.From,
		To:      e.To,
		Line:    line,
		Width:   th.Edge.BaseWidth + e.Strength*th.Edge.WidthScale,
		Blocked: e.Blocked,
	}
	if e.Blocked {
		bar := line.PerpBar(th.Edge.BarHalfLength)
		shape.Bar = &bar
	}
	return shape, true
}
