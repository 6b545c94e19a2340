package disk

import (
	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/render"
	"github.com/matzehuels/bandgraph/pkg/render/scene"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

// frameMargin pads the auto-computed frame on every side.
const frameMargin = 40

// Render draws the diagram onto an already-open scene: edges first, then
// nodes (clipped band stacks with an unclipped outline), then labels.
// The caller owns the scene; invoking Render twice on the same scene
// accumulates duplicate elements.
func Render(s scene.Scene, d *diagram.Diagram, opts ...Option) {
	r := newRenderer(opts...)
	th := &r.theme

	for _, e := range d.Edges() {
		from, _ := d.Node(e.From)
		to, _ := d.Node(e.To)
		shape, ok := edgeShape(from, to, e, th)
		if !ok {
			continue
		}
		drawEdge(s, shape, th)
	}

	for _, n := range d.Nodes() {
		drawNode(s, n, th)
	}
	if r.labels {
		for _, n := range d.Nodes() {
			drawLabel(s, n, th)
		}
	}
}

// RenderSVG renders the diagram as a standalone SVG document.
func RenderSVG(d *diagram.Diagram, opts ...Option) []byte {
	r := newRenderer(opts...)
	width, height := r.width, r.height
	if width == 0 || height == 0 {
		width, height = frameSize(d)
	}

	s := scene.NewSVG(width, height)
	s.Defs(defs(&r.theme))
	if r.theme.Background != "" {
		s.Rect(0, 0, width, height, scene.Style{Fill: r.theme.Background})
	}
	Render(s, d, opts...)
	return s.Bytes()
}

// RenderPNG renders the diagram as PNG via SVG conversion at the given
// scale factor. Requires the rsvg-convert tool (librsvg).
func RenderPNG(d *diagram.Diagram, scale float64, opts ...Option) ([]byte, error) {
	return render.ToPNG(RenderSVG(d, opts...), scale)
}

// RenderPDF renders the diagram as PDF via SVG conversion.
// Requires the rsvg-convert tool (librsvg).
func RenderPDF(d *diagram.Diagram, opts ...Option) ([]byte, error) {
	return render.ToPDF(RenderSVG(d, opts...))
}

// frameSize derives the viewport from the node bounding box plus a margin.
// Coordinates are assumed non-negative; the frame always starts at origin
// so supplied positions stay meaningful across renders.
func frameSize(d *diagram.Diagram) (w, h float64) {
	for _, n := range d.Nodes() {
		if x := n.X + n.R; x > w {
			w = x
		}
		if y := n.Y + n.R; y > h {
			h = y
		}
	}
	return w + frameMargin, h + frameMargin
}

// drawNode emits one node: base fill and band rectangles inside a circular
// clip, then the outline circle unclipped so the boundary stays crisp.
func drawNode(s scene.Scene, n *diagram.Node, th *theme.Theme) {
	rects := bandRects(n)
	s.ClipCircle(n.X, n.Y, n.R, func(inner scene.Scene) {
		inner.Rect(n.X-n.R, n.Y-n.R, 2*n.R, 2*n.R, scene.Style{Fill: th.Node.BaseFill})
		for _, b := range rects {
			inner.Rect(b.X, b.Y, b.W, b.H, scene.Style{Fill: b.Fill})
		}
	})
	s.Circle(n.X, n.Y, n.R, scene.Style{
		Fill:        "none",
		Stroke:      th.Node.Outline,
		StrokeWidth: th.Node.OutlineWidth,
	})
}

// drawEdge emits the padded main line and, for blocked edges, the
// perpendicular cancellation bar across the midpoint.
func drawEdge(s scene.Scene, shape EdgeShape, th *theme.Theme) {
	st := scene.Style{
		Stroke:      th.Edge.Color,
		StrokeWidth: shape.Width,
		MarkerEnd:   "url(#arrow)",
	}
	if shape.Blocked {
		st.Stroke = th.Edge.BlockedColor
		st.Opacity = th.Edge.BlockedOpacity
		st.Dash = th.Edge.BlockedDash
		st.MarkerEnd = "url(#arrow-blocked)"
	}
	s.Line(shape.Line.X1, shape.Line.Y1, shape.Line.X2, shape.Line.Y2, st)

	if shape.Bar != nil {
		s.Line(shape.Bar.X1, shape.Bar.Y1, shape.Bar.X2, shape.Bar.Y2, scene.Style{
			Stroke:      th.Edge.BlockedColor,
			StrokeWidth: shape.Width,
		})
	}
}

func drawLabel(s scene.Scene, n *diagram.Node, th *theme.Theme) {
	label := n.Label
	if label == "" {
		label = n.ID
	}
	s.Text(n.X, n.Y+n.R+th.Label.Offset+th.Label.Size, label, scene.Style{
		Fill:     th.Label.Color,
		FontSize: th.Label.Size,
		Anchor:   "middle",
	})
}
