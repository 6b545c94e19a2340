// Package scene defines the drawing surface that diagram renderers emit to.
//
// A [Scene] accepts rectangle, line, circle, and text primitives with
// positional and style attributes, plus nested groups clipped to a circle.
// The geometry composers in pkg/render/disk are written against this
// interface so that the same composition can target an SVG document
// ([SVG]) or an in-memory op log ([Recorder], used by tests).
package scene

// Style holds the presentation attributes applied to a single primitive.
// Zero values mean "unset": empty strings are omitted from output and a
// zero Opacity is treated as fully opaque.
type Style struct {
	Fill        string  // Fill color or url(#...) reference; "none" disables fill
	Stroke      string  // Stroke color
	StrokeWidth float64 // Stroke width in user units (0 = unset)
	Opacity     float64 // Element opacity in (0, 1]; 0 = unset (opaque)
	Dash        string  // Stroke dash pattern, e.g. "6,4"
	MarkerEnd   string  // Marker reference for line ends, e.g. "url(#arrow)"
	FontSize    float64 // Text size in user units (text only)
	Anchor      string  // Text anchor: "start", "middle", "end" (text only)
}

// Scene is a drawing surface accepting draw primitives. Implementations
// are single-goroutine surfaces; emission order is z-order (later calls
// draw on top of earlier ones).
type Scene interface {
	// Rect draws an axis-aligned rectangle with top-left corner (x, y).
	Rect(x, y, w, h float64, st Style)

	// Line draws a straight segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64, st Style)

	// Circle draws a circle centered at (cx, cy).
	Circle(cx, cy, r float64, st Style)

	// Text draws content anchored at (x, y).
	Text(x, y float64, content string, st Style)

	// ClipCircle opens a nested group clipped to the given circle and
	// calls fn with a scene that draws inside it. Primitives emitted by
	// fn are only visible within the circle.
	ClipCircle(cx, cy, r float64, fn func(Scene))
}
