package scene

import (
	"bytes"
	"fmt"
	"strings"
)

// SVG is a [Scene] that emits an SVG document into an in-memory buffer.
// Create one with [NewSVG], draw, then call [SVG.Bytes] to close the
// document and obtain the result. The zero value is not usable.
type SVG struct {
	buf     bytes.Buffer
	clipSeq int
	depth   int
	closed  bool
}

// NewSVG creates an SVG scene with the given viewport size.
func NewSVG(width, height float64) *SVG {
	s := &SVG{}
	fmt.Fprintf(&s.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	return s
}

// Defs injects a raw <defs> block (markers, patterns, gradients) into the
// document. Call it before drawing primitives that reference the defs.
func (s *SVG) Defs(raw string) {
	fmt.Fprintf(&s.buf, "  <defs>%s</defs>\n", raw)
}

// Bytes closes the document and returns the SVG bytes. Further drawing
// after Bytes is a programming error and panics.
func (s *SVG) Bytes() []byte {
	if !s.closed {
		s.buf.WriteString("</svg>\n")
		s.closed = true
	}
	return s.buf.Bytes()
}

// Rect implements [Scene].
func (s *SVG) Rect(x, y, w, h float64, st Style) {
	s.checkOpen()
	fmt.Fprintf(&s.buf, `%s<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n",
		s.pad(), x, y, w, h, styleAttrs(st))
}

// Line implements [Scene].
func (s *SVG) Line(x1, y1, x2, y2 float64, st Style) {
	s.checkOpen()
	fmt.Fprintf(&s.buf, `%s<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
		s.pad(), x1, y1, x2, y2, styleAttrs(st))
}

// Circle implements [Scene].
func (s *SVG) Circle(cx, cy, r float64, st Style) {
	s.checkOpen()
	fmt.Fprintf(&s.buf, `%s<circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n",
		s.pad(), cx, cy, r, styleAttrs(st))
}

// Text implements [Scene].
func (s *SVG) Text(x, y float64, content string, st Style) {
	s.checkOpen()
	fmt.Fprintf(&s.buf, `%s<text x="%.2f" y="%.2f"%s>%s</text>`+"\n",
		s.pad(), x, y, styleAttrs(st), escapeText(content))
}

// ClipCircle implements [Scene]. Each call defines a fresh clip path with a
// generated ID and wraps fn's output in a group referencing it.
func (s *SVG) ClipCircle(cx, cy, r float64, fn func(Scene)) {
	s.checkOpen()
	s.clipSeq++
	id := fmt.Sprintf("clip-%d", s.clipSeq)
	fmt.Fprintf(&s.buf, `%s<clipPath id="%s"><circle cx="%.2f" cy="%.2f" r="%.2f"/></clipPath>`+"\n",
		s.pad(), id, cx, cy, r)
	fmt.Fprintf(&s.buf, `%s<g clip-path="url(#%s)">`+"\n", s.pad(), id)
	s.depth++
	fn(s)
	s.depth--
	fmt.Fprintf(&s.buf, "%s</g>\n", s.pad())
}

func (s *SVG) pad() string {
	return strings.Repeat("  ", s.depth+1)
}

func (s *SVG) checkOpen() {
	if s.closed {
		panic("scene: drawing on a closed SVG scene")
	}
}

// styleAttrs renders the non-zero fields of a Style as SVG attributes,
// with a leading space when non-empty.
func styleAttrs(st Style) string {
	var b strings.Builder
	if st.Fill != "" {
		fmt.Fprintf(&b, ` fill="%s"`, st.Fill)
	}
	if st.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, st.Stroke)
	}
	if st.StrokeWidth != 0 {
		fmt.Fprintf(&b, ` stroke-width="%.2f"`, st.StrokeWidth)
	}
	if st.Opacity != 0 {
		fmt.Fprintf(&b, ` opacity="%.2f"`, st.Opacity)
	}
	if st.Dash != "" {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, st.Dash)
	}
	if st.MarkerEnd != "" {
		fmt.Fprintf(&b, ` marker-end="%s"`, st.MarkerEnd)
	}
	if st.FontSize != 0 {
		fmt.Fprintf(&b, ` font-size="%.1f" font-family="sans-serif"`, st.FontSize)
	}
	if st.Anchor != "" {
		fmt.Fprintf(&b, ` text-anchor="%s"`, st.Anchor)
	}
	return b.String()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

var _ Scene = (*SVG)(nil)
