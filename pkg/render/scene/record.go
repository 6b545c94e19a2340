package scene

// OpKind identifies the primitive recorded by a [Recorder].
type OpKind int

const (
	OpRect OpKind = iota
	OpLine
	OpCircle
	OpText
)

// Op is one recorded draw call. Coordinate fields are populated according
// to Kind: rectangles use X1/Y1/W/H, lines use X1/Y1/X2/Y2, circles use
// X1/Y1/R, text uses X1/Y1/Content.
type Op struct {
	Kind           OpKind
	X1, Y1, X2, Y2 float64
	W, H, R        float64
	Content        string
	Style          Style
	ClipDepth      int // nesting depth of enclosing clipped groups
}

// Recorder is a [Scene] that keeps an in-memory log of draw calls instead
// of producing output. It is the test double for renderer assertions.
type Recorder struct {
	Ops   []Op
	depth int
}

// Rect implements [Scene].
func (r *Recorder) Rect(x, y, w, h float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X1: x, Y1: y, W: w, H: h, Style: st, ClipDepth: r.depth})
}

// Line implements [Scene].
func (r *Recorder) Line(x1, y1, x2, y2 float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Style: st, ClipDepth: r.depth})
}

// Circle implements [Scene].
func (r *Recorder) Circle(cx, cy, radius float64, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X1: cx, Y1: cy, R: radius, Style: st, ClipDepth: r.depth})
}

// Text implements [Scene].
func (r *Recorder) Text(x, y float64, content string, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X1: x, Y1: y, Content: content, Style: st, ClipDepth: r.depth})
}

// ClipCircle implements [Scene]. The clip circle itself is not recorded;
// ops emitted inside fn carry an incremented ClipDepth.
func (r *Recorder) ClipCircle(cx, cy, radius float64, fn func(Scene)) {
	r.depth++
	fn(r)
	r.depth--
}

// Kind returns the recorded ops of one kind, in emission order.
func (r *Recorder) Kind(k OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

var _ Scene = (*Recorder)(nil)
