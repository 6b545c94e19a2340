package disk

import (
	"math"
	"testing"

	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/render/scene"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

func twoNodeDiagram(t *testing.T, e diagram.Edge) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	if err := d.AddNode(diagram.Node{ID: "a", X: 50, Y: 100, R: 20}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddNode(diagram.Node{ID: "b", X: 250, Y: 100, R: 20}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddEdge(e); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestZeroStrengthEdgeIsNoOp(t *testing.T) {
	d := diagram.New()
	d.AddNode(diagram.Node{ID: "a", X: 50, Y: 100, R: 20})
	d.AddNode(diagram.Node{ID: "b", X: 250, Y: 100, R: 20})
	d.AddEdge(diagram.Edge{From: "a", To: "b", Strength: 0})

	rec := &scene.Recorder{}
	Render(rec, d)

	if got := len(rec.Kind(scene.OpLine)); got != 0 {
		t.Errorf("strength-0 edge emitted %d lines, want 0", got)
	}
}

func TestActiveEdgeGeometry(t *testing.T) {
	th := theme.Default()
	d := twoNodeDiagram(t, diagram.Edge{From: "a", To: "b", Strength: 0.5})

	rec := &scene.Recorder{}
	Render(rec, d)

	lines := rec.Kind(scene.OpLine)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]

	// Padded clear of the source boundary by gap, and of the target
	// boundary by gap plus arrowhead length.
	wantX1 := 50 + 20 + th.Edge.Gap
	wantX2 := 250 - 20 - th.Edge.Gap - th.Edge.ArrowLength
	if math.Abs(line.X1-wantX1) > 1e-6 || math.Abs(line.X2-wantX2) > 1e-6 {
		t.Errorf("line spans [%v, %v], want [%v, %v]", line.X1, line.X2, wantX1, wantX2)
	}
	if line.Y1 != 100 || line.Y2 != 100 {
		t.Errorf("line not horizontal: y = %v, %v", line.Y1, line.Y2)
	}

	wantWidth := th.Edge.BaseWidth + 0.5*th.Edge.WidthScale
	if math.Abs(line.Style.StrokeWidth-wantWidth) > 1e-9 {
		t.Errorf("stroke width = %v, want %v", line.Style.StrokeWidth, wantWidth)
	}
	if line.Style.Dash != "" {
		t.Errorf("active edge has dash %q, want solid", line.Style.Dash)
	}
	if line.Style.Opacity != 0 {
		t.Errorf("active edge has reduced opacity %v", line.Style.Opacity)
	}
	if line.Style.MarkerEnd == "" {
		t.Error("active edge missing arrowhead marker")
	}
}

func TestBlockedEdgeHasBarAndMutedStyle(t *testing.T) {
	th := theme.Default()
	d := twoNodeDiagram(t, diagram.Edge{From: "a", To: "b", Strength: 1, Blocked: true})

	rec := &scene.Recorder{}
	Render(rec, d)

	lines := rec.Kind(scene.OpLine)
	if len(lines) != 2 {
		t.Fatalf("blocked edge emitted %d lines, want main line + one bar", len(lines))
	}
	main, bar := lines[0], lines[1]

	if main.Style.Dash == "" {
		t.Error("blocked edge not dashed")
	}
	if main.Style.Opacity != th.Edge.BlockedOpacity {
		t.Errorf("blocked edge opacity = %v, want %v", main.Style.Opacity, th.Edge.BlockedOpacity)
	}

	// Bar centered at the main line's midpoint.
	mx, my := (main.X1+main.X2)/2, (main.Y1+main.Y2)/2
	bx, by := (bar.X1+bar.X2)/2, (bar.Y1+bar.Y2)/2
	if math.Abs(bx-mx) > 1e-6 || math.Abs(by-my) > 1e-6 {
		t.Errorf("bar centered at (%v, %v), want midpoint (%v, %v)", bx, by, mx, my)
	}

	// Bar perpendicular to the line direction.
	dot := (main.X2-main.X1)*(bar.X2-bar.X1) + (main.Y2-main.Y1)*(bar.Y2-bar.Y1)
	if math.Abs(dot) > 1e-6 {
		t.Errorf("bar not perpendicular: dot product %v", dot)
	}

	if math.Abs(hypot(bar)-2*th.Edge.BarHalfLength) > 1e-6 {
		t.Errorf("bar length = %v, want %v", hypot(bar), 2*th.Edge.BarHalfLength)
	}
}

func TestDiagonalEdgePadding(t *testing.T) {
	th := theme.Default()
	d := diagram.New()
	d.AddNode(diagram.Node{ID: "a", X: 0, Y: 0, R: 10})
	d.AddNode(diagram.Node{ID: "b", X: 300, Y: 400, R: 15})
	d.AddEdge(diagram.Edge{From: "a", To: "b", Strength: 1})

	rec := &scene.Recorder{}
	Render(rec, d)

	lines := rec.Kind(scene.OpLine)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]

	// Distance 500 between centers; start pad 10+gap, end pad 15+gap+arrow.
	startDist := math.Hypot(line.X1, line.Y1)
	endDist := math.Hypot(300-line.X2, 400-line.Y2)
	if math.Abs(startDist-(10+th.Edge.Gap)) > 1e-6 {
		t.Errorf("start pad = %v, want %v", startDist, 10+th.Edge.Gap)
	}
	if math.Abs(endDist-(15+th.Edge.Gap+th.Edge.ArrowLength)) > 1e-6 {
		t.Errorf("end pad = %v, want %v", endDist, 15+th.Edge.Gap+th.Edge.ArrowLength)
	}
}

func hypot(op scene.Op) float64 {
	return math.Hypot(op.X2-op.X1, op.Y2-op.Y1)
}
