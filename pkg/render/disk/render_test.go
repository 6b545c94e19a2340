package disk

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/render/scene"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

func sampleDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	nodes := []diagram.Node{
		{ID: "rain", Label: "Rain", X: 100, Y: 80, R: 28,
			Bands: []diagram.Band{{Proportion: 0.7, Fill: "#4e79a7"}, {Proportion: 0.3, Fill: "#f28e2b"}}},
		{ID: "wet", Label: "Wet Lawn", X: 260, Y: 200, R: 28,
			CounterBands: []diagram.Band{{Proportion: 0.4, Fill: "#e15759"}}},
	}
	for _, n := range nodes {
		if err := d.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.AddEdge(diagram.Edge{From: "rain", To: "wet", Strength: 0.8}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRenderSVGDocument(t *testing.T) {
	d := sampleDiagram(t)
	out := string(RenderSVG(d, WithLabels()))

	for _, want := range []string{
		"<svg xmlns",
		`<marker id="arrow"`,
		`<marker id="arrow-blocked"`,
		`<pattern id="hatch"`,
		"<clipPath",
		`marker-end="url(#arrow)"`,
		">Rain</text>",
		">Wet Lawn</text>",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderDrawsBaseFillAndOutlinePerNode(t *testing.T) {
	d := sampleDiagram(t)
	rec := &scene.Recorder{}
	Render(rec, d)

	// Each node: one clipped base-fill rect plus its band rects, and one
	// unclipped outline circle.
	circles := rec.Kind(scene.OpCircle)
	if len(circles) != 2 {
		t.Fatalf("got %d outline circles, want 2", len(circles))
	}
	for _, c := range circles {
		if c.ClipDepth != 0 {
			t.Error("outline circle must be drawn unclipped")
		}
		if c.Style.Fill != "none" {
			t.Errorf("outline fill = %q, want none", c.Style.Fill)
		}
	}

	th := theme.Default()
	var baseFills int
	for _, r := range rec.Kind(scene.OpRect) {
		if r.ClipDepth != 1 {
			t.Error("band/base rect drawn outside the clip group")
		}
		if r.Style.Fill == th.Node.BaseFill {
			baseFills++
		}
	}
	if baseFills != 2 {
		t.Errorf("got %d base fills, want one per node", baseFills)
	}
}

func TestRenderIdempotentGeometry(t *testing.T) {
	d := sampleDiagram(t)
	a := RenderSVG(d)
	b := RenderSVG(d)
	if string(a) != string(b) {
		t.Error("repeated renders of the same diagram differ")
	}
}

func TestRenderJSONGeometry(t *testing.T) {
	d := sampleDiagram(t)
	data, err := RenderJSON(d)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Nodes  []struct {
			ID          string `json:"id"`
			Orientation string `json:"orientation"`
			Bands       []struct {
				Height  float64 `json:"height"`
				Counter bool    `json:"counter"`
			} `json:"bands"`
		} `json:"nodes"`
		Edges []struct {
			From  string  `json:"from"`
			Width float64 `json:"width"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Nodes) != 2 || len(out.Edges) != 1 {
		t.Fatalf("got %d nodes, %d edges; want 2, 1", len(out.Nodes), len(out.Edges))
	}
	if out.Nodes[0].ID != "rain" || out.Nodes[0].Orientation != "vertical" {
		t.Errorf("unexpected first node: %+v", out.Nodes[0])
	}
	if len(out.Nodes[0].Bands) != 2 {
		t.Errorf("rain has %d band rects, want 2", len(out.Nodes[0].Bands))
	}
	if !out.Nodes[1].Bands[0].Counter {
		t.Error("wet's band should be marked counter")
	}
	if out.Width <= 0 || out.Height <= 0 {
		t.Errorf("frame %vx%v not positive", out.Width, out.Height)
	}

	th := theme.Default()
	wantWidth := th.Edge.BaseWidth + 0.8*th.Edge.WidthScale
	if out.Edges[0].Width != wantWidth {
		t.Errorf("edge width = %v, want %v", out.Edges[0].Width, wantWidth)
	}
}

func TestFrameSize(t *testing.T) {
	d := sampleDiagram(t)
	w, h := frameSize(d)
	if w != 260+28+frameMargin {
		t.Errorf("width = %v, want %v", w, 260+28+frameMargin)
	}
	if h != 200+28+frameMargin {
		t.Errorf("height = %v, want %v", h, 200+28+frameMargin)
	}
}

func TestWithSizeOverridesFrame(t *testing.T) {
	d := sampleDiagram(t)
	out := string(RenderSVG(d, WithSize(800, 600)))
	if !strings.Contains(out, `viewBox="0 0 800.0 600.0"`) {
		t.Error("WithSize not honored")
	}
}
