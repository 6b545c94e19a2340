package dot

import (
	"strings"
	"testing"

	"github.com/matzehuels/bandgraph/pkg/diagram"
)

func testDiagram(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := diagram.New()
	if err := d.AddNode(diagram.Node{ID: "a", Label: "Alpha", X: 100, Y: 100, R: 40,
		Bands: []diagram.Band{{Proportion: 0.4, Fill: "#3b6ea5"}}}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddNode(diagram.Node{ID: "b", X: 300, Y: 100, R: 30}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddEdge(diagram.Edge{From: "a", To: "b", Strength: 0.5}); err != nil {
		t.Fatal(err)
	}
	if err := d.AddEdge(diagram.Edge{From: "b", To: "a", Strength: 1, Blocked: true}); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestToDOT(t *testing.T) {
	d := testDiagram(t)
	out := ToDOT(d, Options{})

	for _, want := range []string{
		"digraph G {",
		`"a" [label="Alpha"];`,
		`"b" [label="b"];`,
		`"a" -> "b"`,
		`"b" -> "a"`,
		"style=dashed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ToDOT output missing %q:\n%s", want, out)
		}
	}

	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Error("DOT output must end with closing brace")
	}
}

func TestToDOTStrengthWidth(t *testing.T) {
	d := testDiagram(t)
	out := ToDOT(d, Options{})

	// Strength 0.5 scales the stroke; strength 1 keeps the default width.
	if !strings.Contains(out, "penwidth=2.00") {
		t.Errorf("expected penwidth for strength 0.5:\n%s", out)
	}
}

func TestToDOTDetailed(t *testing.T) {
	d := testDiagram(t)
	out := ToDOT(d, Options{Detailed: true})

	for _, want := range []string{"r: 40", "bands: 1", `label="0.50"`} {
		if !strings.Contains(out, want) {
			t.Errorf("detailed output missing %q:\n%s", want, out)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?><svg width="8pt" height="6pt" viewBox="0.00 0.00 144.00 72.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 144.00 72.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="144" height="72"`) {
		t.Errorf("pixel dimensions not set: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte(`<svg><g/></svg>`)
	if got := string(normalizeViewBox(in)); got != string(in) {
		t.Errorf("input without viewBox should pass through, got %s", got)
	}
}
