package disk

import (
	"math"
	"testing"

	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/geom"
)

func TestSingleFullBandCoversDisk(t *testing.T) {
	n := &diagram.Node{
		ID: "a", X: 50, Y: 50, R: 10,
		Bands: []diagram.Band{{Proportion: 1.0, Fill: "#000"}},
	}

	rects := bandRects(n)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	r := rects[0]
	if math.Abs(r.H-20) > 1e-6 {
		t.Errorf("band extent = %v, want 2r = 20", r.H)
	}
	if math.Abs(r.Y-40) > 1e-6 || math.Abs(r.X-40) > 1e-6 {
		t.Errorf("band at (%v, %v), want (40, 40)", r.X, r.Y)
	}
	if math.Abs(r.W-20) > 1e-6 {
		t.Errorf("band width = %v, want full disk width 20", r.W)
	}
}

func TestTwoBandsCumulativeExtentsNoGap(t *testing.T) {
	const r = 10.0
	n := &diagram.Node{
		ID: "a", X: 0, Y: 0, R: r,
		Bands: []diagram.Band{
			{Proportion: 0.3, Fill: "#111"},
			{Proportion: 0.7, Fill: "#222"},
		},
	}

	rects := bandRects(n)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}

	h1 := geom.HeightForFraction(0.3, r)
	first, second := rects[0], rects[1]

	// First band spans cut distances [0, h1] from the bottom edge.
	if math.Abs(first.H-h1) > 1e-6 {
		t.Errorf("first band extent = %v, want %v", first.H, h1)
	}
	if math.Abs((first.Y+first.H)-r) > 1e-6 {
		t.Errorf("first band bottom = %v, want disk bottom %v", first.Y+first.H, r)
	}

	// Second band continues to the full extent 2r with zero gap.
	if math.Abs(second.H-(2*r-h1)) > 1e-6 {
		t.Errorf("second band extent = %v, want %v", second.H, 2*r-h1)
	}
	if math.Abs((second.Y+second.H)-first.Y) > 1e-6 {
		t.Errorf("gap between bands: second ends at %v, first starts at %v", second.Y+second.H, first.Y)
	}
	if math.Abs(second.Y-(-r)) > 1e-6 {
		t.Errorf("cumulative extent = %v, want disk top %v", second.Y, -r)
	}
}

func TestOverflowProportionsSaturate(t *testing.T) {
	const r = 10.0
	n := &diagram.Node{
		ID: "a", X: 0, Y: 0, R: r,
		Bands: []diagram.Band{
			{Proportion: 0.8, Fill: "#111"},
			{Proportion: 0.8, Fill: "#222"}, // cumulative 1.6, truncated at 1
		},
	}

	rects := bandRects(n)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}
	total := rects[0].H + rects[1].H
	if math.Abs(total-2*r) > 1e-6 {
		t.Errorf("total extent = %v, want saturated 2r = %v", total, 2*r)
	}
}

func TestNegligibleBandsSkippedWithoutGaps(t *testing.T) {
	const r = 100.0
	n := &diagram.Node{
		ID: "a", X: 0, Y: 0, R: r,
		Bands: []diagram.Band{
			{Proportion: 0.4, Fill: "#111"},
			{Proportion: 0.0001, Fill: "#222"}, // below the proportion threshold
			{Proportion: 0.4, Fill: "#333"},
		},
	}

	rects := bandRects(n)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2 (tiny band skipped)", len(rects))
	}

	// The band after the skipped one still starts where the skipped band
	// would have ended, so cumulative extents stay exact.
	wantTop := -(geom.HeightForFraction(0.8001, r) - r)
	if math.Abs(rects[1].Y-wantTop) > 1e-6 {
		t.Errorf("band after skip starts at %v, want %v", rects[1].Y, wantTop)
	}
}

func TestCounterStackGrowsFromOppositeEdge(t *testing.T) {
	const r = 10.0
	n := &diagram.Node{
		ID: "a", X: 0, Y: 0, R: r,
		CounterBands: []diagram.Band{{Proportion: 0.5, Fill: "#abc"}},
	}

	rects := bandRects(n)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}
	b := rects[0]
	if !b.Counter {
		t.Error("band not marked as counter stack")
	}
	// Vertical counter stack grows downward from the top edge.
	if math.Abs(b.Y-(-r)) > 1e-6 {
		t.Errorf("counter band starts at %v, want top edge %v", b.Y, -r)
	}
	if math.Abs(b.H-r) > 1e-6 {
		t.Errorf("counter band extent = %v, want r (half area) %v", b.H, r)
	}
}

func TestHorizontalOrientation(t *testing.T) {
	const r = 10.0
	n := &diagram.Node{
		ID: "a", X: 0, Y: 0, R: r,
		Orientation: diagram.OrientationHorizontal,
		Bands:       []diagram.Band{{Proportion: 0.5, Fill: "#111"}},
		CounterBands: []diagram.Band{
			{Proportion: 0.25, Fill: "#222"},
		},
	}

	rects := bandRects(n)
	if len(rects) != 2 {
		t.Fatalf("got %d rects, want 2", len(rects))
	}

	primary, counter := rects[0], rects[1]

	// Primary grows rightward from the left edge, spanning full height.
	if math.Abs(primary.X-(-r)) > 1e-6 {
		t.Errorf("primary starts at x=%v, want left edge %v", primary.X, -r)
	}
	if math.Abs(primary.W-r) > 1e-6 {
		t.Errorf("primary extent = %v, want r (half area)", primary.W)
	}
	if math.Abs(primary.H-2*r) > 1e-6 {
		t.Errorf("primary height = %v, want 2r", primary.H)
	}

	// Counter grows leftward from the right edge.
	if math.Abs((counter.X+counter.W)-r) > 1e-6 {
		t.Errorf("counter ends at %v, want right edge %v", counter.X+counter.W, r)
	}
	wantExtent := geom.HeightForFraction(0.25, r)
	if math.Abs(counter.W-wantExtent) > 1e-6 {
		t.Errorf("counter extent = %v, want %v", counter.W, wantExtent)
	}
}

func TestBandAreasMatchProportions(t *testing.T) {
	// The emitted rectangles, clipped to the disk, enclose exactly the
	// declared area fractions: verify via the forward area function at the
	// cumulative cut heights.
	const r = 25.0
	props := []float64{0.2, 0.35, 0.45}
	bands := make([]diagram.Band, len(props))
	for i, p := range props {
		bands[i] = diagram.Band{Proportion: p, Fill: "#000"}
	}
	n := &diagram.Node{ID: "a", X: 0, Y: 0, R: r, Bands: bands}

	rects := bandRects(n)
	if len(rects) != len(props) {
		t.Fatalf("got %d rects, want %d", len(rects), len(props))
	}

	cum := 0.0
	bottom := r // disk bottom in y
	for i, b := range rects {
		cum += props[i]
		cut := bottom - b.Y // cut distance from the bottom edge
		got := geom.AreaFraction(cut, r)
		if math.Abs(got-cum) > 1e-4 {
			t.Errorf("band %d: clipped area fraction %v, want cumulative %v", i, got, cum)
		}
	}
}
