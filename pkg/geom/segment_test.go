package geom

import (
	"math"
	"testing"
)

func TestSegmentShorten(t *testing.T) {
	tests := []struct {
		name     string
		seg      Segment
		padStart float64
		padEnd   float64
		want     Segment
	}{
		{
			name:     "horizontal asymmetric pads",
			seg:      Segment{0, 0, 10, 0},
			padStart: 2,
			padEnd:   3,
			want:     Segment{2, 0, 7, 0},
		},
		{
			name:     "vertical symmetric pads",
			seg:      Segment{5, 0, 5, 20},
			padStart: 4,
			padEnd:   4,
			want:     Segment{5, 4, 5, 16},
		},
		{
			name:     "diagonal",
			seg:      Segment{0, 0, 3, 4},
			padStart: 5,
			padEnd:   0,
			want:     Segment{3, 4, 3, 4},
		},
		{
			name:     "zero pads are identity",
			seg:      Segment{1, 2, 3, 4},
			padStart: 0,
			padEnd:   0,
			want:     Segment{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.seg.Shorten(tt.padStart, tt.padEnd)
			if !segmentsClose(got, tt.want) {
				t.Errorf("Shorten(%v, %v) = %+v, want %+v", tt.padStart, tt.padEnd, got, tt.want)
			}
		})
	}
}

func TestSegmentShortenPreservesDirection(t *testing.T) {
	seg := Segment{1, 1, 9, 7}
	short := seg.Shorten(1.5, 2.5)

	dx, dy := seg.X2-seg.X1, seg.Y2-seg.Y1
	sx, sy := short.X2-short.X1, short.Y2-short.Y1
	cross := dx*sy - dy*sx
	if math.Abs(cross) > 1e-9 {
		t.Errorf("direction changed: cross product %v", cross)
	}
	if dx*sx+dy*sy <= 0 {
		t.Error("shortened segment points the wrong way")
	}
	if math.Abs(short.Length()-(seg.Length()-4)) > 1e-9 {
		t.Errorf("length = %v, want %v", short.Length(), seg.Length()-4)
	}
}

func TestSegmentPerpBar(t *testing.T) {
	seg := Segment{0, 0, 10, 0}
	bar := seg.PerpBar(3)

	mx, my := seg.Midpoint()
	bx, by := bar.Midpoint()
	if math.Abs(bx-mx) > 1e-9 || math.Abs(by-my) > 1e-9 {
		t.Errorf("bar midpoint (%v, %v), want (%v, %v)", bx, by, mx, my)
	}
	if math.Abs(bar.Length()-6) > 1e-9 {
		t.Errorf("bar length = %v, want 6", bar.Length())
	}

	// Perpendicularity: dot product of directions must vanish.
	dot := (seg.X2-seg.X1)*(bar.X2-bar.X1) + (seg.Y2-seg.Y1)*(bar.Y2-bar.Y1)
	if math.Abs(dot) > 1e-9 {
		t.Errorf("bar not perpendicular: dot = %v", dot)
	}
}

func TestSegmentPerpBarDiagonal(t *testing.T) {
	seg := Segment{2, 3, 8, 11}
	bar := seg.PerpBar(5)

	dot := (seg.X2-seg.X1)*(bar.X2-bar.X1) + (seg.Y2-seg.Y1)*(bar.Y2-bar.Y1)
	if math.Abs(dot) > 1e-9 {
		t.Errorf("bar not perpendicular: dot = %v", dot)
	}
	if math.Abs(bar.Length()-10) > 1e-9 {
		t.Errorf("bar length = %v, want 10", bar.Length())
	}
}

func TestDegenerateSegmentPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"shorten", func() { Segment{3, 3, 3, 3}.Shorten(1, 1) }},
		{"perp bar", func() { Segment{3, 3, 3, 3}.PerpBar(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic on zero-length segment")
				}
			}()
			tt.fn()
		})
	}
}

func segmentsClose(a, b Segment) bool {
	const eps = 1e-9
	return math.Abs(a.X1-b.X1) < eps && math.Abs(a.Y1-b.Y1) < eps &&
		math.Abs(a.X2-b.X2) < eps && math.Abs(a.Y2-b.Y2) < eps
}
