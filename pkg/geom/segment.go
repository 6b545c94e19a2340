package geom

import "math"

// Segment is a directed line segment from (X1, Y1) to (X2, Y2).
// All coordinates are in user units (typically pixels in SVG).
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() (x, y float64) {
	return (s.X1 + s.X2) / 2, (s.Y1 + s.Y2) / 2
}

// Shorten moves the start point inward by padStart and the end point inward
// by padEnd, both along the segment's own direction, and returns the
// resulting segment. Direction is preserved; pads larger than the segment
// produce an inverted segment, which callers avoid by construction.
//
// The segment must have non-zero length; Shorten panics on a degenerate
// (coincident-endpoint) segment since there is no direction to move along.
func (s Segment) Shorten(padStart, padEnd float64) Segment {
	length := s.Length()
	if length == 0 {
		panic("geom: cannot shorten a zero-length segment")
	}
	dx := (s.X2 - s.X1) / length
	dy := (s.Y2 - s.Y1) / length
	return Segment{
		X1: s.X1 + dx*padStart,
		Y1: s.Y1 + dy*padStart,
		X2: s.X2 - dx*padEnd,
		Y2: s.Y2 - dy*padEnd,
	}
}

// PerpBar returns a segment of length 2*halfLen centered on this segment's
// midpoint and perpendicular to its direction. The perpendicular is the
// 90-degree rotation (-dy, dx) of the unit direction vector.
//
// Like [Segment.Shorten], PerpBar panics on a zero-length segment.
func (s Segment) PerpBar(halfLen float64) Segment {
	length := s.Length()
	if length == 0 {
		panic("geom: cannot take a perpendicular of a zero-length segment")
	}
	nx := -(s.Y2 - s.Y1) / length
	ny := (s.X2 - s.X1) / length
	mx, my := s.Midpoint()
	return Segment{
		X1: mx - nx*halfLen,
		Y1: my - ny*halfLen,
		X2: mx + nx*halfLen,
		Y2: my + ny*halfLen,
	}
}
