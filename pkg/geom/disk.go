// Package geom provides the numeric geometry underlying disk-band diagrams.
//
// The central problem is partitioning a disk into horizontal or vertical
// bands whose *areas* (not heights) match declared proportions. The forward
// direction (how much area lies within a given distance of the disk's
// edge) has a closed form; the inverse does not and is solved numerically.
//
// The package also provides line-segment helpers used for edge rendering
// (padding endpoints away from node boundaries, perpendicular bars).
package geom

import (
	"fmt"
	"math"
)

// bisectIterations bounds the inverse-area search. On a range of 2r this
// gives an error of about 2r/2^30, far below rendering tolerance.
const bisectIterations = 30

// AreaFraction returns the fraction of a disk's area lying within distance
// h of one edge, measured along the cut axis. It is defined for h in
// [0, 2r] and saturates outside that range: h <= 0 yields 0 and h >= 2r
// yields 1. The interior value is the circular-segment area formula with
// the substitution u = h/r - 1, exact to floating-point precision.
//
// The radius must be positive; AreaFraction panics otherwise.
func AreaFraction(h, r float64) float64 {
	checkRadius(r)
	if h <= 0 {
		return 0
	}
	if h >= 2*r {
		return 1
	}
	u := h/r - 1
	return 0.5 + (math.Asin(u)+u*math.Sqrt(1-u*u))/math.Pi
}

// HeightForFraction returns the cut distance h such that
// AreaFraction(h, r) equals frac. It is the inverse of [AreaFraction] and
// saturates the same way: frac <= 0 yields 0 and frac >= 1 yields 2r.
//
// The area function has no closed-form inverse, so interior values are
// found by bisection over [0, 2r] with a fixed iteration count. The result
// round-trips through [AreaFraction] well within single-precision pixel
// accuracy.
//
// The radius must be positive; HeightForFraction panics otherwise.
func HeightForFraction(frac, r float64) float64 {
	checkRadius(r)
	if frac <= 0 {
		return 0
	}
	if frac >= 1 {
		return 2 * r
	}
	lo, hi := 0.0, 2*r
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		if AreaFraction(mid, r) < frac {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// checkRadius enforces the positive-radius precondition shared by the
// partition functions. A non-positive radius is caller misuse with no
// recovery path, so it fails loudly instead of being clamped.
func checkRadius(r float64) {
	if r <= 0 || math.IsNaN(r) {
		panic(fmt.Sprintf("geom: radius must be positive, got %v", r))
	}
}
