// Package disk renders disk-band diagrams onto a drawing surface.
//
// # Overview
//
// This is bandgraph's primary renderer. Each node is drawn as a circle
// subdivided into color bands whose areas match the declared proportions;
// the area-accurate cut heights come from the partition functions in
// pkg/geom. Edges are drawn as padded, arrow-capped lines whose stroke
// width scales with strength; blocked edges render dashed and muted with a
// perpendicular cancellation bar across the midpoint.
//
// # Pipeline
//
// Geometry is computed first as plain values ([BandRect], [EdgeShape]) and
// then emitted to a [scene.Scene]. The same values feed the JSON sink, so
// SVG output and geometry export cannot drift apart:
//
//	svg := disk.RenderSVG(d, disk.WithLabels())
//	js, err := disk.RenderJSON(d)
//	png, err := disk.RenderPNG(d, 2.0)
//
// Rendering is pure: repeated calls with identical inputs produce identical
// geometry, and nothing is cached between calls.
package disk
