// Package diagram provides the data model for disk-band diagrams: directed
// graphs whose nodes are circles subdivided into area-accurate color bands,
// connected by arrows whose weight encodes edge strength.
//
// # Overview
//
// A [Diagram] holds positioned [Node] values and directed [Edge] values.
// Node positions are supplied by the caller; bandgraph performs no graph
// layout. Each node carries up to two ordered [Band] stacks: a primary stack
// filling the disk from one edge inward and a counter stack filling from the
// opposite edge, with the edge pair selected by [Orientation].
//
// # Basic Usage
//
// Create a diagram with [New], add nodes with [Diagram.AddNode] and edges
// with [Diagram.AddEdge], then check render preconditions with
// [Diagram.Validate]:
//
//	d := diagram.New()
//	d.AddNode(diagram.Node{ID: "rain", X: 100, Y: 80, R: 28,
//	    Bands: []diagram.Band{{Proportion: 0.7, Fill: "#4e79a7"}}})
//	d.AddNode(diagram.Node{ID: "wet", X: 240, Y: 180, R: 28})
//	d.AddEdge(diagram.Edge{From: "rain", To: "wet", Strength: 0.8})
//	if err := d.Validate(); err != nil { ... }
//
// # Saturation Semantics
//
// Within one stack, band proportions are cumulated in order and clamped at
// 1 before the inverse-area lookup. Overflow past 1 is silently truncated:
// this is designed saturation, not error suppression. The primary and
// counter stacks are independent and may visually overlap when their
// combined proportions exceed 1; the stack drawn later wins.
//
// # Concurrency
//
// Diagram is not safe for concurrent mutation. Rendering reads the diagram
// without modifying it, so a fully built diagram may be rendered from
// multiple goroutines.
package diagram
