package diagram

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Diagram.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Diagram.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Diagram.AddEdge] when the From
	// node does not exist in the diagram.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Diagram.AddEdge] when the To
	// node does not exist in the diagram.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Orientation selects which pair of opposing disk edges the two band
// stacks grow from.
type Orientation int

const (
	// OrientationVertical stacks bands along the vertical axis: the primary
	// stack grows upward from the bottom edge, the counter stack downward
	// from the top edge.
	OrientationVertical Orientation = iota
	// OrientationHorizontal stacks bands along the horizontal axis: the
	// primary stack grows rightward from the left edge, the counter stack
	// leftward from the right edge.
	OrientationHorizontal
)

// String returns the orientation name used in serialized diagrams.
func (o Orientation) String() string {
	if o == OrientationHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Band is one proportion-weighted colored region inside a node's disk.
// Bands are stacked in slice order; order is significant. The visible area
// of each band equals its Proportion of the disk's total area.
type Band struct {
	Proportion float64 // Fraction of the disk area in [0, 1]
	Fill       string  // SVG fill (color or url(#...) reference)
}

// Node is a disk-shaped diagram vertex at a supplied position.
//
// Bands fill the disk from one edge inward, CounterBands from the opposite
// edge inward; which pair of edges is used depends on Orientation. Within a
// stack the proportions are cumulated in order and clamped at 1; overflow
// is silently truncated by the inverse-area lookup, and the two stacks may
// overlap if their combined proportions exceed 1 (last drawn wins).
type Node struct {
	ID    string  // Unique identifier
	Label string  // Display text (empty: the ID is used)
	X, Y  float64 // Disk center
	R     float64 // Disk radius, must be positive

	Orientation  Orientation
	Bands        []Band // Primary stack
	CounterBands []Band // Stack growing from the opposite edge
}

// Edge is a directed connection between two nodes. Strength scales the
// stroke weight; an edge with Strength 0 is valid and simply not drawn.
// Blocked edges render dashed and muted with a perpendicular cancellation
// bar across the midpoint.
type Edge struct {
	From     string
	To       string
	Strength float64 // Stroke weight factor in [0, 1]; 0 means invisible
	Blocked  bool
}

// Diagram is a directed graph of positioned disk nodes.
//
// The zero value is not usable - use New. Diagram is not safe for
// concurrent use without external synchronization.
type Diagram struct {
	nodes map[string]*Node
	order []string // node IDs in insertion order, for deterministic output
	edges []Edge
}

// New creates an empty diagram.
func New() *Diagram {
	return &Diagram{nodes: make(map[string]*Node)}
}

// AddNode adds a node to the diagram. It returns ErrInvalidNodeID for an
// empty ID and ErrDuplicateNodeID if the ID is already taken. Geometric
// preconditions (positive radius, proportion ranges) are checked by
// [Diagram.Validate], not here.
func (d *Diagram) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := d.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := &n
	d.nodes[node.ID] = node
	d.order = append(d.order, node.ID)
	return nil
}

// AddEdge adds a directed edge between two existing nodes. It returns
// ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is missing.
// Multiple edges between the same pair are allowed.
func (d *Diagram) AddEdge(e Edge) error {
	if _, ok := d.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := d.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	d.edges = append(d.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (d *Diagram) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order. The slice is freshly
// allocated but the pointers alias the diagram's nodes.
func (d *Diagram) Nodes() []*Node {
	out := make([]*Node, len(d.order))
	for i, id := range d.order {
		out[i] = d.nodes[id]
	}
	return out
}

// Edges returns a copy of the edge list in insertion order.
func (d *Diagram) Edges() []Edge {
	return slices.Clone(d.edges)
}

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }
