// Package io provides JSON import and export for disk-band diagrams.
//
// # Overview
//
// This package is the file boundary of bandgraph: it reads a diagram
// description (positioned nodes with band stacks, directed edges) and
// writes the same format back out with round-trip fidelity.
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": "rain", "label": "Rain", "x": 100, "y": 80, "r": 28,
//	     "orientation": "vertical",
//	     "bands": [{"proportion": 0.7, "fill": "#4e79a7"}],
//	     "counter_bands": [{"proportion": 0.2, "fill": "#e15759"}]},
//	    {"id": "wet", "x": 260, "y": 200, "r": 28}
//	  ],
//	  "edges": [
//	    {"from": "rain", "to": "wet", "strength": 0.8, "blocked": false}
//	  ]
//	}
//
// # Node Fields
//
// Required: id, x, y, r (positions are supplied; bandgraph computes no
// layout). Optional: label, orientation ("vertical" by default, or
// "horizontal"), bands, counter_bands. Band fills accept any SVG paint,
// including url(#hatch) for the built-in hatch pattern.
//
// # Import and Export
//
// Use [ImportJSON] / [ReadJSON] to load, [ExportJSON] / [WriteJSON] to
// save. Import reports structural problems (duplicate IDs, edges to
// unknown nodes, unknown orientation names) with the offending node or
// edge named in the error; geometric preconditions are checked separately
// by diagram.Validate before rendering.
package io
