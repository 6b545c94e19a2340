// Package dot renders diagrams as traditional node-link graphs.
//
// # Overview
//
// This package produces directed graph previews using Graphviz, where
// nodes appear as boxes connected by arrows. It's an alternative to the
// disk-band visualization for quickly inspecting a diagram's structure
// without positions or band geometry.
//
// # Usage
//
// Convert a diagram to DOT format, then render to SVG:
//
//	src := dot.ToDOT(d, dot.Options{Detailed: false})
//	svg, err := dot.RenderSVG(src)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := dot.RenderPDF(src)
//	png, err := dot.RenderPNG(src, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include radius and band counts,
//     and edge labels show strength.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// Blocked edges are drawn dashed; edge stroke width follows strength so
// the preview carries the same visual weight as the disk rendering.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package dot
