// Package render provides visualization rendering for disk-band diagrams.
//
// # Overview
//
// This package hosts the rendering pipeline shared by bandgraph's output
// formats:
//
//   - Generic format conversion (SVG to PDF/PNG) via the external
//     rsvg-convert tool
//   - Disk-band rendering (in the [disk] subpackage)
//   - Graphviz node-link structural previews (in the [dot] subpackage)
//   - The drawing-surface abstraction (in the [scene] subpackage)
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG produced by the subpackages:
//
//	svg := disk.RenderSVG(d)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [disk]: github.com/matzehuels/bandgraph/pkg/render/disk
// [dot]: github.com/matzehuels/bandgraph/pkg/render/dot
// [scene]: github.com/matzehuels/bandgraph/pkg/render/scene
package render
