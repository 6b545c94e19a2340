package disk

import (
	"fmt"
	"strings"

	"github.com/matzehuels/bandgraph/pkg/theme"
)

// defs builds the static SVG resources referenced by rendered elements:
// arrowhead markers for active and blocked edges, and a diagonal hatch
// pattern that band fills may reference as url(#hatch). These are
// configuration, not geometry; the renderer never computes into them.
func defs(th *theme.Theme) string {
	var b strings.Builder
	writeArrowMarker(&b, "arrow", th.Edge.ArrowLength, th.Edge.Color, 0)
	writeArrowMarker(&b, "arrow-blocked", th.Edge.ArrowLength, th.Edge.BlockedColor, th.Edge.BlockedOpacity)
	fmt.Fprintf(&b,
		`<pattern id="hatch" width="6" height="6" patternTransform="rotate(45)" patternUnits="userSpaceOnUse">`+
			`<line x1="0" y1="0" x2="0" y2="6" stroke="#999999" stroke-width="2"/></pattern>`)
	return b.String()
}

// writeArrowMarker emits a triangular arrowhead marker sized in user space
// so its length matches the gap the edge composer reserves at line ends.
func writeArrowMarker(b *strings.Builder, id string, length float64, color string, opacity float64) {
	half := length * 0.4
	opacityAttr := ""
	if opacity != 0 {
		opacityAttr = fmt.Sprintf(` opacity="%.2f"`, opacity)
	}
	fmt.Fprintf(b,
		`<marker id="%s" markerWidth="%.1f" markerHeight="%.1f" refX="0" refY="%.1f" orient="auto" markerUnits="userSpaceOnUse">`+
			`<path d="M0,0 L%.1f,%.1f L0,%.1f z" fill="%s"%s/></marker>`,
		id, length, 2*half, half, length, half, 2*half, color, opacityAttr)
}
