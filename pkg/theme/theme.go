// Package theme holds the visual parameters of a rendered diagram: colors,
// stroke widths, edge padding and the dimensions of decorative elements.
// Themes are plain data loaded from TOML files; unspecified keys keep
// their defaults.
package theme

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bandgraph/pkg/errors"
)

// Theme bundles all visual parameters for one render.
type Theme struct {
	Background string `toml:"background"` // Canvas background; empty = transparent
	Node       Node   `toml:"node"`
	Edge       Edge   `toml:"edge"`
	Label      Label  `toml:"label"`
}

// Node styles the disk and its band stack.
type Node struct {
	BaseFill     string  `toml:"base_fill"`     // Fallback fill beneath both stacks
	Outline      string  `toml:"outline"`       // Boundary circle color
	OutlineWidth float64 `toml:"outline_width"` // Boundary stroke width
}

// Edge styles the arrow lines between nodes.
type Edge struct {
	Color          string  `toml:"color"`           // Stroke for active edges
	BlockedColor   string  `toml:"blocked_color"`   // Stroke for blocked edges and bars
	BaseWidth      float64 `toml:"base_width"`      // Stroke width at strength 0
	WidthScale     float64 `toml:"width_scale"`     // Added stroke width at strength 1
	Gap            float64 `toml:"gap"`             // Clearance between node boundary and line
	ArrowLength    float64 `toml:"arrow_length"`    // Arrowhead length reserved at the target end
	BlockedDash    string  `toml:"blocked_dash"`    // Dash pattern for blocked edges
	BlockedOpacity float64 `toml:"blocked_opacity"` // Opacity for blocked edges
	BarHalfLength  float64 `toml:"bar_half_length"` // Half-length of the cancellation bar
}

// Label styles node labels.
type Label struct {
	Color  string  `toml:"color"`
	Size   float64 `toml:"size"`
	Offset float64 `toml:"offset"` // Distance below the disk boundary
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Background: "#ffffff",
		Node: Node{
			BaseFill:     "#ececec",
			Outline:      "#333333",
			OutlineWidth: 2,
		},
		Edge: Edge{
			Color:          "#333333",
			BlockedColor:   "#b04a4a",
			BaseWidth:      1,
			WidthScale:     3,
			Gap:            4,
			ArrowLength:    10,
			BlockedDash:    "6,4",
			BlockedOpacity: 0.45,
			BarHalfLength:  7,
		},
		Label: Label{
			Color:  "#333333",
			Size:   13,
			Offset: 6,
		},
	}
}

// Load reads a TOML theme file and merges it over [Default]: keys absent
// from the file keep their default values. The merged theme is validated
// before it is returned.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read theme %s", path)
	}
	t := Default()
	if err := toml.Unmarshal(data, &t); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "parse theme %s", path)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, errors.Wrap(errors.ErrCodeInvalidTheme, err, "theme %s", path)
	}
	return t, nil
}

// Validate checks that every color in the theme parses and the blocked
// dash pattern is well formed.
func (t Theme) Validate() error {
	colors := map[string]string{
		"background":         t.Background,
		"node.base_fill":     t.Node.BaseFill,
		"node.outline":       t.Node.Outline,
		"edge.color":         t.Edge.Color,
		"edge.blocked_color": t.Edge.BlockedColor,
		"label.color":        t.Label.Color,
	}
	for key, c := range colors {
		if c == "" {
			continue
		}
		if err := errors.ValidateColor(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s", key)
		}
	}
	if err := errors.ValidateDashPattern(t.Edge.BlockedDash); err != nil {
		return err
	}
	return nil
}
