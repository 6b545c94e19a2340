package disk

import "github.com/matzehuels/bandgraph/pkg/theme"

// Option configures rendering.
type Option func(*renderer)

type renderer struct {
	theme  theme.Theme
	labels bool
	width  float64 // 0 = derive from node bounds
	height float64
}

// WithTheme overrides the default theme.
func WithTheme(t theme.Theme) Option { return func(r *renderer) { r.theme = t } }

// WithLabels enables node labels beneath each disk.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithSize fixes the frame size instead of deriving it from node bounds.
func WithSize(width, height float64) Option {
	return func(r *renderer) { r.width, r.height = width, height }
}

func newRenderer(opts ...Option) renderer {
	r := renderer{theme: theme.Default()}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
