// Package cache provides artifact caching for rendered diagrams.
//
// Serve mode renders the same diagram repeatedly as browsers refresh;
// caching the rendered bytes keyed by diagram content and render options
// avoids redundant work. Two implementations are provided: [FileCache]
// persists entries on disk between runs, and [NullCache] disables caching
// entirely.
package cache

import (
	"context"
	"time"
)

// Cache stores rendered artifacts as opaque byte slices.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires;
	// a negative ttl stores the entry already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// ArtifactKeyOpts captures the render options that affect output bytes.
// Two renders with the same diagram hash and the same opts produce
// identical artifacts.
type ArtifactKeyOpts struct {
	Format string  // svg, png, pdf or json
	Theme  string  // hash of the theme file, empty for the default theme
	Labels bool    // whether node labels are drawn
	Width  int     // explicit canvas width, 0 for auto
	Height int     // explicit canvas height, 0 for auto
	Scale  float64 // raster scale for png output
}

// Keyer generates cache keys for rendered artifacts.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact given the hash
	// of the diagram input and the render options.
	ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(diagramHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", diagramHash, opts)
}
