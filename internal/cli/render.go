package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bandgraph/pkg/diagram"
	"github.com/matzehuels/bandgraph/pkg/errors"
	"github.com/matzehuels/bandgraph/pkg/io"
	"github.com/matzehuels/bandgraph/pkg/observability"
	"github.com/matzehuels/bandgraph/pkg/render/disk"
	"github.com/matzehuels/bandgraph/pkg/theme"
)

const (
	// defaultPNGScale is the raster scale used for PNG output.
	// 2x resolution keeps text crisp on high-DPI displays.
	defaultPNGScale = 2.0
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	formats []string // output formats: "svg", "pdf", "png", "json"
	theme   string   // path to a TOML theme file, empty for the default theme
	labels  bool     // draw node labels beneath each disk
	width   float64  // canvas width in pixels, 0 derives it from node extents
	height  float64  // canvas height in pixels, 0 derives it from node extents
	scale   float64  // raster scale for png output
}

// renderCommand creates the render command for generating diagram output.
// It supports SVG, PDF, PNG, and JSON formats.
//
// Default settings:
//   - format: svg
//   - labels: true
//   - scale: 2.0 (PNG only)
//   - canvas size derived from node positions and radii
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		labels: true,
		scale:  defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram to SVG, PDF, PNG, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, pdf, png (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file (defaults to the built-in theme)")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw node labels beneath each disk")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (0 = derive from node extents)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (0 = derive from node extents)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale for PNG output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "json": true, "pdf": true, "png": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'json', 'pdf', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
// This is used when generating multiple files (e.g., graph.svg, graph.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// loadDiagram imports a diagram file, validates its geometry, and reports
// load events to the registered observability hooks.
func loadDiagram(ctx context.Context, input string) (*diagram.Diagram, error) {
	logger := loggerFromContext(ctx)

	observability.Render().OnLoadStart(ctx, input)
	start := time.Now()

	d, err := io.ImportJSON(input)
	if err != nil {
		observability.Render().OnLoadComplete(ctx, input, 0, time.Since(start), err)
		return nil, err
	}
	if err := d.Validate(); err != nil {
		observability.Render().OnLoadComplete(ctx, input, d.NodeCount(), time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeInvalidDiagram, err, "validate %s", input)
	}
	observability.Render().OnLoadComplete(ctx, input, d.NodeCount(), time.Since(start), nil)

	logger.Debugf("Loaded diagram: %d nodes, %d edges", d.NodeCount(), d.EdgeCount())
	return d, nil
}

// loadTheme resolves the theme for a render: the file at path, or the
// built-in default when path is empty.
func loadTheme(path string) (theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

// buildRenderOpts constructs disk renderer options from the command flags.
func buildRenderOpts(th theme.Theme, opts *renderOpts) []disk.Option {
	result := []disk.Option{disk.WithTheme(th)}
	if opts.labels {
		result = append(result, disk.WithLabels())
	}
	if opts.width > 0 && opts.height > 0 {
		result = append(result, disk.WithSize(opts.width, opts.height))
	}
	return result
}

// validateRenderPaths rejects unsafe flag-supplied paths before anything
// is read or written.
func validateRenderPaths(opts *renderOpts) error {
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
	}
	if opts.theme != "" {
		return errors.ValidatePath(opts.theme)
	}
	return nil
}

// runRender loads the diagram from input and renders it to the requested formats.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if err := validateRenderPaths(opts); err != nil {
		return err
	}

	logger.Infof("Rendering %s", input)
	p := newProgress(logger)

	d, err := loadDiagram(ctx, input)
	if err != nil {
		return err
	}
	printStats(d.NodeCount(), d.EdgeCount(), false)

	th, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}

	observability.Render().OnRenderStart(ctx, opts.formats)
	start := time.Now()

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := renderAndWrite(ctx, d, th, format, path, opts); err != nil {
			observability.Render().OnRenderComplete(ctx, opts.formats, time.Since(start), err)
			return err
		}
	}
	observability.Render().OnRenderComplete(ctx, opts.formats, time.Since(start), nil)
	p.done(fmt.Sprintf("Rendered %s", strings.Join(opts.formats, ", ")))
	return nil
}

// renderAndWrite renders the diagram to a single format and writes it to path.
func renderAndWrite(ctx context.Context, d *diagram.Diagram, th theme.Theme, format, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	data, err := renderDiagram(ctx, d, th, format, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printFile(path)
	return nil
}

// renderDiagram dispatches to the appropriate sink based on format.
// PNG and PDF shell out to rsvg-convert, which can take a moment on large
// diagrams, so those formats show a spinner.
func renderDiagram(ctx context.Context, d *diagram.Diagram, th theme.Theme, format string, opts *renderOpts) ([]byte, error) {
	renderOpts := buildRenderOpts(th, opts)

	switch format {
	case "svg":
		return disk.RenderSVG(d, renderOpts...), nil
	case "json":
		return disk.RenderJSON(d, renderOpts...)
	case "png":
		return withSpinner(ctx, "Converting to PNG", func() ([]byte, error) {
			return disk.RenderPNG(d, opts.scale, renderOpts...)
		})
	case "pdf":
		return withSpinner(ctx, "Converting to PDF", func() ([]byte, error) {
			return disk.RenderPDF(d, renderOpts...)
		})
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// withSpinner runs fn while showing a progress spinner on stderr.
func withSpinner(ctx context.Context, message string, fn func() ([]byte, error)) ([]byte, error) {
	s := newSpinnerWithContext(ctx, message)
	s.Start()
	data, err := fn()
	s.Stop()
	return data, err
}
