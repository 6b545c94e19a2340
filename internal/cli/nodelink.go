package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bandgraph/pkg/render/dot"
)

// nodelinkOpts holds the command-line flags for the nodelink command.
type nodelinkOpts struct {
	output   string // output file path
	format   string // output format: "svg", "pdf", "png", or "dot"
	detailed bool   // include radius, band counts, and edge strengths
}

// nodelinkCommand creates the nodelink command for structural previews.
// It renders the diagram as a Graphviz node-link graph, ignoring node
// positions and band geometry. Useful for checking connectivity before
// laying out a diagram by hand.
func (c *CLI) nodelinkCommand() *cobra.Command {
	var opts nodelinkOpts

	cmd := &cobra.Command{
		Use:   "nodelink [file]",
		Short: "Preview a diagram's structure as a node-link graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodelink(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults to input name with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg (default), pdf, png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include radius, band counts, and edge strengths")

	return cmd
}

func runNodelink(cmd *cobra.Command, input string, opts *nodelinkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	d, err := loadDiagram(ctx, input)
	if err != nil {
		return err
	}

	logger.Info("Generating node-link preview")
	src := dot.ToDOT(d, dot.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(src)
	case "svg":
		data, err = dot.RenderSVG(src)
	case "pdf":
		data, err = withSpinner(ctx, "Rendering PDF", func() ([]byte, error) {
			return dot.RenderPDF(src)
		})
	case "png":
		data, err = withSpinner(ctx, "Rendering PNG", func() ([]byte, error) {
			return dot.RenderPNG(src, defaultPNGScale)
		})
	default:
		return fmt.Errorf("unknown format: %s (must be 'svg', 'pdf', 'png', or 'dot')", opts.format)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, ".json") + "_nodelink." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	printFile(path)
	return nil
}
