package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/transitlab/netlint/pkg/network"
	"github.com/transitlab/netlint/pkg/render"
	"github.com/transitlab/netlint/pkg/topology"
)

// Output formats for the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path (stdout if empty)
	format      string // dot or svg
	detailed    bool   // edge labels with section ids and lengths
	positions   bool   // pin nodes to document coordinates
	noHighlight bool   // skip topology-based coloring
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a network as a DOT or SVG diagram",
		Long: `Render draws the road graph of a network file. Unless --no-highlight
is given, the network is analyzed first and findings are colored:
dead-ends orange, springs blue, isolates red, duplicate sections as
red edges, the highest-centrality node gold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: dot or svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label edges with section ids and lengths")
	cmd.Flags().BoolVar(&opts.positions, "positions", false, "pin nodes to their document coordinates")
	cmd.Flags().BoolVar(&opts.noHighlight, "no-highlight", false, "skip topology highlighting")

	return cmd
}

func (c *CLI) runRender(path string, opts *renderOpts) error {
	format := strings.ToLower(opts.format)
	if format != formatDOT && format != formatSVG {
		return fmt.Errorf("unknown format %q, want dot or svg", opts.format)
	}

	net, err := network.ImportFile(path)
	if err != nil {
		return err
	}

	var topo *topology.Result
	if !opts.noHighlight {
		prog := newProgress(c.Logger)
		topo = topology.Analyze(net)
		prog.done("Analyzed topology")
	}

	dot := render.ToDOT(net, topo, render.Options{
		Detailed:     opts.detailed,
		UsePositions: opts.positions,
	})

	var out []byte
	switch format {
	case formatDOT:
		out = []byte(dot)
	case formatSVG:
		spin := newSpinner("Rendering SVG...")
		spin.Start()
		out, err = render.RenderSVG(dot)
		spin.Stop()
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %s", format)
	printFile(opts.output)
	return nil
}
