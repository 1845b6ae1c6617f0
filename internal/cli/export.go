package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format string // "dot" or "svg"
	route  string // "SOURCE,DESTINATION" to highlight, or empty
	output string // output file; stdout when empty
}

// exportCommand creates the export command, which draws the network as DOT or SVG.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the network as Graphviz DOT or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatDOT, formatSVG)
			}

			def, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			ropts := render.Options{Title: def.Name, Colors: def.Colors()}
			if opts.route != "" {
				src, dst, ok := strings.Cut(opts.route, ",")
				if !ok {
					return fmt.Errorf("--route wants SOURCE,DESTINATION, got %q", opts.route)
				}
				ropts.Route = dijkstra.ShortestPath(g, src, dst)
				if ropts.Route == nil {
					return fmt.Errorf("%w: %s to %s", errNoRoute, strings.TrimSpace(src), strings.TrimSpace(dst))
				}
			}

			data := []byte(render.DOT(g, ropts))
			if opts.format == formatSVG {
				prog := newProgress(loggerFromContext(cmd.Context()))
				if data, err = render.SVG(cmd.Context(), string(data)); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			printSuccess(cmd.OutOrStdout(), "Exported %s", strings.ToUpper(opts.format))
			printFile(cmd.OutOrStdout(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot or svg")
	cmd.Flags().StringVar(&opts.route, "route", "", "highlight the shortest route SOURCE,DESTINATION")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}
