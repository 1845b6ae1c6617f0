package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/journey"
)

// errNoRoute is returned when no route joins the requested stations.
var errNoRoute = errors.New("no route found")

// routeOpts holds the command-line flags for the route command.
type routeOpts struct {
	pick        bool     // choose stations in the interactive picker
	lines       []string // travel only on these lines
	maxDistance int64    // ignore stations farther than this; 0 means no limit
}

// routeCommand creates the route command. Without arguments it prompts for
// the source and destination on stdin, or opens the picker with --pick.
func (c *CLI) routeCommand() *cobra.Command {
	var opts routeOpts

	cmd := &cobra.Command{
		Use:   "route [source destination]",
		Short: "Find the shortest route and fare between two stations",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts a source and a destination, or none to be prompted; received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.maxDistance < 0 {
				return fmt.Errorf("--max-distance must be non-negative, got %d", opts.maxDistance)
			}

			def, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			var src, dst string
			switch {
			case len(args) == 2:
				src, dst = args[0], args[1]
			case opts.pick:
				var ok bool
				if src, dst, ok, err = pickRoute(g); err != nil || !ok {
					if err == nil {
						printDetail(cmd.OutOrStdout(), "No selection made")
					}
					return err
				}
			default:
				if src, dst, err = promptRoute(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			var findOpts []dijkstra.Option
			if len(opts.lines) > 0 {
				findOpts = append(findOpts, dijkstra.WithLines(opts.lines...))
			}
			if opts.maxDistance > 0 {
				findOpts = append(findOpts, dijkstra.WithMaxDistance(opts.maxDistance))
			}

			logger := loggerFromContext(cmd.Context())
			logger.Debug("finding route", "from", src, "to", dst, "lines", opts.lines, "max", opts.maxDistance)

			j := journey.Summarize(dijkstra.ShortestPath(g, src, dst, findOpts...), def.Schedule())
			return printRoute(cmd.OutOrStdout(), logger, g, src, dst, j)
		},
	}

	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose stations interactively")
	cmd.Flags().StringSliceVar(&opts.lines, "line", nil, "travel only on these lines (repeatable)")
	cmd.Flags().Int64Var(&opts.maxDistance, "max-distance", 0, "ignore stations farther than this many km")

	return cmd
}

// promptRoute reads the source and destination station, one per line.
func promptRoute(in io.Reader, out io.Writer) (src, dst string, err error) {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read station: %w", err)
			}
			return "", fmt.Errorf("read station: %w", io.ErrUnexpectedEOF)
		}
		return strings.TrimSpace(sc.Text()), nil
	}

	if src, err = ask("Enter source station: "); err != nil {
		return "", "", err
	}
	if dst, err = ask("Enter destination station: "); err != nil {
		return "", "", err
	}
	fmt.Fprintln(out)

	return src, dst, nil
}

// pickRoute asks for both stations in the interactive picker.
func pickRoute(g *core.Graph) (src, dst string, ok bool, err error) {
	stations := g.SortedStations()
	if src, ok, err = pickStation("Select source station", stations); err != nil || !ok {
		return "", "", false, err
	}
	if dst, ok, err = pickStation("Select destination station", stations); err != nil || !ok {
		return "", "", false, err
	}
	return src, dst, true, nil
}

// printRoute writes the journey, or reports why none was found.
func printRoute(w io.Writer, logger *log.Logger, g *core.Graph, src, dst string, j journey.Journey) error {
	if !j.Found() {
		known := true
		for _, s := range []string{src, dst} {
			if !g.HasStation(s) {
				logger.Warn("unknown station", "station", s)
				known = false
			}
		}
		if known {
			if res, err := bfs.Walk(g, src); err == nil {
				if _, ok := res.Stops[core.Normalize(dst)]; ok {
					logger.Warn("route excluded by --line or --max-distance", "from", src, "to", dst)
				} else {
					logger.Warn("stations are not connected", "from", src, "to", dst)
				}
			}
		}
		printError(w, "No path found between %s and %s!", src, dst)
		return fmt.Errorf("%w: %s to %s", errNoRoute, src, dst)
	}

	first, last := j.Steps[0].Station, j.Steps[len(j.Steps)-1].Station
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Shortest Path from %s to %s:", first, last)))
	fmt.Fprintln(w, j.Format())
	fmt.Fprintln(w)

	for _, leg := range j.Legs {
		printDetail(w, "%s: %s %s %s (%s, %d km)", leg.Line, leg.From, iconArrow, leg.To, plural(leg.Stops, "stop"), leg.Distance)
	}
	if len(j.Interchanges) > 0 {
		printDetail(w, "Change at: %s", strings.Join(j.Interchanges, ", "))
	}
	if len(j.Legs) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Distance: %d km\n", j.TotalDistance)
	fmt.Fprintf(w, "Total Fare: Rs. %d\n", j.Fare)
	printKeyValue(w, "Stops", strconv.Itoa(j.Stops))
	printKeyValue(w, "Est. time", fmt.Sprintf("%d min", j.Minutes))
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
