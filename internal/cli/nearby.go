package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/bfs"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
)

// nearbyCommand creates the nearby command, which lists the stations within
// a number of stops of a station.
func (c *CLI) nearbyCommand() *cobra.Command {
	var (
		stops int
		lines []string
	)

	cmd := &cobra.Command{
		Use:   "nearby station",
		Short: "List stations within a number of stops of a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			res, err := bfs.Walk(g, args[0],
				bfs.WithContext(cmd.Context()),
				bfs.WithMaxStops(stops),
				bfs.WithLines(lines...),
			)
			if errors.Is(err, bfs.ErrStartNotFound) {
				return fmt.Errorf("unknown station %q", args[0])
			}
			if err != nil {
				return err
			}

			dist := dijkstra.Distances(g, args[0], dijkstra.WithLines(lines...))
			s := def.Schedule()
			rows := make([][]string, 0, len(res.Order))
			for _, st := range res.Order[1:] {
				km := dist[st]
				rows = append(rows, []string{st, strconv.Itoa(res.Stops[st]), strconv.FormatInt(km, 10), strconv.FormatInt(s.Calculate(km), 10)})
			}

			w := cmd.OutOrStdout()
			start := core.Normalize(args[0])
			if len(rows) == 0 {
				if stops == 0 {
					printInfo(w, "No stations reachable from %s", start)
				} else {
					printInfo(w, "No stations within %s of %s", plural(stops, "stop"), start)
				}
				return nil
			}
			fmt.Fprintln(w, StyleTitle.Render("Stations near "+start))
			fmt.Fprintln(w, newTable("Station", "Stops", "Distance (km)", "Fare (Rs.)").Rows(rows...).Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&stops, "stops", 2, "maximum number of stops; 0 for no limit")
	cmd.Flags().StringSliceVar(&lines, "line", nil, "travel only on these lines (repeatable)")

	return cmd
}
