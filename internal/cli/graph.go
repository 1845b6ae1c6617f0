package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/bfs"
)

// graphCommand creates the graph command, which prints every station with its neighbours.
func (c *CLI) graphCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the adjacency list of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(def.Name+" Graph:"))
			for _, s := range g.Stations() {
				var b strings.Builder
				b.WriteString(s)
				b.WriteString(": ")
				for _, n := range g.Neighbors(s) {
					fmt.Fprintf(&b, "(%s, %d km, %s) ", n.Station, n.Distance, n.Line)
				}
				fmt.Fprintln(w, b.String())
			}
			if parts := bfs.Components(g); len(parts) > 1 {
				fmt.Fprintln(w)
				printDetail(w, "%d disconnected parts; first stations: %s", len(parts), firstStations(parts))
			}
			return nil
		},
	}
}

func firstStations(parts [][]string) string {
	firsts := make([]string, len(parts))
	for i, p := range parts {
		firsts[i] = p[0]
	}
	return strings.Join(firsts, ", ")
}
