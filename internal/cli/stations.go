package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/core"
)

// stationsCommand creates the stations command.
func (c *CLI) stationsCommand() *cobra.Command {
	var line, search string

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "List stations, optionally filtered by line or name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			stations := g.SortedStations()
			if line != "" {
				stations = g.StationsOnLine(line)
			}
			if search != "" {
				matches := make(map[string]bool)
				for _, s := range g.Search(search) {
					matches[s] = true
				}
				kept := stations[:0:0]
				for _, s := range stations {
					if matches[s] {
						kept = append(kept, s)
					}
				}
				stations = kept
			}

			w := cmd.OutOrStdout()
			if len(stations) == 0 {
				printInfo(w, "No stations match")
				return nil
			}

			rows := make([][]string, len(stations))
			for i, s := range stations {
				rows[i] = []string{s, strings.Join(stationLines(g, s), ", ")}
			}
			fmt.Fprintln(w, newTable("Station", "Lines").Rows(rows...).Render())
			printDetail(w, "%d of %d stations", len(stations), g.StationCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "only stations served by this line")
	cmd.Flags().StringVar(&search, "search", "", "only stations whose name contains this text")

	return cmd
}

// stationLines returns the sorted distinct lines serving station.
func stationLines(g *core.Graph, station string) []string {
	seen := make(map[string]bool)
	var lines []string
	for _, n := range g.Neighbors(station) {
		if n.Line != "" && !seen[n.Line] {
			seen[n.Line] = true
			lines = append(lines, n.Line)
		}
	}
	sort.Strings(lines)
	return lines
}

// newTable returns a bordered table with styled headers.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
