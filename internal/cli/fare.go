package cli

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/dijkstra"
)

// fareCommand creates the fare command, which prices a distance.
func (c *CLI) fareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fare distance",
		Short: "Print the fare for a distance in km",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse distance %q: %w", args[0], err)
			}
			if km < 0 {
				return fmt.Errorf("distance must be non-negative, got %d", km)
			}

			def, _, err := c.loadNetwork()
			if err != nil {
				return err
			}

			s := def.Schedule()
			w := cmd.OutOrStdout()
			printKeyValue(w, "Distance", fmt.Sprintf("%d km", km))
			printKeyValue(w, "Fare", fmt.Sprintf("Rs. %d", s.Calculate(km)))
			printDetail(w, "Rs. %d + Rs. %d/km, capped at Rs. %d", s.Base, s.PerKm, s.Cap)
			return nil
		},
	}
}

// faresCommand creates the fares command, which prices the shortest route
// from one station to every station it reaches.
func (c *CLI) faresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fares source",
		Short: "Print distance and fare from a station to every reachable station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, g, err := c.loadNetwork()
			if err != nil {
				return err
			}

			dist := dijkstra.Distances(g, args[0])
			if dist == nil {
				return fmt.Errorf("unknown station %q", args[0])
			}

			type entry struct {
				station string
				km      int64
			}
			entries := make([]entry, 0, len(dist))
			for s, km := range dist {
				entries = append(entries, entry{s, km})
			}
			slices.SortFunc(entries, func(a, b entry) int {
				return cmp.Or(cmp.Compare(a.km, b.km), cmp.Compare(a.station, b.station))
			})

			s := def.Schedule()
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.station, strconv.FormatInt(e.km, 10), strconv.FormatInt(s.Calculate(e.km), 10)}
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render("Fares from "+core.Normalize(args[0])))
			fmt.Fprintln(w, newTable("Station", "Distance (km)", "Fare (Rs.)").Rows(rows...).Render())
			if unreached := g.StationCount() - len(dist); unreached > 0 {
				printDetail(w, "%d stations unreachable", unreached)
			}
			return nil
		},
	}
}
