package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/internal/buildinfo"
	"github.com/katalvlaran/metro/network"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// networkPath is the --network flag; empty selects the embedded network.
	networkPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "metro",
		Short: "Metro finds the shortest route and fare between stations",
		Long: `Metro loads a metro network, finds the shortest route between two stations
by distance, and prices it with the network's fare schedule.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.networkPath, "network", "", "network definition file (TOML); defaults to the built-in Hyderabad Metro")

	root.AddCommand(c.routeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.fareCommand())
	root.AddCommand(c.faresCommand())
	root.AddCommand(c.nearbyCommand())
	root.AddCommand(c.exportCommand())

	return root
}

// loadNetwork reads the selected network definition and builds its graph.
func (c *CLI) loadNetwork() (*network.Definition, *core.Graph, error) {
	var (
		def *network.Definition
		err error
	)
	if c.networkPath == "" {
		def = network.Default()
	} else if def, err = network.Load(c.networkPath); err != nil {
		return nil, nil, err
	}

	g, err := def.Build()
	if err != nil {
		return nil, nil, err
	}

	c.Logger.Debug("network loaded", "name", def.Name, "stations", g.StationCount(), "edges", g.EdgeCount())

	return def, g, nil
}
