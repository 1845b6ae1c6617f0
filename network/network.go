// Package network loads transit network definitions from TOML and builds
// the station graph from them.
//
// A definition names the network, optionally overrides the fare schedule,
// declares lines with their display colours, and lists undirected edges:
//
//	name = "Hyderabad Metro"
//
//	[fare]
//	base = 10
//	per_km = 2
//	cap = 60
//
//	[[line]]
//	name = "Blue Line"
//	color = "#1f5fbf"
//
//	[[edge]]
//	from = "Ameerpet"
//	to = "Madhapur"
//	distance = 4
//	line = "Blue Line"
//
// The loader is where edge weights are checked: core.Graph stores whatever it
// is given, so Validate rejects non-positive distances before Build inserts them.
package network

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/fare"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("network: invalid definition")

//go:embed hyderabad.toml
var defaultData []byte

// Definition is the decoded form of a network file.
type Definition struct {
	Name  string      `toml:"name"`
	Fare  FareSection `toml:"fare"`
	Lines []Line      `toml:"line"`
	Edges []Edge      `toml:"edge"`
}

// FareSection overrides the fare schedule. Keys left out keep the defaults.
type FareSection struct {
	Base  int64 `toml:"base"`
	PerKm int64 `toml:"per_km"`
	Cap   int64 `toml:"cap"`
}

// Line declares a line and the colour it is drawn with.
type Line struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Edge is one undirected connection between two stations.
type Edge struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Distance int64  `toml:"distance"`
	Line     string `toml:"line"`
}

// Parse decodes a TOML network definition. Unknown keys are rejected so that
// typos do not silently drop data. Parse does not validate; call Validate or Build.
func Parse(data []byte) (*Definition, error) {
	d := fare.Default()
	def := &Definition{
		Fare: FareSection{Base: d.Base, PerKm: d.PerKm, Cap: d.Cap},
	}

	md, err := toml.Decode(string(data), def)
	if err != nil {
		return nil, fmt.Errorf("parse network: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys: %s", ErrInvalid, strings.Join(keys, ", "))
	}

	return def, nil
}

// Load reads and parses the network file at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read network %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return def, nil
}

// Default returns the embedded Hyderabad Metro definition.
func Default() *Definition {
	def, err := Parse(defaultData)
	if err != nil {
		panic(fmt.Sprintf("network: embedded definition: %v", err))
	}

	return def
}

// Validate reports every problem in the definition, joined into one error.
// Each problem wraps ErrInvalid.
//
// Rules:
//   - at least one edge;
//   - edge endpoints non-empty after normalization;
//   - edge distance > 0;
//   - if any line is declared, every edge line must be declared;
//   - line names non-empty and unique after normalization;
//   - fare values non-negative, cap ≥ base.
func (d *Definition) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if d.Fare.Base < 0 || d.Fare.PerKm < 0 || d.Fare.Cap < 0 {
		invalid("fare values must be non-negative")
	}
	if d.Fare.Cap < d.Fare.Base {
		invalid("fare cap %d is below base %d", d.Fare.Cap, d.Fare.Base)
	}

	declared := make(map[string]struct{}, len(d.Lines))
	for i, ln := range d.Lines {
		id := core.Normalize(ln.Name)
		if id == "" {
			invalid("line %d: name is empty", i+1)
			continue
		}
		if _, dup := declared[id]; dup {
			invalid("line %q declared twice", ln.Name)
		}
		declared[id] = struct{}{}
	}

	if len(d.Edges) == 0 {
		invalid("no edges")
	}
	for i, e := range d.Edges {
		if core.Normalize(e.From) == "" || core.Normalize(e.To) == "" {
			invalid("edge %d: station name is empty", i+1)
		}
		if e.Distance <= 0 {
			invalid("edge %d (%s - %s): distance %d must be positive", i+1, e.From, e.To, e.Distance)
		}
		if len(declared) > 0 {
			if _, ok := declared[core.Normalize(e.Line)]; !ok {
				invalid("edge %d (%s - %s): undeclared line %q", i+1, e.From, e.To, e.Line)
			}
		}
	}

	return errors.Join(errs...)
}

// Build validates the definition and inserts its edges, in file order, into a new graph.
func (d *Definition) Build() (*core.Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Distance, e.Line); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i+1, err)
		}
	}

	return g, nil
}

// Schedule returns the fare schedule of the network.
func (d *Definition) Schedule() fare.Schedule {
	return fare.Schedule{Base: d.Fare.Base, PerKm: d.Fare.PerKm, Cap: d.Fare.Cap}
}

// LineColor returns the declared colour of line, or "" when the line is unknown
// or has no colour.
func (d *Definition) LineColor(line string) string {
	id := core.Normalize(line)
	for _, ln := range d.Lines {
		if core.Normalize(ln.Name) == id {
			return ln.Color
		}
	}

	return ""
}

// Colors maps every declared normalized line name to its colour.
func (d *Definition) Colors() map[string]string {
	out := make(map[string]string, len(d.Lines))
	for _, ln := range d.Lines {
		if ln.Color != "" {
			out[core.Normalize(ln.Name)] = ln.Color
		}
	}

	return out
}
