package network_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/dijkstra"
	"github.com/katalvlaran/metro/fare"
	"github.com/katalvlaran/metro/network"
)

const sample = `
name = "Sample"

[[line]]
name = "Blue"
color = "#0000ff"

[[edge]]
from = "A"
to = "B"
distance = 2
line = "Blue"

[[edge]]
from = "B"
to = "C"
distance = 3
line = " BLUE "
`

func TestDefault(t *testing.T) {
	def := network.Default()

	assert.Equal(t, "Hyderabad Metro", def.Name)
	assert.Len(t, def.Edges, 8)
	assert.Equal(t, fare.Default(), def.Schedule())
	require.NoError(t, def.Validate())

	g, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, 9, g.StationCount())
	assert.Equal(t, 8, g.EdgeCount())
	assert.Equal(t, []string{"blue line", "red line"}, g.Lines())

	path := dijkstra.ShortestPath(g, "Ameerpet", "Gachibowli")
	assert.Equal(t, int64(12), dijkstra.TotalDistance(path))
}

func TestParse_Sample(t *testing.T) {
	def, err := network.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Sample", def.Name)
	assert.Equal(t, fare.Default(), def.Schedule(), "missing [fare] keeps defaults")
	assert.Equal(t, "#0000ff", def.LineColor("blue"))
	assert.Equal(t, "", def.LineColor("red"))
	assert.Equal(t, map[string]string{"blue": "#0000ff"}, def.Colors())

	g, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Stations())
	assert.Equal(t, int64(5), dijkstra.TotalDistance(dijkstra.ShortestPath(g, "a", "c")))
}

func TestParse_PartialFare(t *testing.T) {
	def, err := network.Parse([]byte(`
[fare]
cap = 40

[[edge]]
from = "A"
to = "B"
distance = 1
`))
	require.NoError(t, err)
	assert.Equal(t, fare.Schedule{Base: 10, PerKm: 2, Cap: 40}, def.Schedule())
	require.NoError(t, def.Validate(), "no declared lines means any line is accepted")
}

func TestParse_Errors(t *testing.T) {
	_, err := network.Parse([]byte(`name = `))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse network")

	_, err = network.Parse([]byte(`
[[edge]]
from = "A"
to = "B"
distnce = 3
`))
	assert.ErrorIs(t, err, network.ErrInvalid)
	assert.Contains(t, err.Error(), "distnce")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		def  network.Definition
		want string
	}{
		{
			name: "no edges",
			def:  network.Definition{Fare: network.FareSection{Base: 10, PerKm: 2, Cap: 60}},
			want: "no edges",
		},
		{
			name: "empty station",
			def: network.Definition{
				Fare:  network.FareSection{Base: 10, PerKm: 2, Cap: 60},
				Edges: []network.Edge{{From: " ", To: "B", Distance: 1}},
			},
			want: "station name is empty",
		},
		{
			name: "non-positive distance",
			def: network.Definition{
				Fare:  network.FareSection{Base: 10, PerKm: 2, Cap: 60},
				Edges: []network.Edge{{From: "A", To: "B", Distance: 0}},
			},
			want: "must be positive",
		},
		{
			name: "undeclared line",
			def: network.Definition{
				Fare:  network.FareSection{Base: 10, PerKm: 2, Cap: 60},
				Lines: []network.Line{{Name: "Blue"}},
				Edges: []network.Edge{{From: "A", To: "B", Distance: 1, Line: "Red"}},
			},
			want: "undeclared line",
		},
		{
			name: "duplicate line",
			def: network.Definition{
				Fare:  network.FareSection{Base: 10, PerKm: 2, Cap: 60},
				Lines: []network.Line{{Name: "Blue"}, {Name: " blue"}},
				Edges: []network.Edge{{From: "A", To: "B", Distance: 1, Line: "Blue"}},
			},
			want: "declared twice",
		},
		{
			name: "cap below base",
			def: network.Definition{
				Fare:  network.FareSection{Base: 10, PerKm: 2, Cap: 5},
				Edges: []network.Edge{{From: "A", To: "B", Distance: 1}},
			},
			want: "below base",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.def.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, network.ErrInvalid)
			assert.Contains(t, err.Error(), tc.want)

			_, err = tc.def.Build()
			assert.ErrorIs(t, err, network.ErrInvalid)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	def := network.Definition{
		Fare: network.FareSection{Base: 10, PerKm: 2, Cap: 60},
		Edges: []network.Edge{
			{From: "A", To: "B", Distance: -1},
			{From: "", To: "C", Distance: 2},
		},
	}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edge 1")
	assert.Contains(t, err.Error(), "edge 2")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	def, err := network.Load(path)
	require.NoError(t, err)
	assert.Len(t, def.Edges, 2)

	_, err = network.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
