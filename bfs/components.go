package bfs

import "github.com/katalvlaran/metro/core"

// Components partitions the stations of g into connected groups.
// Each group is in BFS order from its first-referenced station; groups are
// ordered by that station. A nil graph yields nil.
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	seen := make(map[string]bool, g.StationCount())
	var out [][]string
	for _, s := range g.Stations() {
		if seen[s] {
			continue
		}
		res, err := Walk(g, s)
		if err != nil {
			// s comes from g.Stations, so Walk cannot miss it.
			continue
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}
	return out
}
