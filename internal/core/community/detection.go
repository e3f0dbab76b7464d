// Package community finds sub-circuits: groups of species connected through
// shared reactions.
package community

import (
	"sort"

	"github.com/agenthands/gcsynth/internal/core/model"
)

type CircuitDetector interface {
	Detect(m *model.ReactionNetworkModel) [][]string
}

// ComponentDetector reports the connected components of the species graph in
// which two species are adjacent when they take part in the same reaction.
type ComponentDetector struct {
	// MinSize drops components smaller than this; isolated species are not circuits.
	MinSize int
}

func NewComponentDetector() CircuitDetector {
	return &ComponentDetector{MinSize: 2}
}

func (d *ComponentDetector) Detect(m *model.ReactionNetworkModel) [][]string {
	adj := make(map[string][]string)
	known := make(map[string]bool, len(m.Species))
	for _, s := range m.Species {
		known[s.ID] = true
	}

	for _, r := range m.Reactions {
		var members []string
		for _, refs := range [][]model.SpeciesReference{r.Reactants, r.Products, r.Modifiers} {
			for _, ref := range refs {
				if known[ref.Species] {
					members = append(members, ref.Species)
				}
			}
		}
		// a star around the first member connects the whole reaction
		for _, other := range members[min(1, len(members)):] {
			adj[members[0]] = append(adj[members[0]], other)
			adj[other] = append(adj[other], members[0])
		}
	}

	visited := make(map[string]bool)
	var circuits [][]string
	for _, s := range m.Species {
		if visited[s.ID] {
			continue
		}
		component := []string{}
		d.dfs(s.ID, adj, visited, &component)
		if len(component) >= d.MinSize {
			sort.Strings(component)
			circuits = append(circuits, component)
		}
	}
	return circuits
}

func (d *ComponentDetector) dfs(u string, adj map[string][]string, visited map[string]bool, component *[]string) {
	visited[u] = true
	*component = append(*component, u)
	for _, v := range adj[u] {
		if !visited[v] {
			d.dfs(v, adj, visited, component)
		}
	}
}
