package community

import (
	"sort"

	"github.com/agenthands/gcsynth/internal/core/model"
)

// LabelPropagationDetector splits the species graph into densely connected
// groups using label propagation. Species are adjacent when they share a
// reaction, weighted by how many reactions they share, so a toggle switch
// loosely bridged to a reporter is reported as two circuits.
type LabelPropagationDetector struct {
	MaxIterations int
	MinSize       int
}

func NewLabelPropagationDetector() CircuitDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
		MinSize:       2,
	}
}

func (d *LabelPropagationDetector) Detect(m *model.ReactionNetworkModel) [][]string {
	if len(m.Species) == 0 {
		return nil
	}

	adj := make(map[string]map[string]int) // species -> neighbor -> weight
	for _, s := range m.Species {
		adj[s.ID] = make(map[string]int)
	}

	for _, r := range m.Reactions {
		seen := make(map[string]bool)
		var members []string
		for _, refs := range [][]model.SpeciesReference{r.Reactants, r.Products, r.Modifiers} {
			for _, ref := range refs {
				if _, ok := adj[ref.Species]; ok && !seen[ref.Species] {
					seen[ref.Species] = true
					members = append(members, ref.Species)
				}
			}
		}
		for i, u := range members {
			for _, v := range members[i+1:] {
				adj[u][v]++
				adj[v][u]++
			}
		}
	}

	// Every species starts with its own label; updates run in id order so the
	// outcome does not depend on declaration order.
	ids := make([]string, 0, len(adj))
	labels := make(map[string]string, len(adj))
	for id := range adj {
		ids = append(ids, id)
		labels[id] = id
	}
	sort.Strings(ids)

	for iter := 0; iter < d.MaxIterations; iter++ {
		changeCount := 0

		for _, u := range ids {
			neighbors := adj[u]
			if len(neighbors) == 0 {
				continue
			}

			labelCounts := make(map[string]int)
			maxCount := 0
			for v, weight := range neighbors {
				label := labels[v]
				labelCounts[label] += weight
				if labelCounts[label] > maxCount {
					maxCount = labelCounts[label]
				}
			}

			// keep the current label on a tie, else take the largest
			if labelCounts[labels[u]] == maxCount {
				continue
			}
			var candidates []string
			for label, count := range labelCounts {
				if count == maxCount {
					candidates = append(candidates, label)
				}
			}
			sort.Strings(candidates)
			labels[u] = candidates[len(candidates)-1]
			changeCount++
		}

		if changeCount == 0 {
			break
		}
	}

	clusters := make(map[string][]string)
	for _, id := range ids {
		clusters[labels[id]] = append(clusters[labels[id]], id)
	}

	var circuits [][]string
	for _, cluster := range clusters {
		if len(cluster) >= d.MinSize {
			circuits = append(circuits, cluster)
		}
	}
	sort.Slice(circuits, func(i, j int) bool { return circuits[i][0] < circuits[j][0] })
	return circuits
}

// ByName returns the detector registered under name, defaulting to connected
// components.
func ByName(name string) CircuitDetector {
	switch name {
	case "label_propagation":
		return NewLabelPropagationDetector()
	default:
		return NewComponentDetector()
	}
}
