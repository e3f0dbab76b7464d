// Package summary reports what a compiled network contains.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agenthands/gcsynth/internal/core/community"
	"github.com/agenthands/gcsynth/internal/core/model"
)

type Report struct {
	Network      string         `json:"network"`
	Species      map[string]int `json:"species"`
	Reactions    map[string]int `json:"reactions"`
	Ports        int            `json:"ports"`
	Submodels    int            `json:"submodels"`
	Replacements map[string]int `json:"replacements"`
	// Regulators maps each production reaction to its activator and repressor species.
	Regulators map[string][]string `json:"regulators,omitempty"`
	Circuits   [][]string          `json:"circuits"`
}

type Summarizer struct {
	Detector community.CircuitDetector
}

func NewSummarizer(detector community.CircuitDetector) *Summarizer {
	if detector == nil {
		detector = community.NewComponentDetector()
	}
	return &Summarizer{Detector: detector}
}

func (s *Summarizer) Summarize(m *model.ReactionNetworkModel) *Report {
	r := &Report{
		Network:      m.ID,
		Species:      make(map[string]int),
		Reactions:    make(map[string]int),
		Ports:        len(m.Ports),
		Submodels:    len(m.Submodels),
		Replacements: make(map[string]int),
		Circuits:     s.Detector.Detect(m),
	}
	if r.Circuits == nil {
		r.Circuits = [][]string{}
	}

	for _, sp := range m.Species {
		r.Species[string(sp.Kind)]++
	}
	for _, rx := range m.Reactions {
		r.Reactions[string(rx.Kind)]++
		for _, mod := range rx.Modifiers {
			if mod.Role == model.RolePromoter {
				continue
			}
			if r.Regulators == nil {
				r.Regulators = make(map[string][]string)
			}
			r.Regulators[rx.ID] = append(r.Regulators[rx.ID], fmt.Sprintf("%s:%s", mod.Species, mod.Role))
		}
	}
	for _, l := range m.Replacements {
		r.Replacements[string(l.Kind)]++
	}
	return r
}

// String renders the report as a few human-readable lines.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "network %s\n", r.Network)
	fmt.Fprintf(&b, "  species:   %s\n", counts(r.Species))
	fmt.Fprintf(&b, "  reactions: %s\n", counts(r.Reactions))
	fmt.Fprintf(&b, "  ports: %d, submodels: %d, links: %s\n", r.Ports, r.Submodels, counts(r.Replacements))
	for i, c := range r.Circuits {
		fmt.Fprintf(&b, "  circuit %d: %s\n", i+1, strings.Join(c, ", "))
	}
	return b.String()
}

func counts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, m[k]))
	}
	return strings.Join(parts, " ")
}
