package classify

import (
	"fmt"
	"strings"

	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/roles"
)

type matcher struct {
	kind            Kind
	interactionType string
	match           func(s *model.Scope, ix *model.Interaction) (Pattern, string)
}

// Each pattern is keyed on a distinct interaction type, so two patterns can only
// both match an interaction that carries two type tags.
var matchers = []matcher{
	{KindDegradation, roles.InteractionDegradation, matchDegradation},
	{KindComplexFormation, roles.InteractionBinding, matchComplexFormation},
	{KindProduction, roles.InteractionProduction, matchProduction},
	{KindActivation, roles.InteractionActivation, matchActivation},
	{KindRepression, roles.InteractionRepression, matchRepression},
}

// Classify returns exactly one Pattern for ix. An interaction that matches no
// pattern, or more than one, yields *Unclassified.
func Classify(s *model.Scope, ix *model.Interaction) Pattern {
	var (
		matched []Pattern
		reasons []string
		tried   int
	)
	for _, m := range matchers {
		if !roles.HasInteractionType(ix, m.interactionType) {
			continue
		}
		tried++
		p, reason := m.match(s, ix)
		if p != nil {
			matched = append(matched, p)
			continue
		}
		reasons = append(reasons, fmt.Sprintf("%s: %s", m.kind, reason))
	}

	switch {
	case tried == 0:
		return &Unclassified{Interaction: ix, Reason: "no recognized interaction type"}
	case len(matched) == 1:
		return matched[0]
	case len(matched) > 1:
		kinds := make([]Kind, 0, len(matched))
		names := make([]string, 0, len(matched))
		for _, p := range matched {
			kinds = append(kinds, p.Kind())
			names = append(names, string(p.Kind()))
		}
		return &Unclassified{
			Interaction: ix,
			Ambiguous:   true,
			Candidates:  kinds,
			Reason:      "matches several patterns: " + strings.Join(names, ", "),
		}
	default:
		return &Unclassified{Interaction: ix, Reason: strings.Join(reasons, "; ")}
	}
}

// slot is one required participation of a fixed-arity pattern.
type slot struct {
	name string // pattern role name, used in reasons
	role string // canonical participation role
	like string // predicate name, used in reasons
	pred func(*model.ComponentDefinition) bool
}

// fill assigns each participation of ix to exactly one slot. It fails when the
// participation count differs from the slot count, a role is missing or
// repeated, or a participant does not satisfy its predicate.
func fill(s *model.Scope, ix *model.Interaction, slots []slot) ([]*model.Participation, string) {
	if len(ix.Participations) != len(slots) {
		return nil, fmt.Sprintf("expected %d participations, got %d", len(slots), len(ix.Participations))
	}
	filled := make([]*model.Participation, len(slots))
	for i := range ix.Participations {
		p := &ix.Participations[i]
		role, ok := singleRole(p)
		if !ok {
			return nil, fmt.Sprintf("participation %s must carry exactly one role", p.ID)
		}
		idx := -1
		for j, sl := range slots {
			if sl.role == role {
				idx = j
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Sprintf("participation %s has unexpected role %s", p.ID, role)
		}
		if filled[idx] != nil {
			return nil, fmt.Sprintf("role %s appears more than once", slots[idx].name)
		}
		if _, def := s.Resolve(p.Participant); !slots[idx].pred(def) {
			return nil, fmt.Sprintf("%s participant %s is not %s", slots[idx].name, p.Participant, slots[idx].like)
		}
		filled[idx] = p
	}
	return filled, ""
}

func matchDegradation(s *model.Scope, ix *model.Interaction) (Pattern, string) {
	parts, reason := fill(s, ix, []slot{
		{"degraded", roles.ParticipantDegraded, "species-like", roles.IsSpeciesLike},
	})
	if parts == nil {
		return nil, reason
	}
	return &Degradation{Interaction: ix, Degraded: parts[0]}, ""
}

func matchProduction(s *model.Scope, ix *model.Interaction) (Pattern, string) {
	parts, reason := fill(s, ix, []slot{
		{"promoter", roles.ParticipantPromoter, "promoter-like", roles.IsPromoterLike},
		{"product", roles.ParticipantProduct, "protein-like", roles.IsProteinLike},
		{"transcribed", roles.ParticipantTranscribed, "gene-like", roles.IsGeneLike},
	})
	if parts == nil {
		return nil, reason
	}
	return &Production{Interaction: ix, Promoter: parts[0], Product: parts[1], Transcribed: parts[2]}, ""
}

func matchActivation(s *model.Scope, ix *model.Interaction) (Pattern, string) {
	parts, reason := fill(s, ix, []slot{
		{"activated", roles.ParticipantActivated, "promoter-like", roles.IsPromoterLike},
		{"activator", roles.ParticipantActivator, "transcription-factor-like", roles.IsTranscriptionFactorLike},
	})
	if parts == nil {
		return nil, reason
	}
	return &Activation{Interaction: ix, Activated: parts[0], Activator: parts[1]}, ""
}

func matchRepression(s *model.Scope, ix *model.Interaction) (Pattern, string) {
	parts, reason := fill(s, ix, []slot{
		{"repressed", roles.ParticipantRepressed, "promoter-like", roles.IsPromoterLike},
		{"repressor", roles.ParticipantRepressor, "transcription-factor-like", roles.IsTranscriptionFactorLike},
	})
	if parts == nil {
		return nil, reason
	}
	return &Repression{Interaction: ix, Repressed: parts[0], Repressor: parts[1]}, ""
}

// matchComplexFormation has variable arity: one complex and one or more ligands.
func matchComplexFormation(s *model.Scope, ix *model.Interaction) (Pattern, string) {
	cf := &ComplexFormation{Interaction: ix}
	for i := range ix.Participations {
		p := &ix.Participations[i]
		role, ok := singleRole(p)
		if !ok {
			return nil, fmt.Sprintf("participation %s must carry exactly one role", p.ID)
		}
		_, def := s.Resolve(p.Participant)
		switch role {
		case roles.ParticipantComplex:
			if cf.Complex != nil {
				return nil, "role complex appears more than once"
			}
			if !roles.IsComplexLike(def) {
				return nil, fmt.Sprintf("complex participant %s is not complex-like", p.Participant)
			}
			cf.Complex = p
		case roles.ParticipantLigand:
			if !roles.IsSpeciesLike(def) {
				return nil, fmt.Sprintf("ligand participant %s is not species-like", p.Participant)
			}
			cf.Ligands = append(cf.Ligands, p)
		default:
			return nil, fmt.Sprintf("participation %s has unexpected role %s", p.ID, role)
		}
	}
	if cf.Complex == nil {
		return nil, "missing complex participation"
	}
	if len(cf.Ligands) == 0 {
		return nil, "missing ligand participation"
	}
	return cf, ""
}

// singleRole returns the participation's only canonical role.
func singleRole(p *model.Participation) (string, bool) {
	role := ""
	for _, r := range p.Roles {
		c := roles.CanonicalParticipation(r)
		if role != "" && c != role {
			return "", false
		}
		role = c
	}
	return role, role != ""
}
