// Package roles answers tag questions about component definitions and
// instances. Every predicate is total: a nil definition matches nothing.
package roles

import "github.com/agenthands/gcsynth/internal/core/model"

func HasType(def *model.ComponentDefinition, tag string) bool {
	if def == nil {
		return false
	}
	return containsTag(def.Types, Canonical(tag), Canonical)
}

func HasRole(def *model.ComponentDefinition, role string) bool {
	if def == nil {
		return false
	}
	return containsTag(def.Roles, Canonical(role), Canonical)
}

// HasParticipationRole reports whether p carries role, comparing canonical forms.
func HasParticipationRole(p *model.Participation, role string) bool {
	return containsTag(p.Roles, CanonicalParticipation(role), CanonicalParticipation)
}

// HasInteractionType reports whether ix is tagged with the interaction type.
func HasInteractionType(ix *model.Interaction, typ string) bool {
	return containsTag(ix.Types, CanonicalParticipation(typ), CanonicalParticipation)
}

func IsDNALike(def *model.ComponentDefinition) bool {
	return HasType(def, TypeDNA)
}

func IsProteinLike(def *model.ComponentDefinition) bool {
	return HasType(def, TypeProtein)
}

func IsComplexLike(def *model.ComponentDefinition) bool {
	return HasType(def, TypeComplex)
}

func IsSmallMoleculeLike(def *model.ComponentDefinition) bool {
	return HasType(def, TypeSmallMolecule)
}

// IsSpeciesLike reports whether def becomes a free-floating species.
func IsSpeciesLike(def *model.ComponentDefinition) bool {
	return IsProteinLike(def) || IsComplexLike(def) || IsSmallMoleculeLike(def)
}

func IsPromoterLike(def *model.ComponentDefinition) bool {
	return IsDNALike(def) && HasRole(def, RolePromoter)
}

func IsGeneLike(def *model.ComponentDefinition) bool {
	return IsDNALike(def) && (HasRole(def, RoleGene) || HasRole(def, RoleCDS))
}

// IsTranscriptionFactorLike needs both the molecular type and the role tag;
// unrelated complexes may share the role vocabulary.
func IsTranscriptionFactorLike(def *model.ComponentDefinition) bool {
	return (IsProteinLike(def) || IsComplexLike(def)) && HasRole(def, RoleTranscriptionFactor)
}

func IsInput(inst *model.ComponentInstance) bool {
	return inst != nil && inst.Direction == model.DirectionInput
}

func IsOutput(inst *model.ComponentInstance) bool {
	return inst != nil && inst.Direction == model.DirectionOutput
}

// KindOf returns the species kind generated for def.
func KindOf(def *model.ComponentDefinition) model.SpeciesKind {
	switch {
	case IsComplexLike(def):
		return model.SpeciesComplex
	case IsProteinLike(def):
		return model.SpeciesProtein
	case IsSmallMoleculeLike(def):
		return model.SpeciesSmallMolecule
	case IsPromoterLike(def):
		return model.SpeciesPromoter
	default:
		return model.SpeciesUnknown
	}
}

func containsTag(tags []string, want string, canon func(string) string) bool {
	for _, t := range tags {
		if canon(t) == want {
			return true
		}
	}
	return false
}
