// Package fixtures builds small reference circuits. The smoke client posts them
// to a running server and the package tests compile them.
package fixtures

import (
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/roles"
)

// Definitions returns the component definitions shared by every fixture.
func Definitions() []model.ComponentDefinition {
	return []model.ComponentDefinition{
		{ID: "pLac", Name: "Lac promoter", Types: []string{roles.TypeDNA}, Roles: []string{roles.RolePromoter}},
		{ID: "pTet", Name: "Tet promoter", Types: []string{roles.TypeDNA}, Roles: []string{roles.RolePromoter}},
		{ID: "gfp_cds", Types: []string{roles.TypeDNA}, Roles: []string{roles.RoleCDS}},
		{ID: "tetR_cds", Types: []string{roles.TypeDNA}, Roles: []string{roles.RoleCDS}},
		{ID: "lacI_cds", Types: []string{roles.TypeDNA}, Roles: []string{roles.RoleCDS}},
		{ID: "GFP", Types: []string{roles.TypeProtein}},
		{ID: "LacI", Types: []string{roles.TypeProtein}, Roles: []string{roles.RoleTranscriptionFactor}},
		{ID: "TetR", Types: []string{roles.TypeProtein}, Roles: []string{roles.RoleTranscriptionFactor}},
		{ID: "IPTG", Types: []string{roles.TypeSmallMolecule}},
		{ID: "LacI_IPTG", Types: []string{roles.TypeComplex}},
	}
}

type ModuleBuilder struct {
	md model.ModuleDefinition
}

func Module(id string) *ModuleBuilder {
	return &ModuleBuilder{md: model.ModuleDefinition{ID: id, Components: []model.ComponentInstance{}}}
}

func (b *ModuleBuilder) Component(id, definition string, dir model.Direction) *ModuleBuilder {
	b.md.Components = append(b.md.Components, model.ComponentInstance{ID: id, Definition: definition, Direction: dir})
	return b
}

func (b *ModuleBuilder) Interaction(id, typ string, parts ...model.Participation) *ModuleBuilder {
	b.md.Interactions = append(b.md.Interactions, model.Interaction{ID: id, Types: []string{typ}, Participations: parts})
	return b
}

func (b *ModuleBuilder) Submodule(id, definition string, mappings ...model.Mapping) *ModuleBuilder {
	b.md.Submodules = append(b.md.Submodules, model.Submodule{ID: id, Definition: definition, Mappings: mappings})
	return b
}

func (b *ModuleBuilder) Build() model.ModuleDefinition {
	return b.md
}

func Part(id, participant string, roleTags ...string) model.Participation {
	return model.Participation{ID: id, Participant: participant, Roles: roleTags}
}

func Map(id, local, remote string, refinement model.Refinement) model.Mapping {
	return model.Mapping{ID: id, Local: local, Remote: remote, Refinement: refinement}
}

func Document(modules ...model.ModuleDefinition) *model.Document {
	return &model.Document{Definitions: Definitions(), Modules: modules}
}

// ExpressionModule is a promoter driving a coding sequence into a protein.
func ExpressionModule(id string, proteinDir model.Direction) *ModuleBuilder {
	return Module(id).
		Component("pLac", "pLac", model.DirectionNone).
		Component("gfp_cds", "gfp_cds", model.DirectionNone).
		Component("GFP", "GFP", proteinDir).
		Interaction("GFP_production", roles.InteractionProduction,
			Part("GFP_production_promoter", "pLac", roles.ParticipantPromoter),
			Part("GFP_production_product", "GFP", roles.ParticipantProduct),
			Part("GFP_production_template", "gfp_cds", roles.ParticipantTranscribed),
		)
}

// ScenarioA is a single production interaction.
func ScenarioA() *model.Document {
	return Document(ExpressionModule("expression", model.DirectionNone).Build())
}

// ScenarioB adds an activator on the same promoter.
func ScenarioB() *model.Document {
	md := ExpressionModule("activated_expression", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Interaction("LacI_activation", roles.InteractionActivation,
			Part("LacI_activation_activated", "pLac", roles.ParticipantActivated),
			Part("LacI_activation_activator", "LacI", roles.ParticipantActivator),
		).
		Build()
	return Document(md)
}

// ScenarioC wires the output protein of an expression submodule into a parent
// module with the given refinement.
func ScenarioC(refinement model.Refinement) *model.Document {
	child := ExpressionModule("reporter", model.DirectionOutput).Build()
	parent := Module("top").
		Component("GFP_top", "GFP", model.DirectionNone).
		Interaction("GFP_top_degradation", roles.InteractionDegradation,
			Part("GFP_top_degradation_degraded", "GFP_top", roles.ParticipantDegraded),
		).
		Submodule("reporter_inst", "reporter",
			Map("reporter_inst_GFP", "GFP_top", "GFP", refinement),
		).
		Build()
	return Document(parent, child)
}

// Toggle is the classic two-repressor toggle switch with an inducer binding LacI.
func Toggle() *model.Document {
	md := Module("toggle").
		Component("pLac", "pLac", model.DirectionNone).
		Component("pTet", "pTet", model.DirectionNone).
		Component("tetR_cds", "tetR_cds", model.DirectionNone).
		Component("lacI_cds", "lacI_cds", model.DirectionNone).
		Component("gfp_cds", "gfp_cds", model.DirectionNone).
		Component("TetR", "TetR", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Component("GFP", "GFP", model.DirectionOutput).
		Component("IPTG", "IPTG", model.DirectionInput).
		Component("LacI_IPTG", "LacI_IPTG", model.DirectionNone).
		Interaction("TetR_production", roles.InteractionProduction,
			Part("TetR_production_promoter", "pLac", roles.ParticipantPromoter),
			Part("TetR_production_product", "TetR", roles.ParticipantProduct),
			Part("TetR_production_template", "tetR_cds", roles.ParticipantTranscribed),
		).
		Interaction("GFP_production", roles.InteractionProduction,
			Part("GFP_production_promoter", "pLac", roles.ParticipantPromoter),
			Part("GFP_production_product", "GFP", roles.ParticipantProduct),
			Part("GFP_production_template", "gfp_cds", roles.ParticipantTranscribed),
		).
		Interaction("LacI_production", roles.InteractionProduction,
			Part("LacI_production_promoter", "pTet", roles.ParticipantPromoter),
			Part("LacI_production_product", "LacI", roles.ParticipantProduct),
			Part("LacI_production_template", "lacI_cds", roles.ParticipantTranscribed),
		).
		Interaction("LacI_repression", roles.InteractionRepression,
			Part("LacI_repression_repressed", "pLac", roles.ParticipantRepressed),
			Part("LacI_repression_repressor", "LacI", roles.ParticipantRepressor),
		).
		Interaction("TetR_repression", roles.InteractionRepression,
			Part("TetR_repression_repressed", "pTet", roles.ParticipantRepressed),
			Part("TetR_repression_repressor", "TetR", roles.ParticipantRepressor),
		).
		Interaction("LacI_IPTG_binding", roles.InteractionBinding,
			Part("LacI_IPTG_binding_complex", "LacI_IPTG", roles.ParticipantComplex),
			Part("LacI_IPTG_binding_lacI", "LacI", roles.ParticipantLigand),
			Part("LacI_IPTG_binding_iptg", "IPTG", roles.ParticipantLigand),
		).
		Interaction("GFP_degradation", roles.InteractionDegradation,
			Part("GFP_degradation_degraded", "GFP", roles.ParticipantDegraded),
		).
		Build()
	return Document(md)
}
