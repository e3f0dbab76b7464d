package synthesis

import (
	"strconv"
	"strings"

	"github.com/agenthands/gcsynth/internal/core/classify"
	"github.com/agenthands/gcsynth/internal/core/common"
	"github.com/agenthands/gcsynth/internal/core/model"
)

const (
	degradationPrefix = "Degradation_"
	complexPrefix     = "Complex_"
	productionPrefix  = "Production_"
)

// Synthesize builds the whole module network from its classification:
// species first, then degradations, complex formations and one reaction per
// promoter bundle. Unclassified interactions become diagnostics.
func (b *Builder) Synthesize(c *classify.Classification) *model.ReactionNetworkModel {
	b.DeclareSpecies()
	b.checkInstanceRoles(c)
	for _, d := range c.Degradations {
		b.Degradation(d)
	}
	for _, cf := range c.ComplexFormations {
		b.ComplexFormation(cf)
	}
	for _, pb := range c.Promoters() {
		b.PromoterBundle(pb)
	}
	for _, u := range c.Unclassified {
		if u.Ambiguous {
			b.diagnose(model.SeverityError, model.CodeAmbiguousInteraction, u.Interaction.ID,
				"interaction %q: %s", u.Interaction.ID, u.Reason)
			continue
		}
		b.diagnose(model.SeverityWarning, model.CodeUnclassifiedInteraction, u.Interaction.ID,
			"interaction %q: %s", u.Interaction.ID, u.Reason)
	}
	return b.model
}

// Degradation emits one irreversible reaction consuming the degraded species.
func (b *Builder) Degradation(d *classify.Degradation) *model.Reaction {
	id := degradationPrefix + d.Interaction.ID
	if r := b.model.FindReaction(id); r != nil {
		return r
	}
	r := b.newReaction(id, model.ReactionDegradation, d.Interaction.ID)
	r.Reactants = b.addRef(r, r.Reactants, d.Degraded, model.RoleReactant, 1)
	return b.finish(r)
}

// ComplexFormation emits a reversible reaction binding the ligands into the complex.
func (b *Builder) ComplexFormation(cf *classify.ComplexFormation) *model.Reaction {
	id := complexPrefix + cf.Interaction.ID
	if r := b.model.FindReaction(id); r != nil {
		return r
	}
	r := b.newReaction(id, model.ReactionComplexFormation, cf.Interaction.ID)
	r.Reversible = true
	for _, l := range cf.Ligands {
		r.Reactants = b.addRef(r, r.Reactants, l, model.RoleReactant, 1)
	}
	r.Products = b.addRef(r, r.Products, cf.Complex, model.RoleProduct, 1)
	return b.finish(r)
}

// PromoterBundle emits the single production reaction of a promoter. The
// promoter and every regulating transcription factor are modifiers; regulation
// without a production yields no reaction.
func (b *Builder) PromoterBundle(pb *classify.PromoterBundle) *model.Reaction {
	if len(pb.Productions) == 0 {
		for _, a := range pb.Activations {
			b.orphan(pb.Promoter, a.Interaction.ID)
		}
		for _, r := range pb.Repressions {
			b.orphan(pb.Promoter, r.Interaction.ID)
		}
		return nil
	}

	ids := make([]string, 0, len(pb.Productions))
	for _, p := range pb.Productions {
		ids = append(ids, p.Interaction.ID)
	}
	id := b.uniqueReactionID(productionPrefix+common.JoinIDs(ids), pb.Promoter, ids)

	r := b.newReaction(id, model.ReactionProduction, ids...)
	for _, p := range pb.Productions {
		r.Modifiers = b.addRef(r, r.Modifiers, p.Promoter, model.RolePromoter, 0)
		// products form a set: a second production of the same species only adds provenance
		stoichiometry := 1.0
		if indexOf(r.Products, p.Product.Participant) >= 0 {
			stoichiometry = 0
		}
		r.Products = b.addRef(r, r.Products, p.Product, model.RoleProduct, stoichiometry)
		b.annotator.Attach(r.ID, &r.Provenance, model.SourceParticipation, p.Transcribed.ID)
	}
	for _, a := range pb.Activations {
		b.annotator.Attach(r.ID, &r.Provenance, model.SourceInteraction, a.Interaction.ID)
		r.Modifiers = b.addRef(r, r.Modifiers, a.Activated, model.RolePromoter, 0)
		r.Modifiers = b.addRef(r, r.Modifiers, a.Activator, model.RoleActivator, 0)
	}
	for _, rep := range pb.Repressions {
		b.annotator.Attach(r.ID, &r.Provenance, model.SourceInteraction, rep.Interaction.ID)
		r.Modifiers = b.addRef(r, r.Modifiers, rep.Repressed, model.RolePromoter, 0)
		r.Modifiers = b.addRef(r, r.Modifiers, rep.Repressor, model.RoleRepressor, 0)
	}
	return b.finish(r)
}

// uniqueReactionID returns id unless another bundle already took it. Joined
// interaction ids are ambiguous when the ids contain the separator, so a taken
// id is qualified with the promoter, then numbered.
func (b *Builder) uniqueReactionID(id, promoter string, ids []string) string {
	if b.model.FindReaction(id) == nil {
		return id
	}
	qualified := productionPrefix + promoter + "__" + strings.Join(common.SortedCopy(ids), "__")
	candidate := qualified
	for n := 2; b.model.FindReaction(candidate) != nil; n++ {
		candidate = qualified + "_" + strconv.Itoa(n)
	}
	return candidate
}

// checkInstanceRoles reports instances whose uses across the scope's
// interactions imply different kinds of entity.
func (b *Builder) checkInstanceRoles(c *classify.Classification) {
	uses := make(map[string]map[string]string) // instance -> use -> first interaction
	note := func(p *model.Participation, use, interactionID string) {
		if p == nil {
			return
		}
		if uses[p.Participant] == nil {
			uses[p.Participant] = make(map[string]string)
		}
		if _, ok := uses[p.Participant][use]; !ok {
			uses[p.Participant][use] = interactionID
		}
	}

	for _, d := range c.Degradations {
		note(d.Degraded, "species", d.Interaction.ID)
	}
	for _, cf := range c.ComplexFormations {
		note(cf.Complex, "species", cf.Interaction.ID)
		for _, l := range cf.Ligands {
			note(l, "species", cf.Interaction.ID)
		}
	}
	for _, pb := range c.Promoters() {
		for _, p := range pb.Productions {
			note(p.Promoter, "promoter", p.Interaction.ID)
			note(p.Product, "species", p.Interaction.ID)
			note(p.Transcribed, "template", p.Interaction.ID)
		}
		for _, a := range pb.Activations {
			note(a.Activated, "promoter", a.Interaction.ID)
			note(a.Activator, "species", a.Interaction.ID)
		}
		for _, r := range pb.Repressions {
			note(r.Repressed, "promoter", r.Interaction.ID)
			note(r.Repressor, "species", r.Interaction.ID)
		}
	}

	for _, inst := range common.SortedKeys(uses) {
		if len(uses[inst]) < 2 {
			continue
		}
		kinds := common.SortedKeys(uses[inst])
		parts := make([]string, 0, len(kinds))
		for _, k := range kinds {
			parts = append(parts, k+" in "+strconv.Quote(uses[inst][k]))
		}
		b.diagnose(model.SeverityError, model.CodeConflictingRoles, inst,
			"instance %q is used as %s", inst, strings.Join(parts, " and as "))
	}
}

func (b *Builder) orphan(promoter, interactionID string) {
	b.diagnose(model.SeverityWarning, model.CodeOrphanRegulation, interactionID,
		"interaction %q regulates promoter %q which has no production", interactionID, promoter)
}

func (b *Builder) newReaction(id string, kind model.ReactionKind, sources ...string) *model.Reaction {
	r := &model.Reaction{
		ID:        id,
		Kind:      kind,
		Reactants: []model.SpeciesReference{},
		Products:  []model.SpeciesReference{},
		Modifiers: []model.SpeciesReference{},
	}
	b.annotator.Attach(r.ID, &r.Provenance, model.SourceInteraction, sources...)
	return r
}

// addRef appends a reference to the participant's species. A second reference
// to the same species is folded into the first: stoichiometries add up and an
// activator that also represses becomes dual.
func (b *Builder) addRef(r *model.Reaction, refs []model.SpeciesReference, p *model.Participation, role model.ReferenceRole, stoichiometry float64) []model.SpeciesReference {
	s := b.EnsureSpecies(p.Participant)
	i := indexOf(refs, s.ID)
	if i < 0 {
		refs = append(refs, model.SpeciesReference{Species: s.ID, Role: role, Stoichiometry: stoichiometry})
		i = len(refs) - 1
	} else {
		refs[i].Stoichiometry += stoichiometry
		refs[i].Role = mergeRole(refs[i].Role, role)
	}
	b.annotator.Attach(r.ID+"/"+s.ID, &refs[i].Provenance, model.SourceParticipation, p.ID)
	return refs
}

func indexOf(refs []model.SpeciesReference, speciesID string) int {
	for i := range refs {
		if refs[i].Species == speciesID {
			return i
		}
	}
	return -1
}

func mergeRole(existing, incoming model.ReferenceRole) model.ReferenceRole {
	if existing == incoming {
		return existing
	}
	switch {
	case existing == model.RoleActivator && incoming == model.RoleRepressor,
		existing == model.RoleRepressor && incoming == model.RoleActivator,
		existing == model.RoleDual && (incoming == model.RoleActivator || incoming == model.RoleRepressor):
		return model.RoleDual
	}
	return existing
}

// finish marks exposure and appends the reaction to the model.
func (b *Builder) finish(r *model.Reaction) *model.Reaction {
	for _, refs := range [][]model.SpeciesReference{r.Reactants, r.Products, r.Modifiers} {
		for i := range refs {
			if s := b.model.FindSpecies(refs[i].Species); s != nil && s.Port != "" {
				refs[i].Exposed = true
				r.Exposed = true
			}
		}
	}
	b.model.Reactions = append(b.model.Reactions, r)
	return r
}
