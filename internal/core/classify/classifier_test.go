package classify

import (
	"testing"

	"github.com/agenthands/gcsynth/internal/core/fixtures"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scopeOf(t *testing.T, md model.ModuleDefinition) *model.Scope {
	t.Helper()
	doc := fixtures.Document(md)
	cat := model.NewCatalog(doc)
	m, ok := cat.Module(md.ID)
	require.True(t, ok)
	return cat.Scope(m)
}

func classifyOne(t *testing.T, b *fixtures.ModuleBuilder) Pattern {
	t.Helper()
	s := scopeOf(t, b.Build())
	require.Len(t, s.Module.Interactions, 1)
	return Classify(s, &s.Module.Interactions[0])
}

func TestClassify_Degradation(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("deg", "degradation", fixtures.Part("deg_p", "GFP", "degraded")))

	d, ok := p.(*Degradation)
	require.True(t, ok, "got %T", p)
	assert.Equal(t, "GFP", d.Degraded.Participant)
	assert.Equal(t, "deg", d.Source().ID)
}

func TestClassify_DegradationRejectsNonSpecies(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Interaction("deg", "degradation", fixtures.Part("deg_p", "pLac", "degraded")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.False(t, u.Ambiguous)
	assert.Contains(t, u.Reason, "not species-like")
}

func TestClassify_DegradationWrongCount(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Interaction("deg", "degradation",
			fixtures.Part("a", "GFP", "degraded"),
			fixtures.Part("b", "LacI", "degraded")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "expected 1 participations, got 2")
}

func TestClassify_ComplexFormation(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("LacI", "LacI", model.DirectionNone).
		Component("IPTG", "IPTG", model.DirectionNone).
		Component("C", "LacI_IPTG", model.DirectionNone).
		Interaction("bind", "binding",
			fixtures.Part("c", "C", "complex"),
			fixtures.Part("l1", "LacI", "ligand"),
			fixtures.Part("l2", "IPTG", "ligand")))

	cf, ok := p.(*ComplexFormation)
	require.True(t, ok, "got %T", p)
	assert.Equal(t, "C", cf.Complex.Participant)
	require.Len(t, cf.Ligands, 2)
	assert.Equal(t, "LacI", cf.Ligands[0].Participant)
	assert.Equal(t, "IPTG", cf.Ligands[1].Participant)
}

func TestClassify_ComplexFormationExtraRoleDisqualifies(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("LacI", "LacI", model.DirectionNone).
		Component("C", "LacI_IPTG", model.DirectionNone).
		Component("pLac", "pLac", model.DirectionNone).
		Interaction("bind", "binding",
			fixtures.Part("c", "C", "complex"),
			fixtures.Part("l1", "LacI", "ligand"),
			fixtures.Part("x", "pLac", "promoter")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "unexpected role")
}

func TestClassify_ComplexFormationNeedsLigand(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("C", "LacI_IPTG", model.DirectionNone).
		Interaction("bind", "binding", fixtures.Part("c", "C", "complex")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "missing ligand")
}

func TestClassify_Production(t *testing.T) {
	s := scopeOf(t, fixtures.ExpressionModule("m", model.DirectionNone).Build())
	p := Classify(s, &s.Module.Interactions[0])

	prod, ok := p.(*Production)
	require.True(t, ok, "got %T", p)
	assert.Equal(t, "pLac", prod.Promoter.Participant)
	assert.Equal(t, "GFP", prod.Product.Participant)
	assert.Equal(t, "gfp_cds", prod.Transcribed.Participant)
}

func TestClassify_ProductionMissingRole(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("prod", "production",
			fixtures.Part("a", "pLac", "promoter"),
			fixtures.Part("b", "GFP", "product")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "expected 3 participations")
}

func TestClassify_ProductionDuplicateRole(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Component("GFP", "GFP", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Interaction("prod", "production",
			fixtures.Part("a", "pLac", "promoter"),
			fixtures.Part("b", "GFP", "product"),
			fixtures.Part("c", "LacI", "product")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "more than once")
}

func TestClassify_ActivationAndRepression(t *testing.T) {
	act := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Interaction("act", "activation",
			fixtures.Part("a", "pLac", "activated"),
			fixtures.Part("b", "LacI", "activator")))
	a, ok := act.(*Activation)
	require.True(t, ok, "got %T", act)
	assert.Equal(t, "pLac", a.Activated.Participant)
	assert.Equal(t, "LacI", a.Activator.Participant)

	rep := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Component("LacI", "LacI", model.DirectionNone).
		Interaction("rep", "repression",
			fixtures.Part("a", "pLac", "repressed"),
			fixtures.Part("b", "LacI", "repressor")))
	r, ok := rep.(*Repression)
	require.True(t, ok, "got %T", rep)
	assert.Equal(t, "LacI", r.Repressor.Participant)
}

func TestClassify_ActivatorMustBeTranscriptionFactor(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("pLac", "pLac", model.DirectionNone).
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("act", "activation",
			fixtures.Part("a", "pLac", "activated"),
			fixtures.Part("b", "GFP", "activator")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "transcription-factor-like")
}

func TestClassify_UnknownType(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("x", "http://identifiers.org/biomodels.sbo/SBO:0000182", fixtures.Part("a", "GFP", "degraded")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Equal(t, "no recognized interaction type", u.Reason)
}

func TestClassify_MultiRoleParticipation(t *testing.T) {
	p := classifyOne(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("deg", "degradation", fixtures.Part("a", "GFP", "degraded", "product")))

	u, ok := p.(*Unclassified)
	require.True(t, ok)
	assert.Contains(t, u.Reason, "exactly one role")
}

func TestClassify_AmbiguousReported(t *testing.T) {
	saved := matchers
	defer func() { matchers = saved }()
	matchers = append(append([]matcher{}, saved...), matcher{
		kind:            KindRepression,
		interactionType: roles.InteractionDegradation,
		match: func(s *model.Scope, ix *model.Interaction) (Pattern, string) {
			return &Repression{Interaction: ix}, ""
		},
	})

	p := classifyOne(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("deg", "degradation", fixtures.Part("a", "GFP", "degraded")))

	u, ok := p.(*Unclassified)
	require.True(t, ok, "got %T", p)
	assert.True(t, u.Ambiguous)
	assert.Equal(t, []Kind{KindDegradation, KindRepression}, u.Candidates)
	assert.Contains(t, u.Reason, "matches several patterns")
}

func TestClassify_RepeatedTypeTagIsOnePattern(t *testing.T) {
	md := fixtures.Module("m").Component("GFP", "GFP", model.DirectionNone).Build()
	md.Interactions = []model.Interaction{{
		ID:             "twice",
		Types:          []string{"degradation", roles.InteractionDegradation},
		Participations: []model.Participation{fixtures.Part("a", "GFP", "degraded")},
	}}
	s := scopeOf(t, md)
	p := Classify(s, &s.Module.Interactions[0])
	_, ok := p.(*Degradation)
	assert.True(t, ok, "got %T", p)
}

func TestClassifyScope_PromoterIndex(t *testing.T) {
	s := scopeOf(t, fixtures.Toggle().Modules[0])
	c := ClassifyScope(s)

	assert.Empty(t, c.Unclassified)
	assert.Len(t, c.Degradations, 1)
	assert.Len(t, c.ComplexFormations, 1)

	bundles := c.Promoters()
	require.Len(t, bundles, 2)
	assert.Equal(t, "pLac", bundles[0].Promoter)
	assert.Equal(t, "pTet", bundles[1].Promoter)
	assert.Len(t, bundles[0].Productions, 2)
	assert.Len(t, bundles[0].Repressions, 1)
	assert.Len(t, bundles[1].Productions, 1)
	assert.Len(t, bundles[1].Repressions, 1)

	assert.Len(t, c.ProductionsByPromoter()["pLac"], 2)
	assert.Empty(t, c.ActivationsByPromoter())
	assert.Len(t, c.RepressionsByPromoter(), 2)
	assert.Equal(t, 3, c.Count(KindProduction))
	assert.Equal(t, 2, c.Count(KindRepression))
	assert.Equal(t, 0, c.Count(KindActivation))
}

func TestClassifyScope_UnclassifiedCollected(t *testing.T) {
	s := scopeOf(t, fixtures.Module("m").
		Component("GFP", "GFP", model.DirectionNone).
		Interaction("ok", "degradation", fixtures.Part("a", "GFP", "degraded")).
		Interaction("bad", "degradation", fixtures.Part("b", "missing", "degraded")).
		Build())
	c := ClassifyScope(s)

	assert.Len(t, c.Degradations, 1)
	require.Len(t, c.Unclassified, 1)
	assert.Equal(t, "bad", c.Unclassified[0].Interaction.ID)
}
