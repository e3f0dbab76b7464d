package ports

import (
	"testing"

	"github.com/agenthands/gcsynth/internal/core/fixtures"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reporterNetwork mirrors what the synthesizer builds for the reporter module.
func reporterNetwork() *model.ReactionNetworkModel {
	m := model.NewReactionNetworkModel("reporter", "")
	m.Species = []*model.Species{
		{ID: "pLac", Kind: model.SpeciesPromoter},
		{ID: "GFP", Kind: model.SpeciesProtein, Port: "output__GFP"},
	}
	m.Ports = []*model.Port{{ID: "output__GFP", Species: "GFP", Direction: model.DirectionOutput}}
	return m
}

func scopes(t *testing.T, doc *model.Document) (*model.Scope, *model.Scope, *model.Submodule) {
	t.Helper()
	cat := model.NewCatalog(doc)
	top, ok := cat.Module("top")
	require.True(t, ok)
	child, ok := cat.Module("reporter")
	require.True(t, ok)
	return cat.Scope(top), cat.Scope(child), &top.Submodules[0]
}

func TestPolicyOf(t *testing.T) {
	for _, r := range []model.Refinement{model.RefinementUseLocal, model.RefinementMerge, model.RefinementVerifyIdentical} {
		k, err := PolicyOf(r)
		require.NoError(t, err)
		assert.Equal(t, model.Replacement, k, r)
	}
	k, err := PolicyOf(model.RefinementUseRemote)
	require.NoError(t, err)
	assert.Equal(t, model.ReplacedBy, k)

	_, err = PolicyOf("sometimes")
	assert.ErrorIs(t, err, ErrUnknownRefinement)
}

func TestResolve_MergeUpward(t *testing.T) {
	parent, child, sub := scopes(t, fixtures.ScenarioC(model.RefinementUseLocal))
	res, err := NewResolver(parent).Resolve(sub, child, reporterNetwork())
	require.NoError(t, err)

	require.Len(t, res.Wirings, 1)
	l := res.Wirings[0].Link
	assert.Equal(t, "GFP_top", l.Species)
	assert.Equal(t, "reporter_inst", l.Submodel)
	assert.Equal(t, "output__GFP", l.Port)
	assert.Equal(t, model.Replacement, l.Kind)
	assert.Equal(t, "reporter_inst_GFP", res.Wirings[0].Mapping.ID)
	assert.Empty(t, res.Skipped)
}

func TestResolve_DeferDownward(t *testing.T) {
	parent, child, sub := scopes(t, fixtures.ScenarioC(model.RefinementUseRemote))
	res, err := NewResolver(parent).Resolve(sub, child, reporterNetwork())
	require.NoError(t, err)
	require.Len(t, res.Wirings, 1)
	assert.Equal(t, model.ReplacedBy, res.Wirings[0].Link.Kind)
}

func TestResolve_NonPortMappingSkipped(t *testing.T) {
	doc := fixtures.ScenarioC(model.RefinementUseLocal)
	doc.Modules[0].Submodules[0].Mappings = append(doc.Modules[0].Submodules[0].Mappings,
		fixtures.Map("reporter_inst_pLac", "GFP_top", "pLac", model.RefinementUseLocal))
	parent, child, sub := scopes(t, doc)

	res, err := NewResolver(parent).Resolve(sub, child, reporterNetwork())
	require.NoError(t, err)
	assert.Len(t, res.Wirings, 1)
	assert.Equal(t, []string{"reporter_inst_pLac"}, res.Skipped)
}

func TestResolve_NonPortMappingSkippedBeforeRefinementCheck(t *testing.T) {
	doc := fixtures.ScenarioC(model.RefinementUseLocal)
	doc.Modules[0].Submodules[0].Mappings = []model.Mapping{
		fixtures.Map("m", "GFP_top", "pLac", "bogus"),
	}
	parent, child, sub := scopes(t, doc)

	res, err := NewResolver(parent).Resolve(sub, child, reporterNetwork())
	require.NoError(t, err)
	assert.Empty(t, res.Wirings)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mapping model.Mapping
		network func() *model.ReactionNetworkModel
		wantErr error
	}{
		{"missing local", fixtures.Map("m", "nope", "GFP", model.RefinementUseLocal), reporterNetwork, ErrDanglingMapping},
		{"missing remote", fixtures.Map("m", "GFP_top", "nope", model.RefinementUseLocal), reporterNetwork, ErrDanglingMapping},
		{"unknown refinement", fixtures.Map("m", "GFP_top", "GFP", "sometimes"), reporterNetwork, ErrUnknownRefinement},
		{"port missing from network", fixtures.Map("m", "GFP_top", "GFP", model.RefinementUseLocal), func() *model.ReactionNetworkModel {
			m := reporterNetwork()
			m.Ports = nil
			return m
		}, ErrPortNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := fixtures.ScenarioC(model.RefinementUseLocal)
			doc.Modules[0].Submodules[0].Mappings = []model.Mapping{tt.mapping}
			parent, child, sub := scopes(t, doc)
			_, err := NewResolver(parent).Resolve(sub, child, tt.network())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestResolve_ConflictingReplacedBy(t *testing.T) {
	doc := fixtures.ScenarioC(model.RefinementUseRemote)
	top := &doc.Modules[0]
	top.Submodules = append(top.Submodules, model.Submodule{
		ID:         "reporter_inst2",
		Definition: "reporter",
		Mappings:   []model.Mapping{fixtures.Map("reporter_inst2_GFP", "GFP_top", "GFP", model.RefinementUseRemote)},
	})
	cat := model.NewCatalog(doc)
	parentMD, _ := cat.Module("top")
	childMD, _ := cat.Module("reporter")
	parent, child := cat.Scope(parentMD), cat.Scope(childMD)

	r := NewResolver(parent)
	_, err := r.Resolve(&parentMD.Submodules[0], child, reporterNetwork())
	require.NoError(t, err)
	_, err = r.Resolve(&parentMD.Submodules[1], child, reporterNetwork())
	assert.ErrorIs(t, err, ErrConflictingReplacement)
}

func TestResolve_ReusedNetworkWithoutDefinition(t *testing.T) {
	parent, _, sub := scopes(t, fixtures.ScenarioC(model.RefinementUseLocal))

	res, err := NewResolver(parent).Resolve(sub, nil, reporterNetwork())
	require.NoError(t, err)
	require.Len(t, res.Wirings, 1)
	assert.Equal(t, "output__GFP", res.Wirings[0].Link.Port)

	sub.Mappings = []model.Mapping{fixtures.Map("m", "GFP_top", "ghost", model.RefinementUseLocal)}
	_, err = NewResolver(parent).Resolve(sub, nil, reporterNetwork())
	assert.ErrorIs(t, err, ErrDanglingMapping)
}
