// Package synthesis turns classified interactions of one module into a
// reaction network model.
package synthesis

import (
	"fmt"

	"github.com/agenthands/gcsynth/internal/core/common"
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/provenance"
	"github.com/agenthands/gcsynth/internal/core/roles"
)

// Builder accumulates the network of a single module. It never writes to the
// scope it reads from.
type Builder struct {
	scope     *model.Scope
	model     *model.ReactionNetworkModel
	annotator *provenance.Annotator
	diags     []model.Diagnostic
}

// NewBuilder starts an empty model named after the scope's module. When
// withProvenance is false no back-links are recorded.
func NewBuilder(s *model.Scope, withProvenance bool) *Builder {
	m := model.NewReactionNetworkModel(s.Module.ID, s.Module.Name)
	annotator := provenance.Disabled()
	if withProvenance {
		annotator = provenance.NewAnnotator(provenance.Trace{Model: m})
	}
	return &Builder{scope: s, model: m, annotator: annotator}
}

func (b *Builder) Model() *model.ReactionNetworkModel {
	return b.model
}

func (b *Builder) Diagnostics() []model.Diagnostic {
	return b.diags
}

func (b *Builder) diagnose(sev model.Severity, code, element, format string, args ...any) {
	b.diags = append(b.diags, model.Diagnostic{
		Severity: sev,
		Code:     code,
		Module:   b.scope.Module.ID,
		Element:  element,
		Message:  fmt.Sprintf(format, args...),
	})
}

// DeclareSpecies creates a species for every species-like or promoter-like
// component instance, plus a port for each directed one.
func (b *Builder) DeclareSpecies() {
	for i := range b.scope.Module.Components {
		inst := &b.scope.Module.Components[i]
		_, def := b.scope.Resolve(inst.ID)
		if def == nil {
			b.diagnose(model.SeverityWarning, model.CodeUndefinedComponent, inst.ID,
				"component %q references unknown definition %q", inst.ID, inst.Definition)
			continue
		}
		if roles.IsSpeciesLike(def) || roles.IsPromoterLike(def) {
			b.EnsureSpecies(inst.ID)
		}
	}
}

// EnsureSpecies returns the species for a component instance, creating it and
// its port on first use.
func (b *Builder) EnsureSpecies(instanceID string) *model.Species {
	if s := b.model.FindSpecies(instanceID); s != nil {
		return s
	}
	inst, def := b.scope.Resolve(instanceID)
	s := &model.Species{ID: instanceID, Kind: roles.KindOf(def)}
	if inst != nil {
		s.Name = inst.Name
		s.Definition = inst.Definition
	}
	b.annotator.Attach(s.ID, &s.Provenance, model.SourceComponent, instanceID)
	b.model.Species = append(b.model.Species, s)

	if roles.IsInput(inst) || roles.IsOutput(inst) {
		p := &model.Port{
			ID:        common.PortID(inst.Direction, s.ID),
			Species:   s.ID,
			Direction: inst.Direction,
		}
		b.annotator.Attach(p.ID, &p.Provenance, model.SourceComponent, instanceID)
		b.model.Ports = append(b.model.Ports, p)
		s.Port = p.ID
	}
	return s
}

// AddSubmodel records a submodule instance and the model generated for its definition.
func (b *Builder) AddSubmodel(instanceID, definitionID string) {
	for _, sm := range b.model.Submodels {
		if sm.ID == instanceID {
			return
		}
	}
	b.model.Submodels = append(b.model.Submodels, &model.Submodel{ID: instanceID, ModelRef: definitionID})
}

// AddLink records a cross-boundary redirection derived from a mapping.
func (b *Builder) AddLink(l *model.Link, mappingID string) {
	b.annotator.Attach(l.Species+"|"+l.Submodel+"|"+l.Port, &l.Provenance, model.SourceMapping, mappingID)
	b.model.Replacements = append(b.model.Replacements, l)
}
