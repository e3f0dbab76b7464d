// Package ports resolves submodule mappings into replacement links between a
// parent network and the network generated for the submodule's definition.
package ports

import (
	"errors"
	"fmt"

	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/agenthands/gcsynth/internal/core/roles"
)

var (
	ErrUnknownRefinement      = errors.New("unknown mapping refinement")
	ErrDanglingMapping        = errors.New("mapping references a missing component")
	ErrPortNotFound           = errors.New("sub-network does not expose the mapped port")
	ErrConflictingReplacement = errors.New("local species is replaced by more than one port")
)

// PolicyOf maps a refinement onto the direction of the redirection. useLocal,
// merge and verifyIdentical keep the parent species canonical; useRemote
// defers to the submodule's port.
func PolicyOf(r model.Refinement) (model.ReplacementKind, error) {
	switch r {
	case model.RefinementUseLocal, model.RefinementMerge, model.RefinementVerifyIdentical:
		return model.Replacement, nil
	case model.RefinementUseRemote:
		return model.ReplacedBy, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRefinement, r)
}

// Wiring is one applied mapping.
type Wiring struct {
	Mapping *model.Mapping
	Link    *model.Link
}

type Result struct {
	Wirings []Wiring
	// Skipped holds the IDs of mappings whose remote component is not a port.
	Skipped []string
}

// Resolver wires the submodules of one parent module. It remembers which local
// species already defer to a port so a second deferral is reported.
type Resolver struct {
	parent     *model.Scope
	replacedBy map[string]string
}

func NewResolver(parent *model.Scope) *Resolver {
	return &Resolver{parent: parent, replacedBy: make(map[string]string)}
}

// Resolve applies the mappings of sub against subModel, the network built (or
// reused) for the submodule's definition. child is the definition's scope; it
// is nil when the network was reused without a definition in the document, in
// which case port membership is read from subModel.
func (r *Resolver) Resolve(sub *model.Submodule, child *model.Scope, subModel *model.ReactionNetworkModel) (*Result, error) {
	res := &Result{}
	for i := range sub.Mappings {
		m := &sub.Mappings[i]
		if _, ok := r.parent.Instance(m.Local); !ok {
			return nil, fmt.Errorf("%w: mapping %s local %q in module %s", ErrDanglingMapping, m.ID, m.Local, r.parent.Module.ID)
		}

		port, isIO, err := remotePort(m, child, subModel)
		if err != nil {
			return nil, err
		}
		if !isIO {
			res.Skipped = append(res.Skipped, m.ID)
			continue
		}

		kind, err := PolicyOf(m.Refinement)
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", m.ID, err)
		}
		target := sub.ID + "/" + port.ID
		if kind == model.ReplacedBy {
			if prev, ok := r.replacedBy[m.Local]; ok && prev != target {
				return nil, fmt.Errorf("%w: %q by %s and %s", ErrConflictingReplacement, m.Local, prev, target)
			}
			r.replacedBy[m.Local] = target
		}

		res.Wirings = append(res.Wirings, Wiring{
			Mapping: m,
			Link: &model.Link{
				Species:  m.Local,
				Submodel: sub.ID,
				Port:     port.ID,
				Kind:     kind,
			},
		})
	}
	return res, nil
}

// remotePort finds the sub-network port behind a mapping's remote component.
// isIO is false when the remote component is not exposed as a port.
func remotePort(m *model.Mapping, child *model.Scope, subModel *model.ReactionNetworkModel) (*model.Port, bool, error) {
	if child != nil {
		inst, ok := child.Instance(m.Remote)
		if !ok {
			return nil, false, fmt.Errorf("%w: mapping %s remote %q in module %s", ErrDanglingMapping, m.ID, m.Remote, child.Module.ID)
		}
		if !roles.IsInput(inst) && !roles.IsOutput(inst) {
			return nil, false, nil
		}
		if p := portFor(subModel, m.Remote); p != nil {
			return p, true, nil
		}
		return nil, false, fmt.Errorf("%w: %q in %s", ErrPortNotFound, m.Remote, subModel.ID)
	}

	if subModel.FindSpecies(m.Remote) == nil {
		return nil, false, fmt.Errorf("%w: mapping %s remote %q in network %s", ErrDanglingMapping, m.ID, m.Remote, subModel.ID)
	}
	p := portFor(subModel, m.Remote)
	return p, p != nil, nil
}

func portFor(m *model.ReactionNetworkModel, speciesID string) *model.Port {
	for _, p := range m.Ports {
		if p.Species == speciesID {
			return p
		}
	}
	return nil
}
