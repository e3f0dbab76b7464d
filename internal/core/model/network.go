package model

type SpeciesKind string

const (
	SpeciesProtein       SpeciesKind = "protein"
	SpeciesComplex       SpeciesKind = "complex"
	SpeciesSmallMolecule SpeciesKind = "small_molecule"
	SpeciesPromoter      SpeciesKind = "promoter"
	SpeciesUnknown       SpeciesKind = "unknown"
)

type ReactionKind string

const (
	ReactionDegradation      ReactionKind = "degradation"
	ReactionComplexFormation ReactionKind = "complex_formation"
	ReactionProduction       ReactionKind = "production"
)

// ReferenceRole distinguishes how a species takes part in a reaction. Modifier
// roles are metadata only; they do not change the reaction's structure.
type ReferenceRole string

const (
	RoleReactant  ReferenceRole = "reactant"
	RoleProduct   ReferenceRole = "product"
	RolePromoter  ReferenceRole = "promoter"
	RoleActivator ReferenceRole = "activator"
	RoleRepressor ReferenceRole = "repressor"
	RoleDual      ReferenceRole = "dual"
)

type ReplacementKind string

const (
	// Replacement: the local species is canonical, the submodule port is redirected to it.
	Replacement ReplacementKind = "replacement"
	// ReplacedBy: the submodule port is canonical, the local species is redirected to it.
	ReplacedBy ReplacementKind = "replaced_by"
)

type Species struct {
	ID         string      `json:"id" yaml:"id"` // ComponentInstance ID
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	Definition string      `json:"definition" yaml:"definition"`
	Kind       SpeciesKind `json:"kind" yaml:"kind"`
	Port       string      `json:"port,omitempty" yaml:"port,omitempty"`
	Provenance `yaml:",inline"`
}

type SpeciesReference struct {
	Species       string        `json:"species" yaml:"species"`
	Role          ReferenceRole `json:"role" yaml:"role"`
	Stoichiometry float64       `json:"stoichiometry" yaml:"stoichiometry"`
	Exposed       bool          `json:"exposed,omitempty" yaml:"exposed,omitempty"`
	Provenance    `yaml:",inline"`
}

type Reaction struct {
	ID         string             `json:"id" yaml:"id"`
	Kind       ReactionKind       `json:"kind" yaml:"kind"`
	Reversible bool               `json:"reversible" yaml:"reversible"`
	Reactants  []SpeciesReference `json:"reactants" yaml:"reactants"`
	Products   []SpeciesReference `json:"products" yaml:"products"`
	Modifiers  []SpeciesReference `json:"modifiers" yaml:"modifiers"`
	Exposed    bool               `json:"exposed,omitempty" yaml:"exposed,omitempty"`
	Provenance `yaml:",inline"`
}

type Port struct {
	ID         string    `json:"id" yaml:"id"`
	Species    string    `json:"species" yaml:"species"`
	Direction  Direction `json:"direction" yaml:"direction"`
	Provenance `yaml:",inline"`
}

// Submodel links a submodule instance to the model generated for its definition.
type Submodel struct {
	ID       string `json:"id" yaml:"id"`               // Submodule instance ID
	ModelRef string `json:"model_ref" yaml:"model_ref"` // ModuleDefinition ID
}

type Link struct {
	Species    string          `json:"species" yaml:"species"` // local species
	Submodel   string          `json:"submodel" yaml:"submodel"`
	Port       string          `json:"port" yaml:"port"`
	Kind       ReplacementKind `json:"kind" yaml:"kind"`
	Provenance `yaml:",inline"`
}

type ReactionNetworkModel struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name,omitempty" yaml:"name,omitempty"`
	Species      []*Species  `json:"species" yaml:"species"`
	Reactions    []*Reaction `json:"reactions" yaml:"reactions"`
	Ports        []*Port     `json:"ports" yaml:"ports"`
	Submodels    []*Submodel `json:"submodels,omitempty" yaml:"submodels,omitempty"`
	Replacements []*Link     `json:"replacements,omitempty" yaml:"replacements,omitempty"`
	// Trace maps a source element ID to the IDs of entities generated from it.
	Trace map[string][]string `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func NewReactionNetworkModel(id, name string) *ReactionNetworkModel {
	return &ReactionNetworkModel{
		ID:        id,
		Name:      name,
		Species:   []*Species{},
		Reactions: []*Reaction{},
		Ports:     []*Port{},
	}
}

func (m *ReactionNetworkModel) FindSpecies(id string) *Species {
	for _, s := range m.Species {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (m *ReactionNetworkModel) FindReaction(id string) *Reaction {
	for _, r := range m.Reactions {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (m *ReactionNetworkModel) FindPort(id string) *Port {
	for _, p := range m.Ports {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// LinksFor returns the replacement links attached to a local species.
func (m *ReactionNetworkModel) LinksFor(speciesID string) []*Link {
	var links []*Link
	for _, l := range m.Replacements {
		if l.Species == speciesID {
			links = append(links, l)
		}
	}
	return links
}
