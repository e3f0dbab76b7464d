package model

// Direction marks whether a component instance is exposed as a port of its module.
type Direction string

const (
	DirectionNone   Direction = "none"
	DirectionInput  Direction = "input"
	DirectionOutput Direction = "output"
)

// Refinement is the policy carried by a Mapping. useLocal, merge and
// verifyIdentical keep the parent's entity; useRemote keeps the child's.
type Refinement string

const (
	RefinementUseLocal        Refinement = "useLocal"
	RefinementMerge           Refinement = "merge"
	RefinementVerifyIdentical Refinement = "verifyIdentical"
	RefinementUseRemote       Refinement = "useRemote"
)

type ComponentDefinition struct {
	ID    string   `json:"id" validate:"required"`
	Name  string   `json:"name,omitempty"`
	Types []string `json:"types"`
	Roles []string `json:"roles,omitempty"`
}

type ComponentInstance struct {
	ID         string    `json:"id" validate:"required"`
	Name       string    `json:"name,omitempty"`
	Definition string    `json:"definition" validate:"required"`
	Direction  Direction `json:"direction,omitempty"`
}

// Exposed reports whether the instance is visible across its module boundary.
func (c *ComponentInstance) Exposed() bool {
	return c.Direction == DirectionInput || c.Direction == DirectionOutput
}

type Participation struct {
	ID          string   `json:"id" validate:"required"`
	Participant string   `json:"participant" validate:"required"` // ComponentInstance ID
	Roles       []string `json:"roles"`
}

type Interaction struct {
	ID             string          `json:"id" validate:"required"`
	Name           string          `json:"name,omitempty"`
	Types          []string        `json:"types"`
	Participations []Participation `json:"participations" validate:"dive"`
}

type Mapping struct {
	ID         string     `json:"id" validate:"required"`
	Local      string     `json:"local" validate:"required"`  // enclosing module's ComponentInstance ID
	Remote     string     `json:"remote" validate:"required"` // submodule's ComponentInstance ID
	Refinement Refinement `json:"refinement"`
}

// Submodule is an instantiation of another ModuleDefinition inside a module.
type Submodule struct {
	ID         string    `json:"id" validate:"required"`
	Definition string    `json:"definition" validate:"required"`
	Mappings   []Mapping `json:"mappings,omitempty" validate:"dive"`
}

type ModuleDefinition struct {
	ID           string              `json:"id" validate:"required"`
	Name         string              `json:"name,omitempty"`
	Components   []ComponentInstance `json:"components" validate:"dive"`
	Interactions []Interaction       `json:"interactions,omitempty" validate:"dive"`
	Submodules   []Submodule         `json:"submodules,omitempty" validate:"dive"`
}

// Document is the in-memory graph handed over by the document loader.
type Document struct {
	Definitions []ComponentDefinition `json:"definitions" validate:"dive"`
	Modules     []ModuleDefinition    `json:"modules" validate:"required,min=1,dive"`
}
