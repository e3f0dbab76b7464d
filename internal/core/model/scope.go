package model

// Catalog indexes a Document by identifier. It is built once per compile pass
// and never mutates the document it was built from.
type Catalog struct {
	definitions map[string]*ComponentDefinition
	modules     map[string]*ModuleDefinition
}

func NewCatalog(doc *Document) *Catalog {
	c := &Catalog{
		definitions: make(map[string]*ComponentDefinition, len(doc.Definitions)),
		modules:     make(map[string]*ModuleDefinition, len(doc.Modules)),
	}
	for i := range doc.Definitions {
		c.definitions[doc.Definitions[i].ID] = &doc.Definitions[i]
	}
	for i := range doc.Modules {
		c.modules[doc.Modules[i].ID] = &doc.Modules[i]
	}
	return c
}

func (c *Catalog) Definition(id string) (*ComponentDefinition, bool) {
	d, ok := c.definitions[id]
	return d, ok
}

func (c *Catalog) Module(id string) (*ModuleDefinition, bool) {
	m, ok := c.modules[id]
	return m, ok
}

// Scope returns the lookup view of one module.
func (c *Catalog) Scope(md *ModuleDefinition) *Scope {
	s := &Scope{
		Module:    md,
		catalog:   c,
		instances: make(map[string]*ComponentInstance, len(md.Components)),
	}
	for i := range md.Components {
		s.instances[md.Components[i].ID] = &md.Components[i]
	}
	return s
}

// Scope resolves component instances of a single module to their definitions.
type Scope struct {
	Module    *ModuleDefinition
	catalog   *Catalog
	instances map[string]*ComponentInstance
}

func (s *Scope) Instance(id string) (*ComponentInstance, bool) {
	inst, ok := s.instances[id]
	return inst, ok
}

// Resolve returns the instance and its definition. The definition is nil when
// the instance references an unknown definition.
func (s *Scope) Resolve(instanceID string) (*ComponentInstance, *ComponentDefinition) {
	inst, ok := s.instances[instanceID]
	if !ok {
		return nil, nil
	}
	def, _ := s.catalog.Definition(inst.Definition)
	return inst, def
}
