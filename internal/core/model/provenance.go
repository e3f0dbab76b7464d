package model

type SourceKind string

const (
	SourceInteraction   SourceKind = "interaction"
	SourceParticipation SourceKind = "participation"
	SourceComponent     SourceKind = "component"
	SourceMapping       SourceKind = "mapping"
)

// SourceRef points from a generated entity back to the annotation element it came from.
type SourceRef struct {
	ID     string     `json:"id" yaml:"id"` // link ID, stable across regeneration
	Kind   SourceKind `json:"kind" yaml:"kind"`
	Source string     `json:"source" yaml:"source"`
}

type Provenance struct {
	DerivedFrom []SourceRef `json:"derived_from,omitempty" yaml:"derived_from,omitempty"`
}

func (p *Provenance) AddSource(ref SourceRef) {
	for _, existing := range p.DerivedFrom {
		if existing.ID == ref.ID {
			return
		}
	}
	p.DerivedFrom = append(p.DerivedFrom, ref)
}

// Sources returns the IDs of every source element, in attach order.
func (p *Provenance) Sources() []string {
	ids := make([]string, 0, len(p.DerivedFrom))
	for _, ref := range p.DerivedFrom {
		ids = append(ids, ref.Source)
	}
	return ids
}
