package classify

import "github.com/agenthands/gcsynth/internal/core/model"

type Kind string

const (
	KindDegradation      Kind = "degradation"
	KindComplexFormation Kind = "complex_formation"
	KindProduction       Kind = "production"
	KindActivation       Kind = "activation"
	KindRepression       Kind = "repression"
	KindUnclassified     Kind = "unclassified"
)

// Pattern is the closed set of classification outcomes. Only the types in this
// file implement it.
type Pattern interface {
	Kind() Kind
	Source() *model.Interaction
	sealed()
}

type Degradation struct {
	Interaction *model.Interaction
	Degraded    *model.Participation
}

type ComplexFormation struct {
	Interaction *model.Interaction
	Complex     *model.Participation
	Ligands     []*model.Participation
}

type Production struct {
	Interaction *model.Interaction
	Promoter    *model.Participation
	Product     *model.Participation
	Transcribed *model.Participation
}

type Activation struct {
	Interaction *model.Interaction
	Activated   *model.Participation // promoter
	Activator   *model.Participation
}

type Repression struct {
	Interaction *model.Interaction
	Repressed   *model.Participation // promoter
	Repressor   *model.Participation
}

// Unclassified is returned when no pattern, or more than one, matches.
type Unclassified struct {
	Interaction *model.Interaction
	Reason      string
	Ambiguous   bool
	Candidates  []Kind // patterns that matched when Ambiguous
}

func (*Degradation) Kind() Kind      { return KindDegradation }
func (*ComplexFormation) Kind() Kind { return KindComplexFormation }
func (*Production) Kind() Kind       { return KindProduction }
func (*Activation) Kind() Kind       { return KindActivation }
func (*Repression) Kind() Kind       { return KindRepression }
func (*Unclassified) Kind() Kind     { return KindUnclassified }

func (p *Degradation) Source() *model.Interaction      { return p.Interaction }
func (p *ComplexFormation) Source() *model.Interaction { return p.Interaction }
func (p *Production) Source() *model.Interaction       { return p.Interaction }
func (p *Activation) Source() *model.Interaction       { return p.Interaction }
func (p *Repression) Source() *model.Interaction       { return p.Interaction }
func (p *Unclassified) Source() *model.Interaction     { return p.Interaction }

func (*Degradation) sealed()      {}
func (*ComplexFormation) sealed() {}
func (*Production) sealed()       {}
func (*Activation) sealed()       {}
func (*Repression) sealed()       {}
func (*Unclassified) sealed()     {}
