package classify

import (
	"sort"

	"github.com/agenthands/gcsynth/internal/core/model"
)

// PromoterBundle groups every interaction regulating one promoter instance.
type PromoterBundle struct {
	Promoter    string // ComponentInstance ID
	Productions []*Production
	Activations []*Activation
	Repressions []*Repression
}

// Classification is the result of classifying one module scope.
type Classification struct {
	Degradations      []*Degradation
	ComplexFormations []*ComplexFormation
	Unclassified      []*Unclassified

	bundles map[string]*PromoterBundle
}

// Promoters returns the promoter bundles ordered by promoter ID.
func (c *Classification) Promoters() []*PromoterBundle {
	keys := make([]string, 0, len(c.bundles))
	for k := range c.bundles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*PromoterBundle, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.bundles[k])
	}
	return out
}

func (c *Classification) Bundle(promoter string) (*PromoterBundle, bool) {
	b, ok := c.bundles[promoter]
	return b, ok
}

func (c *Classification) ProductionsByPromoter() map[string][]*Production {
	out := make(map[string][]*Production)
	for k, b := range c.bundles {
		if len(b.Productions) > 0 {
			out[k] = b.Productions
		}
	}
	return out
}

func (c *Classification) ActivationsByPromoter() map[string][]*Activation {
	out := make(map[string][]*Activation)
	for k, b := range c.bundles {
		if len(b.Activations) > 0 {
			out[k] = b.Activations
		}
	}
	return out
}

func (c *Classification) RepressionsByPromoter() map[string][]*Repression {
	out := make(map[string][]*Repression)
	for k, b := range c.bundles {
		if len(b.Repressions) > 0 {
			out[k] = b.Repressions
		}
	}
	return out
}

// Count returns the number of classified interactions of the given kind.
func (c *Classification) Count(kind Kind) int {
	switch kind {
	case KindDegradation:
		return len(c.Degradations)
	case KindComplexFormation:
		return len(c.ComplexFormations)
	case KindUnclassified:
		return len(c.Unclassified)
	}
	n := 0
	for _, b := range c.bundles {
		switch kind {
		case KindProduction:
			n += len(b.Productions)
		case KindActivation:
			n += len(b.Activations)
		case KindRepression:
			n += len(b.Repressions)
		}
	}
	return n
}

func (c *Classification) bundle(promoter string) *PromoterBundle {
	b, ok := c.bundles[promoter]
	if !ok {
		b = &PromoterBundle{Promoter: promoter}
		c.bundles[promoter] = b
	}
	return b
}

// ClassifyScope classifies every interaction of the scope's module in one pass
// and indexes the promoter-regulating patterns by promoter instance.
func ClassifyScope(s *model.Scope) *Classification {
	c := &Classification{bundles: make(map[string]*PromoterBundle)}
	for i := range s.Module.Interactions {
		switch p := Classify(s, &s.Module.Interactions[i]).(type) {
		case *Degradation:
			c.Degradations = append(c.Degradations, p)
		case *ComplexFormation:
			c.ComplexFormations = append(c.ComplexFormations, p)
		case *Production:
			b := c.bundle(p.Promoter.Participant)
			b.Productions = append(b.Productions, p)
		case *Activation:
			b := c.bundle(p.Activated.Participant)
			b.Activations = append(b.Activations, p)
		case *Repression:
			b := c.bundle(p.Repressed.Participant)
			b.Repressions = append(b.Repressions, p)
		case *Unclassified:
			c.Unclassified = append(c.Unclassified, p)
		}
	}
	return c
}
