// Package provenance links generated network entities back to the annotation
// elements they were compiled from. The links are metadata only; nothing in the
// classifier or synthesizer reads them.
package provenance

import (
	"github.com/agenthands/gcsynth/internal/core/model"
	"github.com/google/uuid"
)

// namespace seeds the name-based link IDs so regeneration yields identical IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/agenthands/gcsynth/provenance"))

// Target is anything that can carry forward links. *model.Provenance implements it.
type Target interface {
	AddSource(ref model.SourceRef)
}

// Sink stores the reverse direction, source element to generated entity.
type Sink interface {
	Record(source, generated string)
}

type Annotator struct {
	enabled bool
	sink    Sink
}

// NewAnnotator returns an annotator writing reverse links into sink. A nil sink
// keeps forward links only.
func NewAnnotator(sink Sink) *Annotator {
	return &Annotator{enabled: true, sink: sink}
}

// Disabled returns an annotator whose Attach does nothing.
func Disabled() *Annotator {
	return &Annotator{}
}

func (a *Annotator) Enabled() bool {
	return a != nil && a.enabled
}

// Attach links the generated entity to each source element.
func (a *Annotator) Attach(generated string, target Target, kind model.SourceKind, sources ...string) {
	if !a.Enabled() {
		return
	}
	for _, src := range sources {
		if src == "" {
			continue
		}
		target.AddSource(model.SourceRef{
			ID:     LinkID(generated, kind, src),
			Kind:   kind,
			Source: src,
		})
		if a.sink != nil {
			a.sink.Record(src, generated)
		}
	}
}

// LinkID derives the stable identifier of one provenance link.
func LinkID(generated string, kind model.SourceKind, source string) string {
	return uuid.NewSHA1(namespace, []byte(generated+"|"+string(kind)+"|"+source)).String()
}

// Trace records reverse links in a model's Trace map.
type Trace struct {
	Model *model.ReactionNetworkModel
}

func (t Trace) Record(source, generated string) {
	if t.Model.Trace == nil {
		t.Model.Trace = make(map[string][]string)
	}
	for _, existing := range t.Model.Trace[source] {
		if existing == generated {
			return
		}
	}
	t.Model.Trace[source] = append(t.Model.Trace[source], generated)
}
