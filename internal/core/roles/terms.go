package roles

import "strings"

const (
	biopax = "http://www.biopax.org/release/biopax-level3.owl#"
	sbo    = "http://identifiers.org/biomodels.sbo/SBO:"
	so     = "http://identifiers.org/so/SO:"
	goTerm = "http://identifiers.org/go/GO:"
)

// Molecular types.
const (
	TypeDNA           = biopax + "DnaRegion"
	TypeProtein       = biopax + "Protein"
	TypeComplex       = biopax + "Complex"
	TypeSmallMolecule = biopax + "SmallMolecule"
)

// Structural and functional roles of a component definition.
const (
	RolePromoter            = so + "0000167"
	RoleGene                = so + "0000704"
	RoleCDS                 = so + "0000316"
	RoleTranscriptionFactor = goTerm + "0003700"
)

// Interaction types.
const (
	InteractionDegradation = sbo + "0000179"
	InteractionBinding     = sbo + "0000177"
	InteractionProduction  = sbo + "0000589"
	InteractionActivation  = sbo + "0000170"
	InteractionRepression  = sbo + "0000169"
)

// Participation roles. A participation role only has meaning relative to the
// interaction type, so several pattern roles share one term.
const (
	ParticipantReactant   = sbo + "0000010"
	ParticipantProduct    = sbo + "0000011"
	ParticipantPromoter   = sbo + "0000598"
	ParticipantTemplate   = sbo + "0000645"
	ParticipantStimulator = sbo + "0000459"
	ParticipantStimulated = sbo + "0000643"
	ParticipantInhibitor  = sbo + "0000020"
	ParticipantInhibited  = sbo + "0000642"

	ParticipantDegraded    = ParticipantReactant
	ParticipantLigand      = ParticipantReactant
	ParticipantComplex     = ParticipantProduct
	ParticipantTranscribed = ParticipantTemplate
	ParticipantActivator   = ParticipantStimulator
	ParticipantActivated   = ParticipantStimulated
	ParticipantRepressor   = ParticipantInhibitor
	ParticipantRepressed   = ParticipantInhibited
)

var aliases = map[string]string{
	"dna":                  TypeDNA,
	"protein":              TypeProtein,
	"complex_molecule":     TypeComplex,
	"small_molecule":       TypeSmallMolecule,
	"gene":                 RoleGene,
	"cds":                  RoleCDS,
	"transcription_factor": RoleTranscriptionFactor,
	"degradation":          InteractionDegradation,
	"binding":              InteractionBinding,
	"production":           InteractionProduction,
	"activation":           InteractionActivation,
	"stimulation":          InteractionActivation,
	"repression":           InteractionRepression,
	"inhibition":           InteractionRepression,
	"degraded":             ParticipantDegraded,
	"ligand":               ParticipantLigand,
	"reactant":             ParticipantReactant,
	"product":              ParticipantProduct,
	"transcribed":          ParticipantTranscribed,
	"template":             ParticipantTemplate,
	"activator":            ParticipantActivator,
	"activated":            ParticipantActivated,
	"repressor":            ParticipantRepressor,
	"repressed":            ParticipantRepressed,
}

// "promoter" and "complex" are ambiguous as bare words: they name both a
// definition tag and a participation role. The context decides.
var (
	definitionAliases    = map[string]string{"promoter": RolePromoter, "complex": TypeComplex}
	participationAliases = map[string]string{"promoter": ParticipantPromoter, "complex": ParticipantComplex}
)

// Canonical maps a definition tag (molecular type or role) to its IRI. Unknown
// tags are returned unchanged so that full IRIs pass through.
func Canonical(tag string) string {
	return canonical(tag, definitionAliases)
}

// CanonicalParticipation maps a participation role or interaction type tag to its IRI.
func CanonicalParticipation(tag string) string {
	return canonical(tag, participationAliases)
}

func canonical(tag string, contextual map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(tag))
	if iri, ok := contextual[key]; ok {
		return iri
	}
	if iri, ok := aliases[key]; ok {
		return iri
	}
	return strings.TrimSpace(tag)
}
