package model

type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

const (
	CodeUnclassifiedInteraction = "unclassified_interaction"
	CodeAmbiguousInteraction    = "ambiguous_interaction"
	CodeOrphanRegulation        = "orphan_regulation"
	CodeUndefinedComponent      = "undefined_component"
	CodeConflictingRoles        = "conflicting_roles"
)

// Diagnostic reports a recoverable condition found while compiling a module.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Module   string   `json:"module"`
	Element  string   `json:"element,omitempty"`
	Message  string   `json:"message"`
}
