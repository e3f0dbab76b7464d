package core

import (
	"errors"
	"fmt"

	"github.com/agenthands/gcsynth/internal/core/common"
	"github.com/agenthands/gcsynth/internal/core/ports"
)

var (
	ErrUnknownModule     = errors.New("unknown module definition")
	ErrDanglingSubmodule = errors.New("submodule references a missing module definition")
	ErrCyclicModule      = errors.New("cyclic module reference")
	ErrStrictViolation   = errors.New("strict mode: module has diagnostics")

	ErrUnknownRefinement      = ports.ErrUnknownRefinement
	ErrDanglingMapping        = ports.ErrDanglingMapping
	ErrPortNotFound           = ports.ErrPortNotFound
	ErrConflictingReplacement = ports.ErrConflictingReplacement
)

// ModuleError locates a fatal composition error in the module tree. Chain runs
// from the root definition to the module being compiled when it failed.
type ModuleError struct {
	Chain      []string
	Submodule  string
	Definition string
	Err        error
}

func (e *ModuleError) Error() string {
	msg := fmt.Sprintf("module %s", common.Chain(e.Chain))
	if e.Submodule != "" {
		msg += fmt.Sprintf(": submodule %s (definition %s)", e.Submodule, e.Definition)
	}
	return msg + ": " + e.Err.Error()
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}
