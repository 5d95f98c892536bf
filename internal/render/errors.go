package render

import (
	"fmt"

	"github.com/zoobzio/exprql/dialect"
	"github.com/zoobzio/exprql/internal/types"
)

// UnsupportedConstructError indicates that a node kind has neither native
// syntax nor a registered emulation rule for the target dialect. It is
// surfaced to the caller verbatim; rendering never degrades silently.
type UnsupportedConstructError struct {
	Kind    types.Kind
	Dialect dialect.Dialect
}

func (e UnsupportedConstructError) Error() string {
	return fmt.Sprintf("%s: %s is not supported: no native syntax or emulation rule", e.Dialect, e.Kind)
}

// MalformedEmulationError indicates an emulation rule whose substitute
// tree violates the original kind's arity or type contract. Rules are
// static and validated when the table is built, so this is an internal
// programming error, not a user-recoverable condition.
type MalformedEmulationError struct {
	Kind   types.Kind
	Detail string
}

func (e MalformedEmulationError) Error() string {
	return fmt.Sprintf("emulation rule for %s is malformed: %s", e.Kind, e.Detail)
}
