package engine

import (
	"fmt"

	"gridfire/core"
)

// UnknownEntityError reports a component operation against an entity that
// was never created or has already been destroyed. This is a programmer
// error: it is surfaced synchronously and must never be retried.
type UnknownEntityError struct {
	Entity core.Entity
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity %d", e.Entity)
}
