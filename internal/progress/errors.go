package progress

import "fmt"

// ErrPersistence indicates progress state could not be durably written.
// The prior durable state is unchanged — the mutation did not happen.
// Surfaced distinctly so the boundary can tell the user their progress
// was not saved, rather than reporting success.
type ErrPersistence struct {
	Op  string
	Err error
}

func (e *ErrPersistence) Error() string {
	return fmt.Sprintf("persist progress (%s): %v", e.Op, e.Err)
}

func (e *ErrPersistence) Unwrap() error { return e.Err }
