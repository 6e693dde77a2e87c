package catalog

import "fmt"

// ErrLoad indicates the task catalog could not be loaded: the source is
// missing, unreadable, or malformed (schema violation, duplicate ID).
// Fatal — no task can be served.
type ErrLoad struct {
	Source string
	Err    error
}

func (e *ErrLoad) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("load task catalog %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("load task catalog: %v", e.Err)
}

func (e *ErrLoad) Unwrap() error { return e.Err }
