package scripts

import (
	"fmt"
	"time"
)

// Record is one persisted script. Records returned by List carry metadata
// only; Get loads the body.
type Record struct {
	Name     string
	Body     string
	Path     string
	Size     int64
	Modified time.Time
}

// Error types

// NotFoundError indicates no script with the given name exists
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("script not found: %s", e.Name)
}

// InvalidNameError indicates a name that is not safe to use as a filename
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid script name %q: %s", e.Name, e.Reason)
}
