package reply

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a model reply was classified as
type Kind int

const (
	KindText    Kind = iota // prose answer, shown to the user
	KindCommand             // single shell command line
	KindScript              // named python script to persist
)

// Response is a classified model reply. Kind selects the variant; only the
// fields belonging to that variant are populated.
type Response struct {
	Kind    Kind
	Body    string // KindText: answer text, KindScript: script body
	Command string // KindCommand: the command line
	Name    string // KindScript: target script name
}

// Error types

// NoVariantError indicates the reply contained no recognized marker
type NoVariantError struct{}

func (e *NoVariantError) Error() string {
	return "no recognized marker in model reply"
}

// MultipleVariantsError indicates more than one top-level marker was present
type MultipleVariantsError struct {
	Markers []string
}

func (e *MultipleVariantsError) Error() string {
	return fmt.Sprintf("ambiguous model reply: multiple markers (%s)", strings.Join(e.Markers, ", "))
}

// MalformedScriptError indicates the script wrapper is missing a sub-field
type MalformedScriptError struct {
	Missing string
}

func (e *MalformedScriptError) Error() string {
	return fmt.Sprintf("malformed script reply: missing <%s>", e.Missing)
}

// EmptyBodyError indicates a marker whose payload is blank after trimming
type EmptyBodyError struct {
	Marker string
}

func (e *EmptyBodyError) Error() string {
	return fmt.Sprintf("empty <%s> payload", e.Marker)
}
