package reply

import (
	"regexp"
	"strings"
)

// Top-level markers recognized in a model reply
const (
	MarkerText    = "response"
	MarkerCommand = "cli"
	MarkerScript  = "python-script"
)

var (
	textRe    = regexp.MustCompile(`(?s)<response>(.*?)</response>`)
	commandRe = regexp.MustCompile(`(?s)<cli>(.*?)</cli>`)
	scriptRe  = regexp.MustCompile(`(?s)<python-script>(.*?)</python-script>`)
	nameRe    = regexp.MustCompile(`(?s)<script-name>(.*?)</script-name>`)
	bodyRe    = regexp.MustCompile(`(?s)<script-body>(.*?)</script-body>`)
)

// Parser classifies raw model output into a Response variant
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans raw for exactly one top-level marker and extracts its payload.
// Whitespace framing around markers and sub-fields is trimmed; the interior
// is preserved verbatim, so scripts keep their exact formatting.
func (p *Parser) Parse(raw string) (*Response, error) {
	var found []string

	textM := textRe.FindStringSubmatch(raw)
	if textM != nil {
		found = append(found, MarkerText)
	}
	commandM := commandRe.FindStringSubmatch(raw)
	if commandM != nil {
		found = append(found, MarkerCommand)
	}
	scriptM := scriptRe.FindStringSubmatch(raw)
	if scriptM != nil {
		found = append(found, MarkerScript)
	}

	switch len(found) {
	case 0:
		return nil, &NoVariantError{}
	case 1:
		// Exactly one variant
	default:
		return nil, &MultipleVariantsError{Markers: found}
	}

	switch found[0] {
	case MarkerText:
		body := strings.TrimSpace(textM[1])
		if body == "" {
			return nil, &EmptyBodyError{Marker: MarkerText}
		}
		return &Response{Kind: KindText, Body: body}, nil

	case MarkerCommand:
		command := strings.TrimSpace(commandM[1])
		if command == "" {
			return nil, &EmptyBodyError{Marker: MarkerCommand}
		}
		return &Response{Kind: KindCommand, Command: command}, nil

	default:
		return p.parseScript(scriptM[1])
	}
}

// parseScript extracts the name and body sub-fields from a script wrapper
func (p *Parser) parseScript(inner string) (*Response, error) {
	nameM := nameRe.FindStringSubmatch(inner)
	if nameM == nil {
		return nil, &MalformedScriptError{Missing: "script-name"}
	}
	bodyM := bodyRe.FindStringSubmatch(inner)
	if bodyM == nil {
		return nil, &MalformedScriptError{Missing: "script-body"}
	}

	name := strings.TrimSpace(nameM[1])
	if name == "" {
		return nil, &EmptyBodyError{Marker: "script-name"}
	}
	body := strings.TrimSpace(bodyM[1])
	if body == "" {
		return nil, &EmptyBodyError{Marker: "script-body"}
	}

	return &Response{Kind: KindScript, Name: name, Body: body}, nil
}
