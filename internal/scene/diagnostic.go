package scene

import (
	"encoding/json"
	"fmt"
)

// Problem classifies a recovered, per-figure failure.
type Problem int

const (
	MissingField Problem = iota
	InvalidField
	UnknownType
	InvalidColor
	DrawFailed
)

func (p Problem) String() string {
	switch p {
	case MissingField:
		return "missing field"
	case InvalidField:
		return "invalid field"
	case UnknownType:
		return "unknown type"
	case InvalidColor:
		return "invalid color"
	case DrawFailed:
		return "draw failed"
	default:
		return "<unknown Problem>"
	}
}

// Diagnostic reports one dropped figure. Index is the 0-based position of the
// entry in the document's Figures list.
type Diagnostic struct {
	Index   int
	Source  string
	Raw     any
	Field   string
	Problem Problem
	Err     error
}

// RawString renders the offending entry as compact JSON.
func (d Diagnostic) RawString() string {
	b, err := json.Marshal(d.Raw)
	if err != nil {
		return fmt.Sprint(d.Raw)
	}
	return string(b)
}

func (d Diagnostic) String() string {
	msg := fmt.Sprintf("figure %d of %s ignored: %s", d.Index, d.Source, d.Problem)
	if d.Field != "" {
		msg += fmt.Sprintf(" %q", d.Field)
	}
	if d.Err != nil {
		msg += ": " + d.Err.Error()
	}
	return msg + "; figure: " + d.RawString()
}

// fieldError is returned by the field accessors while parsing one figure.
type fieldError struct {
	field   string
	missing bool
	reason  string
}

func (e *fieldError) Error() string {
	if e.missing {
		return fmt.Sprintf("lacking parameter %q", e.field)
	}
	return fmt.Sprintf("parameter %q %s", e.field, e.reason)
}
