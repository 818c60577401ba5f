package parser

import (
	"fmt"

	"github.com/OpenTraceLab/ltspice2svg/pkg/ltspice/model"
)

// ParseError reports a line that does not match its keyword's grammar
type ParseError struct {
	Source   string
	Line     int
	Text     string
	Expected string
	Err      error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s:%d: expected %s, got %q", e.Source, e.Line, e.Expected, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the cause; every ParseError matches model.ErrMalformedInput
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{model.ErrMalformedInput, e.Err}
	}
	return []error{model.ErrMalformedInput}
}
