// Package xerrors defines the error taxonomy shared by every component of
// the simplifier: the parser, the rewrite generators, and the search driver
// all report failures through the same Kind-tagged error shape instead of
// ad-hoc error strings.
package xerrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind names a class of failure. Kinds are not Go types: every AlgexError
// carries one, and callers switch on Kind rather than type-asserting.
type Kind string

const (
	// ParseError is raised by the tokenizer/parser and surfaced unchanged.
	ParseError Kind = "ParseError"
	// InternalInvariantBroken means a generator saw a ref shape it did not
	// expect. The generator skips the candidate; this is never fatal.
	InternalInvariantBroken Kind = "InternalInvariantBroken"
	// ResourceExhaustion means the symbol cache or the frontier heap could
	// not grow further. Fatal.
	ResourceExhaustion Kind = "ResourceExhaustion"
)

// Location pinpoints a span in the original expression text.
type Location struct {
	Line   int
	Column int
}

// AlgexError is the concrete error type behind every Kind above. NoSolution
// and Cancelled are outcome variants (see package smodel), not errors, and
// are deliberately absent here.
type AlgexError struct {
	Kind     Kind
	Message  string
	Location Location
	Source   string // offending source line, if known
}

func (e *AlgexError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))
	if e.Location.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (line %d, col %d)", e.Location.Line, e.Location.Column))
		if e.Source != "" {
			sb.WriteString(fmt.Sprintf("\n  %d | %s\n  %s^", e.Location.Line, e.Source,
				strings.Repeat(" ", len(fmt.Sprintf("%d | ", e.Location.Line))+max(0, e.Location.Column-1))))
		}
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// NewParseError builds a ParseError at the given location.
func NewParseError(message string, line, column int) *AlgexError {
	return &AlgexError{Kind: ParseError, Message: message, Location: Location{Line: line, Column: column}}
}

// WithSource attaches the offending source line for display.
func (e *AlgexError) WithSource(source string) *AlgexError {
	e.Source = source
	return e
}

// NewInvariantBroken builds an InternalInvariantBroken error. Callers use
// this to log-and-skip inside a generator; it must never propagate out of
// the driver.
func NewInvariantBroken(message string) *AlgexError {
	return &AlgexError{Kind: InternalInvariantBroken, Message: message}
}

// NewResourceExhaustion wraps a lower-level cause (e.g. an allocator
// failure) with a stack trace via github.com/pkg/errors, since this kind is
// fatal and worth a full trace when logged.
func NewResourceExhaustion(message string, cause error) error {
	base := &AlgexError{Kind: ResourceExhaustion, Message: message}
	if cause == nil {
		return errors.WithStack(base)
	}
	return errors.Wrap(cause, base.Error())
}
