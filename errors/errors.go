// Package errors defines the closed set of failures the instruction assembly
// layer can produce. Every failure is a plain error value carried up through
// return values; nothing in the parser panics or recovers. Where a failure has
// a source location the error records the byte span of the offending text so
// callers can point diagnostics at the original buffer.
package errors

import (
	"fmt"
	"strings"
)

// GenericParseError reports a shape violation that needs no more structure
// than a message: a flag without a value, a missing destination, too few copy
// sources, and so on.
type GenericParseError struct {
	Message string
}

func (e *GenericParseError) Error() string {
	return e.Message
}

// UnexpectedTokenError reports a child node whose rule kind was not one the
// current assembler state expected. It always names the offending node.
type UnexpectedTokenError struct {
	Kind  string // rule kind of the offending node
	Text  string // raw source text of the node
	Start int
	End   int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s (%q) at bytes %d..%d", e.Kind, e.Text, e.Start, e.End)
}

// HeredocTerminatorMismatchError reports a terminator line whose text does not
// equal the matched delimiter plus a trailing newline. The comparison is exact:
// case and whitespace both count.
type HeredocTerminatorMismatchError struct {
	Delimiter  string // delimiter of the oldest pending opener
	Terminator string // terminator line text, without its trailing newline
	Start      int
	End        int
}

func (e *HeredocTerminatorMismatchError) Error() string {
	return fmt.Sprintf("invalid heredoc: terminator %q does not match delimiter %q", e.Terminator, e.Delimiter)
}

// UnmatchedHeredocTerminatorError reports a terminator line seen while no
// heredoc opener was pending.
type UnmatchedHeredocTerminatorError struct {
	Terminator string
	Start      int
	End        int
}

func (e *UnmatchedHeredocTerminatorError) Error() string {
	return fmt.Sprintf("heredoc terminator %q without matching delimiter", e.Terminator)
}

// UnmatchedHeredocDelimiterError reports an instruction that ended while one
// or more heredoc openers were still waiting for their terminator lines.
// Delimiters are listed in the order they were opened.
type UnmatchedHeredocDelimiterError struct {
	Delimiters []string
	Start      int
	End        int
}

func (e *UnmatchedHeredocDelimiterError) Error() string {
	return fmt.Sprintf("unmatched heredoc delimiters: %s", strings.Join(e.Delimiters, ", "))
}

// ConversionError reports a failed narrowing of a generic instruction value to
// a specific instruction-family record.
type ConversionError struct {
	From string
	To   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// SpanOf extracts the source byte range from an error, when it carries one.
func SpanOf(err error) (start, end int, ok bool) {
	switch e := err.(type) {
	case *UnexpectedTokenError:
		return e.Start, e.End, true
	case *HeredocTerminatorMismatchError:
		return e.Start, e.End, true
	case *UnmatchedHeredocTerminatorError:
		return e.Start, e.End, true
	case *UnmatchedHeredocDelimiterError:
		return e.Start, e.End, true
	default:
		return 0, 0, false
	}
}
