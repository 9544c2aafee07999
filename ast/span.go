// Package ast holds the value types produced by the parser: spans, spanned
// strings, breakable shell expressions, heredocs, and one record type per
// instruction family. Every node carries the exact half-open byte range it
// occupied in the original source buffer, so tools downstream can report
// diagnostics and edits against the file as written rather than against a
// normalized reconstruction.
//
// All types here are immutable value records once assembled. They form a
// strict tree reachable only from the instruction root; spans reference the
// original buffer by offset instead of embedding a copy or a back-pointer.
package ast

// Span is a half-open byte range [Start, End) into the original source buffer.
type Span struct {
	Start int
	End   int
}

// NewSpan returns the span [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Slice returns the raw source text the span covers.
func (s Span) Slice(source string) string {
	return source[s.Start:s.End]
}
