package ast

import "strings"

// BreakableStringComponent is one fragment of a breakable shell expression:
// either literal command text or a comment line interleaved between
// continuation lines. The two concrete types are SpannedString (literal) and
// SpannedComment.
type BreakableStringComponent interface {
	// ComponentSpan returns the fragment's raw source extent.
	ComponentSpan() Span

	breakableComponent()
}

func (s SpannedString) ComponentSpan() Span { return s.Span }
func (s SpannedString) breakableComponent() {}

func (c SpannedComment) ComponentSpan() Span { return c.Span }
func (c SpannedComment) breakableComponent() {}

// BreakableString is a shell-form instruction body that may span multiple
// physical lines joined by escaped line breaks, with comment lines interleaved
// between continuations. Fragments are kept in ascending span order so the
// original layout stays recoverable; String reconstructs the effective command
// text with comments excised.
//
// The Add methods are value-returning builder steps: a BreakableString is
// extended only while the assembler constructs it and is never mutated after
// it has been returned.
type BreakableString struct {
	Span       Span
	Components []BreakableStringComponent
}

// NewBreakableString returns an empty breakable string covering span.
func NewBreakableString(span Span) BreakableString {
	return BreakableString{Span: span}
}

// AddString appends one literal fragment and returns the extended value.
func (b BreakableString) AddString(span Span, content string) BreakableString {
	b.Components = appendComponent(b.Components, SpannedString{Span: span, Content: content})
	return b
}

// AddComment appends one comment fragment and returns the extended value.
func (b BreakableString) AddComment(span Span, content string) BreakableString {
	b.Components = appendComponent(b.Components, SpannedComment{Span: span, Content: content})
	return b
}

// String returns the effective command text: the concatenation, in span order,
// of all literal fragments exactly as captured. Comment fragments contribute
// nothing, including their newlines.
func (b BreakableString) String() string {
	var sb strings.Builder
	for _, c := range b.Components {
		if s, ok := c.(SpannedString); ok {
			sb.WriteString(s.Content)
		}
	}
	return sb.String()
}

// appendComponent copies before appending so extended values never alias the
// backing array of the value they were built from.
func appendComponent(components []BreakableStringComponent, c BreakableStringComponent) []BreakableStringComponent {
	out := make([]BreakableStringComponent, len(components), len(components)+1)
	copy(out, components)
	return append(out, c)
}
