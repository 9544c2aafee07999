package parser

import (
	"strings"

	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

// heredocMatcher pairs heredoc terminator lines with their delimiters across
// one instruction. Delimiters queue in the order their openers appear and
// terminators must retire them first-in-first-out: the oldest pending
// delimiter is the only one a terminator may match.
type heredocMatcher struct {
	pending []ast.SpannedString
}

// open queues a delimiter.
func (m *heredocMatcher) open(delim ast.SpannedString) {
	m.pending = append(m.pending, delim)
}

// terminate checks a terminator line against the oldest pending delimiter and
// retires it. raw is the terminator line's text including its trailing
// newline; the comparison is exact, so a wrong case, stray whitespace, or a
// missing trailing newline all fail.
func (m *heredocMatcher) terminate(span ast.Span, raw string) error {
	text := strings.TrimSuffix(raw, "\n")
	if len(m.pending) == 0 {
		return &errors.UnmatchedHeredocTerminatorError{
			Terminator: text,
			Start:      span.Start,
			End:        span.End,
		}
	}
	head := m.pending[0]
	if raw != head.Content+"\n" {
		return &errors.HeredocTerminatorMismatchError{
			Delimiter:  head.Content,
			Terminator: text,
			Start:      span.Start,
			End:        span.End,
		}
	}
	m.pending = m.pending[1:]
	return nil
}

// finish reports the delimiters still pending once the instruction ends.
func (m *heredocMatcher) finish() error {
	if len(m.pending) == 0 {
		return nil
	}
	names := make([]string, len(m.pending))
	for i, d := range m.pending {
		names[i] = d.Content
	}
	return &errors.UnmatchedHeredocDelimiterError{
		Delimiters: names,
		Start:      m.pending[0].Span.Start,
		End:        m.pending[len(m.pending)-1].Span.End,
	}
}

// parseHeredoc assembles one heredoc block, routing its delimiter and
// terminator through the matcher. A block with no terminator registers its
// delimiter and returns; the matcher reports it when the instruction ends.
func parseHeredoc(node *lexer.Node, m *heredocMatcher) (ast.Heredoc, error) {
	h := ast.Heredoc{Span: node.Span}
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindHeredocDelim:
			h.Delimiter = ast.SpannedString{
				Span:    child.Span,
				Content: unquoteDelimiter(child.Text),
			}
			m.open(h.Delimiter)
		case lexer.KindHeredocBody:
			h.Body = ast.SpannedString{Span: child.Span, Content: child.Text}
		case lexer.KindHeredocTerm:
			if err := m.terminate(child.Span, child.Text); err != nil {
				return ast.Heredoc{}, err
			}
			h.Terminator = ast.SpannedString{
				Span:    child.Span,
				Content: strings.TrimSuffix(child.Text, "\n"),
			}
		default:
			return ast.Heredoc{}, unexpected(child)
		}
	}
	return h, nil
}

func unquoteDelimiter(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func unexpected(node *lexer.Node) error {
	return &errors.UnexpectedTokenError{
		Kind:  node.Kind.String(),
		Text:  node.Text,
		Start: node.Span.Start,
		End:   node.Span.End,
	}
}
