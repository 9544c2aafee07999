package parser

import (
	"strings"

	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

// decodeWord resolves the quoting and escapes of one word into its effective
// text. Double quotes honor backslash escapes, single quotes are literal
// throughout, and an unquoted backslash escapes the character after it.
func decodeWord(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			i++
			for i < len(s) && s[i] != '\'' {
				sb.WriteByte(s[i])
				i++
			}
		case '"':
			i++
			for i < len(s) && s[i] != '"' {
				if s[i] == '\\' && i+1 < len(s) {
					i++
					sb.WriteByte(decodeEscape(s[i]))
				} else {
					sb.WriteByte(s[i])
				}
				i++
			}
		case '\\':
			if i+1 < len(s) {
				i++
				sb.WriteByte(s[i])
			}
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func decodeEscape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

// parseString turns a word node into a spanned string with its effective
// text.
func parseString(node *lexer.Node) ast.SpannedString {
	return ast.SpannedString{Span: node.Span, Content: decodeWord(node.Text)}
}

// rawString turns a node into a spanned string carrying its text verbatim.
func rawString(node *lexer.Node) ast.SpannedString {
	return ast.SpannedString{Span: node.Span, Content: node.Text}
}

// parseExecString decodes one double-quoted exec-form array element.
func parseExecString(node *lexer.Node) ast.SpannedString {
	s := node.Text
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 1; i < len(s)-1; i++ {
		if s[i] == '\\' && i+1 < len(s)-1 {
			i++
			sb.WriteByte(decodeEscape(s[i]))
			continue
		}
		sb.WriteByte(s[i])
	}
	return ast.SpannedString{Span: node.Span, Content: sb.String()}
}

// parseExecArray assembles an exec-form array node.
func parseExecArray(node *lexer.Node) ast.StringArray {
	arr := ast.StringArray{Span: node.Span}
	for _, child := range node.Children {
		arr.Elements = append(arr.Elements, parseExecString(child))
	}
	return arr
}

// parseBreakable assembles a breakable shell expression from its literal and
// comment fragments.
func parseBreakable(node *lexer.Node) ast.BreakableString {
	b := ast.NewBreakableString(node.Span)
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
			b = b.AddComment(child.Span, child.Text)
		default:
			b = b.AddString(child.Span, child.Text)
		}
	}
	return b
}
