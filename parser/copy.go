package parser

import (
	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

// assembleCopy builds a COPY record from its token tree. The standard form
// takes path sources and tolerates interleaved comment lines; the heredoc
// form takes inline file contents and rejects anything it does not expect.
func assembleCopy(node *lexer.Node) (*ast.CopyInstruction, error) {
	if len(node.Children) != 1 {
		return nil, &errors.GenericParseError{Message: "copy requires at least one source and a destination"}
	}
	body := node.Children[0]
	switch body.Kind {
	case lexer.KindCopyStandard:
		return assembleCopyStandard(node.Span, body)
	case lexer.KindCopyHeredoc:
		return assembleCopyHeredoc(node.Span, body)
	default:
		return nil, unexpected(body)
	}
}

func assembleCopyStandard(span ast.Span, body *lexer.Node) (*ast.CopyInstruction, error) {
	ins := &ast.CopyInstruction{Span: span}
	var paths []ast.SpannedString
	for _, child := range body.Children {
		switch child.Kind {
		case lexer.KindFlag:
			flag, err := parseCopyFlag(child)
			if err != nil {
				return nil, err
			}
			ins.Flags = append(ins.Flags, flag)
		case lexer.KindPathSpec:
			paths = append(paths, parseString(child))
		case lexer.KindComment:
			// comment lines between continuations carry no paths
		default:
			return nil, unexpected(child)
		}
	}
	if len(paths) < 2 {
		return nil, &errors.GenericParseError{Message: "copy requires at least one source and a destination"}
	}
	for _, p := range paths[:len(paths)-1] {
		ins.Sources = append(ins.Sources, ast.FileName{Name: p})
	}
	ins.Destination = paths[len(paths)-1]
	return ins, nil
}

// assembleCopyHeredoc walks the opener-line children in source order, queues
// each delimiter on the matcher, then pairs the captured bodies back up with
// the openers. Sources keep the openers' order. Comments are not tolerated
// here: the opener line of a heredoc form has no continuation structure for
// them to hide in.
func assembleCopyHeredoc(span ast.Span, body *lexer.Node) (*ast.CopyInstruction, error) {
	ins := &ast.CopyInstruction{Span: span}
	var matcher heredocMatcher
	var destination *ast.SpannedString
	for _, child := range body.Children {
		switch child.Kind {
		case lexer.KindFlag:
			flag, err := parseCopyFlag(child)
			if err != nil {
				return nil, err
			}
			ins.Flags = append(ins.Flags, flag)
		case lexer.KindHeredocDelim:
			matcher.open(ast.SpannedString{
				Span:    child.Span,
				Content: unquoteDelimiter(child.Text),
			})
		case lexer.KindPathSpec:
			dest := parseString(child)
			destination = &dest
		case lexer.KindHeredocBody:
			ins.Sources = append(ins.Sources, ast.FileContents{Contents: rawString(child)})
		case lexer.KindHeredocTerm:
			if err := matcher.terminate(child.Span, child.Text); err != nil {
				return nil, err
			}
		default:
			return nil, unexpected(child)
		}
	}
	if err := matcher.finish(); err != nil {
		return nil, err
	}
	if len(ins.Sources) == 0 || destination == nil {
		return nil, &errors.GenericParseError{Message: "copy requires at least one source and a destination"}
	}
	ins.Destination = *destination
	return ins, nil
}

func parseCopyFlag(node *lexer.Node) (ast.CopyFlag, error) {
	flag := ast.CopyFlag{Span: node.Span}
	var hasName, hasValue bool
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindFlagName:
			flag.Name = rawString(child)
			hasName = true
		case lexer.KindFlagValue:
			flag.Value = parseString(child)
			hasValue = true
		}
	}
	if !hasName || !hasValue {
		return ast.CopyFlag{}, &errors.GenericParseError{Message: "copy flags require a key/value"}
	}
	return flag, nil
}
