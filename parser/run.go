package parser

import (
	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

// assembleRun builds a RUN record from its token tree: leading options, then
// an exec-form array or a shell body that may end in a heredoc block. A RUN
// with no body at all is a shape violation distinct from any heredoc problem.
func assembleRun(node *lexer.Node) (*ast.RunInstruction, error) {
	ins := &ast.RunInstruction{Span: node.Span}
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
			// comment lines between the keyword and the body carry nothing
		case lexer.KindOption:
			opt, err := parseRunOption(child)
			if err != nil {
				return nil, err
			}
			ins.Options = append(ins.Options, opt)
		case lexer.KindExec:
			ins.Expr = ast.ExecExpr{Args: parseExecArray(child)}
		case lexer.KindShell:
			expr, err := parseShellBody(child)
			if err != nil {
				return nil, err
			}
			ins.Expr = expr
		default:
			return nil, unexpected(child)
		}
	}
	if ins.Expr == nil {
		return nil, &errors.GenericParseError{Message: "missing run expression"}
	}
	return ins, nil
}

// parseShellBody classifies a shell-form body: plain command text, or command
// text followed by a heredoc. A bare heredoc with no command text gets an
// empty breakable string covering a zero-width span at the heredoc's start,
// so the command accessor stays total.
func parseShellBody(node *lexer.Node) (ast.ShellOrExecExpr, error) {
	var command *ast.BreakableString
	var heredoc *ast.Heredoc
	var matcher heredocMatcher
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindBreakable:
			b := parseBreakable(child)
			command = &b
		case lexer.KindHeredoc:
			h, err := parseHeredoc(child, &matcher)
			if err != nil {
				return nil, err
			}
			if heredoc == nil {
				heredoc = &h
			}
		default:
			return nil, unexpected(child)
		}
	}
	if err := matcher.finish(); err != nil {
		return nil, err
	}
	switch {
	case heredoc == nil && command == nil:
		return nil, &errors.GenericParseError{Message: "missing run expression"}
	case heredoc == nil:
		return ast.ShellExpr{Command: *command}, nil
	default:
		if command == nil {
			empty := ast.NewBreakableString(ast.NewSpan(heredoc.Span.Start, heredoc.Span.Start))
			command = &empty
		}
		return ast.ShellWithHeredocExpr{Command: *command, Heredoc: *heredoc}, nil
	}
}

func parseRunOption(node *lexer.Node) (ast.RunOption, error) {
	opt := ast.RunOption{Span: node.Span, Original: node.Text}
	var hasName, hasValue bool
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindOptionName:
			opt.Name = rawString(child)
			hasName = true
		case lexer.KindOptionValue:
			opt.Value = parseString(child)
			hasValue = true
		}
	}
	if !hasName || !hasValue {
		return ast.RunOption{}, &errors.GenericParseError{Message: "run options require a key/value"}
	}
	return opt, nil
}
