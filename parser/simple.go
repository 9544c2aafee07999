package parser

import (
	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

func assembleFrom(node *lexer.Node) (*ast.FromInstruction, error) {
	ins := &ast.FromInstruction{Span: node.Span}
	var hasImage bool
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindFlag:
			flag, err := parseCopyFlag(child)
			if err != nil {
				return nil, err
			}
			ins.Flags = append(ins.Flags, flag)
		case lexer.KindImageName:
			ins.Image = parseString(child)
			ins.ImageParsed = ast.ParseImageRef(ins.Image.Content)
			hasImage = true
		case lexer.KindStageAlias:
			alias := parseString(child)
			ins.Alias = &alias
		default:
			return nil, unexpected(child)
		}
	}
	if !hasImage {
		return nil, &errors.GenericParseError{Message: "from requires an image name"}
	}
	return ins, nil
}

func assembleArg(node *lexer.Node) (*ast.ArgInstruction, error) {
	ins := &ast.ArgInstruction{Span: node.Span}
	var hasName bool
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindKey:
			ins.Name = rawString(child)
			hasName = true
		case lexer.KindValue:
			value := parseString(child)
			ins.Value = &value
		default:
			return nil, unexpected(child)
		}
	}
	if !hasName {
		return nil, &errors.GenericParseError{Message: "arg requires a name"}
	}
	return ins, nil
}

// assembleEnv handles both the `ENV K=V K2=V2` form, where each pair arrives
// wrapped, and the legacy `ENV KEY value...` form, where the value node spans
// the rest of the logical line verbatim.
func assembleEnv(node *lexer.Node) (*ast.EnvInstruction, error) {
	ins := &ast.EnvInstruction{Span: node.Span}
	var legacyKey *ast.SpannedString
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindPair:
			key, value, err := parsePair(child)
			if err != nil {
				return nil, err
			}
			ins.Vars = append(ins.Vars, ast.EnvVar{Span: child.Span, Key: key, Value: value})
		case lexer.KindKey:
			k := rawString(child)
			legacyKey = &k
		case lexer.KindValue:
			if legacyKey == nil {
				return nil, unexpected(child)
			}
			ins.Vars = append(ins.Vars, ast.EnvVar{
				Span:  ast.NewSpan(legacyKey.Span.Start, child.Span.End),
				Key:   *legacyKey,
				Value: rawString(child),
			})
			legacyKey = nil
		default:
			return nil, unexpected(child)
		}
	}
	if legacyKey != nil || len(ins.Vars) == 0 {
		return nil, &errors.GenericParseError{Message: "env requires a key/value"}
	}
	return ins, nil
}

func assembleLabel(node *lexer.Node) (*ast.LabelInstruction, error) {
	ins := &ast.LabelInstruction{Span: node.Span}
	var legacyName *ast.SpannedString
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindPair:
			name, value, err := parsePair(child)
			if err != nil {
				return nil, err
			}
			ins.Labels = append(ins.Labels, ast.Label{Span: child.Span, Name: name, Value: value})
		case lexer.KindKey:
			n := rawString(child)
			legacyName = &n
		case lexer.KindValue:
			if legacyName == nil {
				return nil, unexpected(child)
			}
			ins.Labels = append(ins.Labels, ast.Label{
				Span:  ast.NewSpan(legacyName.Span.Start, child.Span.End),
				Name:  *legacyName,
				Value: rawString(child),
			})
			legacyName = nil
		default:
			return nil, unexpected(child)
		}
	}
	if legacyName != nil || len(ins.Labels) == 0 {
		return nil, &errors.GenericParseError{Message: "label requires a key/value"}
	}
	return ins, nil
}

func parsePair(node *lexer.Node) (key, value ast.SpannedString, err error) {
	var hasKey, hasValue bool
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindKey:
			key = parseString(child)
			hasKey = true
		case lexer.KindValue:
			value = parseString(child)
			hasValue = true
		}
	}
	if !hasKey || !hasValue {
		return key, value, unexpected(node)
	}
	return key, value, nil
}

func assembleCmd(node *lexer.Node) (*ast.CmdInstruction, error) {
	expr, err := shellOrExec(node, "missing cmd expression")
	if err != nil {
		return nil, err
	}
	return &ast.CmdInstruction{Span: node.Span, Expr: expr}, nil
}

func assembleEntrypoint(node *lexer.Node) (*ast.EntrypointInstruction, error) {
	expr, err := shellOrExec(node, "missing entrypoint expression")
	if err != nil {
		return nil, err
	}
	return &ast.EntrypointInstruction{Span: node.Span, Expr: expr}, nil
}

// shellOrExec classifies a body with no options and no heredoc support, as
// CMD and ENTRYPOINT have.
func shellOrExec(node *lexer.Node, missing string) (ast.ShellOrExecExpr, error) {
	var expr ast.ShellOrExecExpr
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindExec:
			expr = ast.ExecExpr{Args: parseExecArray(child)}
		case lexer.KindBreakable:
			expr = ast.ShellExpr{Command: parseBreakable(child)}
		default:
			return nil, unexpected(child)
		}
	}
	if expr == nil {
		return nil, &errors.GenericParseError{Message: missing}
	}
	return expr, nil
}

func assembleMisc(node *lexer.Node) (*ast.MiscInstruction, error) {
	ins := &ast.MiscInstruction{Span: node.Span}
	for _, child := range node.Children {
		switch child.Kind {
		case lexer.KindComment:
		case lexer.KindInstructionName:
			ins.Instruction = rawString(child)
		case lexer.KindBreakable:
			ins.Arguments = parseBreakable(child)
		default:
			return nil, unexpected(child)
		}
	}
	return ins, nil
}
