// Package parser assembles lexed Dockerfile token trees into the typed
// records of the ast package. The whole pipeline is synchronous and free of
// side effects: text in, records or a single error value out. Parsing fails
// fast on the first malformed instruction; nothing is logged and nothing is
// retried.
package parser

import (
	"io"

	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/lexer"
)

// Parse parses a complete Dockerfile from source text.
func Parse(src string) (*ast.Dockerfile, error) {
	doc := &ast.Dockerfile{}
	stages := 0
	for _, node := range lexer.Tokenize(src) {
		if node.Kind == lexer.KindComment {
			continue
		}
		ins, err := assemble(node)
		if err != nil {
			return nil, err
		}
		switch v := ins.(type) {
		case *ast.FromInstruction:
			v.Index = stages
			stages++
		case *ast.ArgInstruction:
			if stages == 0 {
				doc.GlobalArgs = append(doc.GlobalArgs, v)
			}
		}
		doc.Instructions = append(doc.Instructions, ins)
	}
	return doc, nil
}

// ParseReader reads r to the end and parses its contents.
func ParseReader(r io.Reader) (*ast.Dockerfile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

func assemble(node *lexer.Node) (ast.Instruction, error) {
	switch node.Kind {
	case lexer.KindFrom:
		return assembleFrom(node)
	case lexer.KindArg:
		return assembleArg(node)
	case lexer.KindEnv:
		return assembleEnv(node)
	case lexer.KindLabel:
		return assembleLabel(node)
	case lexer.KindCopy:
		return assembleCopy(node)
	case lexer.KindRun:
		return assembleRun(node)
	case lexer.KindCmd:
		return assembleCmd(node)
	case lexer.KindEntrypoint:
		return assembleEntrypoint(node)
	case lexer.KindMisc:
		return assembleMisc(node)
	default:
		return nil, unexpected(node)
	}
}
