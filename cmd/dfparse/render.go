package main

import (
	"github.com/modal-labs/dockerfile-parser/ast"
)

// renderDockerfile flattens a parsed file into plain maps and slices so the
// same value feeds every output encoder.
func renderDockerfile(doc *ast.Dockerfile) map[string]any {
	instructions := make([]map[string]any, 0, len(doc.Instructions))
	for _, ins := range doc.Instructions {
		instructions = append(instructions, renderInstruction(ins))
	}
	globals := make([]map[string]any, 0, len(doc.GlobalArgs))
	for _, arg := range doc.GlobalArgs {
		globals = append(globals, renderInstruction(arg))
	}
	return map[string]any{
		"instructions": instructions,
		"global_args":  globals,
	}
}

func renderInstruction(ins ast.Instruction) map[string]any {
	out := map[string]any{
		"kind": instructionKind(ins),
		"span": renderSpan(ins.Extent()),
	}
	switch v := ins.(type) {
	case *ast.FromInstruction:
		out["image"] = renderString(v.Image)
		out["image_parsed"] = renderImageRef(v.ImageParsed)
		out["index"] = v.Index
		if v.Alias != nil {
			out["alias"] = renderString(*v.Alias)
		}
		if len(v.Flags) > 0 {
			out["flags"] = renderFlags(v.Flags)
		}
	case *ast.ArgInstruction:
		out["name"] = renderString(v.Name)
		if v.Value != nil {
			out["value"] = renderString(*v.Value)
		}
	case *ast.EnvInstruction:
		vars := make([]map[string]any, 0, len(v.Vars))
		for _, ev := range v.Vars {
			vars = append(vars, map[string]any{
				"span":  renderSpan(ev.Span),
				"key":   renderString(ev.Key),
				"value": renderString(ev.Value),
			})
		}
		out["vars"] = vars
	case *ast.LabelInstruction:
		labels := make([]map[string]any, 0, len(v.Labels))
		for _, lb := range v.Labels {
			labels = append(labels, map[string]any{
				"span":  renderSpan(lb.Span),
				"name":  renderString(lb.Name),
				"value": renderString(lb.Value),
			})
		}
		out["labels"] = labels
	case *ast.CopyInstruction:
		if len(v.Flags) > 0 {
			out["flags"] = renderFlags(v.Flags)
		}
		sources := make([]map[string]any, 0, len(v.Sources))
		for _, src := range v.Sources {
			sources = append(sources, renderSource(src))
		}
		out["sources"] = sources
		out["destination"] = renderString(v.Destination)
	case *ast.RunInstruction:
		if len(v.Options) > 0 {
			options := make([]map[string]any, 0, len(v.Options))
			for _, opt := range v.Options {
				options = append(options, map[string]any{
					"span":  renderSpan(opt.Span),
					"name":  renderString(opt.Name),
					"value": renderString(opt.Value),
				})
			}
			out["options"] = options
		}
		out["expr"] = renderExpr(v.Expr)
	case *ast.CmdInstruction:
		out["expr"] = renderExpr(v.Expr)
	case *ast.EntrypointInstruction:
		out["expr"] = renderExpr(v.Expr)
	case *ast.MiscInstruction:
		out["instruction"] = renderString(v.Instruction)
		out["arguments"] = renderBreakable(v.Arguments)
	}
	return out
}

func instructionKind(ins ast.Instruction) string {
	switch ins.(type) {
	case *ast.FromInstruction:
		return "from"
	case *ast.ArgInstruction:
		return "arg"
	case *ast.EnvInstruction:
		return "env"
	case *ast.LabelInstruction:
		return "label"
	case *ast.CopyInstruction:
		return "copy"
	case *ast.RunInstruction:
		return "run"
	case *ast.CmdInstruction:
		return "cmd"
	case *ast.EntrypointInstruction:
		return "entrypoint"
	default:
		return "misc"
	}
}

func renderSpan(s ast.Span) map[string]any {
	return map[string]any{"start": s.Start, "end": s.End}
}

func renderString(s ast.SpannedString) map[string]any {
	return map[string]any{"span": renderSpan(s.Span), "content": s.Content}
}

func renderImageRef(r ast.ImageRef) map[string]any {
	out := map[string]any{"image": r.Image}
	if r.Registry != "" {
		out["registry"] = r.Registry
	}
	if r.Tag != "" {
		out["tag"] = r.Tag
	}
	if r.Hash != "" {
		out["hash"] = r.Hash
	}
	return out
}

func renderFlags(flags []ast.CopyFlag) []map[string]any {
	out := make([]map[string]any, 0, len(flags))
	for _, f := range flags {
		out = append(out, map[string]any{
			"span":  renderSpan(f.Span),
			"name":  renderString(f.Name),
			"value": renderString(f.Value),
		})
	}
	return out
}

func renderSource(src ast.Source) map[string]any {
	switch v := src.(type) {
	case ast.FileName:
		return map[string]any{"file_name": renderString(v.Name)}
	case ast.FileContents:
		return map[string]any{"file_contents": renderString(v.Contents)}
	default:
		return map[string]any{"span": renderSpan(src.SourceSpan())}
	}
}

func renderExpr(expr ast.ShellOrExecExpr) map[string]any {
	switch v := expr.(type) {
	case ast.ExecExpr:
		elems := make([]map[string]any, 0, len(v.Args.Elements))
		for _, e := range v.Args.Elements {
			elems = append(elems, renderString(e))
		}
		return map[string]any{
			"form": "exec",
			"span": renderSpan(v.Args.Span),
			"args": elems,
		}
	case ast.ShellExpr:
		return map[string]any{
			"form":    "shell",
			"command": renderBreakable(v.Command),
		}
	case ast.ShellWithHeredocExpr:
		return map[string]any{
			"form":    "shell_heredoc",
			"command": renderBreakable(v.Command),
			"heredoc": renderHeredoc(v.Heredoc),
		}
	default:
		return map[string]any{"form": "unknown"}
	}
}

func renderBreakable(b ast.BreakableString) map[string]any {
	components := make([]map[string]any, 0, len(b.Components))
	for _, c := range b.Components {
		switch v := c.(type) {
		case ast.SpannedString:
			components = append(components, map[string]any{
				"type":    "string",
				"span":    renderSpan(v.Span),
				"content": v.Content,
			})
		case ast.SpannedComment:
			components = append(components, map[string]any{
				"type":    "comment",
				"span":    renderSpan(v.Span),
				"content": v.Content,
			})
		}
	}
	return map[string]any{
		"span":       renderSpan(b.Span),
		"components": components,
		"effective":  b.String(),
	}
}

func renderHeredoc(h ast.Heredoc) map[string]any {
	return map[string]any{
		"span":       renderSpan(h.Span),
		"delimiter":  renderString(h.Delimiter),
		"terminator": renderString(h.Terminator),
		"body":       renderString(h.Body),
	}
}
