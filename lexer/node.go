// Package lexer turns raw Dockerfile text into typed, span-tagged node trees,
// one tree per instruction. It performs the character-level grammar work —
// instruction splitting, escaped line breaks, interleaved comment lines,
// quoting, `--key=value` flags, exec-form arrays, and heredoc
// opener/body/terminator capture — and hands the resulting trees to the
// assemblers in the parser package.
//
// The lexer never returns an error: structurally surprising input still
// produces a tree, and the assemblers report it through the closed error
// taxonomy. Each instruction's tree is fully materialized before assembly
// begins, because heredoc matching requires look-ahead across the whole
// instruction.
package lexer

import "github.com/modal-labs/dockerfile-parser/ast"

// Kind identifies the grammar construct a Node represents.
type Kind int

const (
	// KindComment is a comment line, at top level or interleaved between
	// continuation lines. The span excludes the trailing newline.
	KindComment Kind = iota

	// Instruction wrappers, one per family.
	KindFrom
	KindArg
	KindEnv
	KindLabel
	KindCopy
	KindRun
	KindCmd
	KindEntrypoint
	KindMisc

	// KindCopyStandard wraps a plain path-list COPY body; KindCopyHeredoc
	// wraps a COPY body with inline heredoc content.
	KindCopyStandard
	KindCopyHeredoc

	// Flags (`--key=value` on COPY and FROM) and their parts.
	KindFlag
	KindFlagName
	KindFlagValue

	// KindPathSpec is one path argument of a COPY.
	KindPathSpec

	// Options (`--key=value` on RUN) and their parts.
	KindOption
	KindOptionName
	KindOptionValue

	// KindShell wraps a RUN shell-form body; its children are an optional
	// KindBreakable followed by any KindHeredoc nodes.
	KindShell

	// KindExec is an exec-form array; its children are KindString elements.
	KindExec
	KindString

	// KindBreakable wraps a breakable shell expression; its children are
	// KindShellLiteral fragments and KindComment lines in source order.
	KindBreakable
	KindShellLiteral

	// KindHeredoc wraps one captured heredoc block (delimiter, body, and the
	// terminator when one was found). The terminator's span excludes the
	// line's trailing newline but its Text keeps it, so the assemblers can
	// check the terminator line byte-for-byte.
	KindHeredoc
	KindHeredocDelim
	KindHeredocBody
	KindHeredocTerm

	// FROM parts.
	KindImageName
	KindStageAlias

	// Key/value parts for ARG, ENV, and LABEL. ENV and LABEL wrap each
	// binding in a KindPair.
	KindPair
	KindKey
	KindValue

	// KindInstructionName is the keyword of a misc instruction.
	KindInstructionName

	// KindWord is a word the lexer could not classify in its position. The
	// assemblers reject it as an unexpected token.
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindFrom:
		return "from"
	case KindArg:
		return "arg"
	case KindEnv:
		return "env"
	case KindLabel:
		return "label"
	case KindCopy:
		return "copy"
	case KindRun:
		return "run"
	case KindCmd:
		return "cmd"
	case KindEntrypoint:
		return "entrypoint"
	case KindMisc:
		return "misc"
	case KindCopyStandard:
		return "copy_standard"
	case KindCopyHeredoc:
		return "copy_heredoc"
	case KindFlag:
		return "flag"
	case KindFlagName:
		return "flag_name"
	case KindFlagValue:
		return "flag_value"
	case KindPathSpec:
		return "pathspec"
	case KindOption:
		return "option"
	case KindOptionName:
		return "option_name"
	case KindOptionValue:
		return "option_value"
	case KindShell:
		return "shell"
	case KindExec:
		return "exec"
	case KindString:
		return "string"
	case KindBreakable:
		return "breakable"
	case KindShellLiteral:
		return "shell_literal"
	case KindHeredoc:
		return "heredoc"
	case KindHeredocDelim:
		return "heredoc_delim"
	case KindHeredocBody:
		return "heredoc_body"
	case KindHeredocTerm:
		return "heredoc_term"
	case KindImageName:
		return "image_name"
	case KindStageAlias:
		return "stage_alias"
	case KindPair:
		return "pair"
	case KindKey:
		return "key"
	case KindValue:
		return "value"
	case KindInstructionName:
		return "instruction_name"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Node is one typed, span-tagged node of the token tree handed to the
// instruction assemblers: a rule kind, the byte span it covers, the raw source
// text, and its children in source order. Child spans nest inside their
// parent's span. Text is the span's slice of the source, except for heredoc
// terminators, whose Text carries one byte more (the trailing newline).
type Node struct {
	Kind     Kind
	Span     ast.Span
	Text     string
	Children []*Node
}
