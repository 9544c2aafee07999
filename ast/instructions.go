package ast

// ArgInstruction is a parsed ARG instruction. Value is nil when the argument
// declares no default.
type ArgInstruction struct {
	Span  Span
	Name  SpannedString
	Value *SpannedString
}

func (i *ArgInstruction) Extent() Span     { return i.Span }
func (i *ArgInstruction) instructionNode() {}

// EnvVar is one key/value binding of an ENV instruction.
type EnvVar struct {
	Span  Span
	Key   SpannedString
	Value SpannedString
}

// EnvInstruction is a parsed ENV instruction. Both the `ENV K=V K2=V2` form
// and the legacy `ENV KEY value...` form produce the same record shape.
type EnvInstruction struct {
	Span Span
	Vars []EnvVar
}

func (i *EnvInstruction) Extent() Span     { return i.Span }
func (i *EnvInstruction) instructionNode() {}

// Label is one name/value binding of a LABEL instruction.
type Label struct {
	Span  Span
	Name  SpannedString
	Value SpannedString
}

// LabelInstruction is a parsed LABEL instruction.
type LabelInstruction struct {
	Span   Span
	Labels []Label
}

func (i *LabelInstruction) Extent() Span     { return i.Span }
func (i *LabelInstruction) instructionNode() {}

// CmdInstruction is a parsed CMD instruction: shell or exec form, no options,
// no heredoc.
type CmdInstruction struct {
	Span Span
	Expr ShellOrExecExpr
}

func (i *CmdInstruction) Extent() Span     { return i.Span }
func (i *CmdInstruction) instructionNode() {}

// EntrypointInstruction is a parsed ENTRYPOINT instruction: shell or exec
// form, no options, no heredoc.
type EntrypointInstruction struct {
	Span Span
	Expr ShellOrExecExpr
}

func (i *EntrypointInstruction) Extent() Span     { return i.Span }
func (i *EntrypointInstruction) instructionNode() {}

// MiscInstruction is any instruction without a dedicated record shape
// (WORKDIR, EXPOSE, VOLUME, ...). The parser is deliberately lenient about
// instruction words it does not know; the arguments keep full span fidelity
// through the breakable-string representation.
type MiscInstruction struct {
	Span        Span
	Instruction SpannedString
	Arguments   BreakableString
}

func (i *MiscInstruction) Extent() Span     { return i.Span }
func (i *MiscInstruction) instructionNode() {}
