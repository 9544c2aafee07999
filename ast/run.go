package ast

// RunOption is a single `--key=value` option attached to a RUN instruction,
// for example `RUN --mount=type=cache,target=/root/.cache make`. Original
// retains the verbatim source text so the option can be redisplayed losslessly
// even though Name and Value hold decoded views.
type RunOption struct {
	Span     Span
	Name     SpannedString
	Value    SpannedString
	Original string
}

func (o RunOption) String() string {
	return o.Original
}

// ShellOrExecExpr is the body of a RUN, CMD, or ENTRYPOINT instruction. It is
// a closed set of shapes: exec form, shell form, or shell form followed by a
// heredoc block. Callers match all variants exhaustively; a new shape is a
// deliberate, compile-checked extension point.
type ShellOrExecExpr interface {
	shellOrExec()
}

// ExecExpr is an exec-form body: a fixed-order list of decoded strings.
type ExecExpr struct {
	Args StringArray
}

func (ExecExpr) shellOrExec() {}

// ShellExpr is a shell-form body with no heredoc.
type ShellExpr struct {
	Command BreakableString
}

func (ShellExpr) shellOrExec() {}

// ShellWithHeredocExpr is a shell-form body followed by a heredoc block. For a
// bare heredoc with no leading command text, Command is empty and covers a
// zero-width span at the heredoc's start.
type ShellWithHeredocExpr struct {
	Command BreakableString
	Heredoc Heredoc
}

func (ShellWithHeredocExpr) shellOrExec() {}

// RunInstruction is a parsed RUN instruction: run-time options in source
// order plus the classified body expression.
type RunInstruction struct {
	Span    Span
	Options []RunOption
	Expr    ShellOrExecExpr
}

func (i *RunInstruction) Extent() Span     { return i.Span }
func (i *RunInstruction) instructionNode() {}

// Shell unpacks the body if it is plain shell form.
func (i *RunInstruction) Shell() (BreakableString, bool) {
	if e, ok := i.Expr.(ShellExpr); ok {
		return e.Command, true
	}
	return BreakableString{}, false
}

// Exec unpacks the body if it is exec form.
func (i *RunInstruction) Exec() (StringArray, bool) {
	if e, ok := i.Expr.(ExecExpr); ok {
		return e.Args, true
	}
	return StringArray{}, false
}

// ShellWithHeredoc unpacks the body if it is shell form with a heredoc.
func (i *RunInstruction) ShellWithHeredoc() (BreakableString, Heredoc, bool) {
	if e, ok := i.Expr.(ShellWithHeredocExpr); ok {
		return e.Command, e.Heredoc, true
	}
	return BreakableString{}, Heredoc{}, false
}
