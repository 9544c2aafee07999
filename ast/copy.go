package ast

// CopyFlag is a single `--key=value` modifier attached to a COPY instruction,
// for example `COPY --from=builder /out /app`.
type CopyFlag struct {
	Span  Span
	Name  SpannedString
	Value SpannedString
}

// Source is one source of a COPY instruction: either a path reference or
// literal heredoc-supplied content, never both. The concrete types are
// FileName and FileContents; callers match both variants exhaustively.
type Source interface {
	// SourceSpan returns the source's raw extent in the original buffer.
	SourceSpan() Span

	copySource()
}

// FileName is a COPY source referring to a path in the build context.
type FileName struct {
	Name SpannedString
}

func (f FileName) SourceSpan() Span { return f.Name.Span }
func (f FileName) copySource()      {}

// FileContents is a COPY source whose content was supplied inline by a
// heredoc block.
type FileContents struct {
	Contents SpannedString
}

func (f FileContents) SourceSpan() Span { return f.Contents.Span }
func (f FileContents) copySource()      {}

// CopyInstruction is a parsed COPY instruction: zero or more flags, at least
// one source, and a destination. Span covers the whole matched instruction,
// not the union of its parts.
type CopyInstruction struct {
	Span        Span
	Flags       []CopyFlag
	Sources     []Source
	Destination SpannedString
}

func (i *CopyInstruction) Extent() Span     { return i.Span }
func (i *CopyInstruction) instructionNode() {}
