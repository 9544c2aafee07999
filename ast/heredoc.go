package ast

// Heredoc is a captured inline literal block: `<<DELIM`, zero or more body
// lines, and a terminator line equal to the delimiter. Body holds the raw,
// unprocessed block content between the opener line and the terminator line,
// including a trailing newline unless the block is empty. Span runs from the
// `<<` of the opener to the end of the terminator text, so any opener-line
// tail after the delimiter (`RUN tee <<EOF /file`) is recoverable by slicing
// the original buffer.
type Heredoc struct {
	Span       Span
	Delimiter  SpannedString
	Terminator SpannedString
	Body       SpannedString
}
