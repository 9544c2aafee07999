package ast

// SpannedString pairs a decoded string value with the raw source extent it was
// decoded from. The span may cover more bytes than the content holds when
// quoting or escapes were resolved during decoding.
type SpannedString struct {
	Span    Span
	Content string
}

// SpannedComment is one comment line captured inside an instruction, without
// its trailing newline.
type SpannedComment struct {
	Span    Span
	Content string
}

// StringArray is an exec-form argument list: an ordered sequence of decoded
// strings plus the span of the whole bracketed array.
type StringArray struct {
	Span     Span
	Elements []SpannedString
}
