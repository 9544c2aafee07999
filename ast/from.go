package ast

import "strings"

// ImageRef is a parsed image reference: `[registry/]image[:tag][@hash]`.
// Absent fields are empty strings.
type ImageRef struct {
	Registry string
	Image    string
	Tag      string
	Hash     string
}

// ParseImageRef splits an image reference string into its components. The
// first path component is treated as a registry when it contains a dot or a
// colon or equals "localhost", matching how container engines resolve
// references.
func ParseImageRef(s string) ImageRef {
	var ref ImageRef
	rest := s

	if i := strings.IndexByte(rest, '@'); i >= 0 {
		ref.Hash = rest[i+1:]
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		first := rest[:i]
		if first == "localhost" || strings.ContainsAny(first, ".:") {
			ref.Registry = first
			rest = rest[i+1:]
		}
	}

	if i := strings.LastIndexByte(rest, ':'); i >= 0 {
		ref.Tag = rest[i+1:]
		rest = rest[:i]
	}

	ref.Image = rest
	return ref
}

func (r ImageRef) String() string {
	var sb strings.Builder
	if r.Registry != "" {
		sb.WriteString(r.Registry)
		sb.WriteByte('/')
	}
	sb.WriteString(r.Image)
	if r.Tag != "" {
		sb.WriteByte(':')
		sb.WriteString(r.Tag)
	}
	if r.Hash != "" {
		sb.WriteByte('@')
		sb.WriteString(r.Hash)
	}
	return sb.String()
}

// FromInstruction is a parsed FROM instruction, opening a new build stage.
// Index is the zero-based position of the stage within the document, assigned
// by the document driver. Alias is nil when the stage has no `AS name` clause.
type FromInstruction struct {
	Span        Span
	Flags       []CopyFlag
	Image       SpannedString
	ImageParsed ImageRef
	Index       int
	Alias       *SpannedString
}

func (i *FromInstruction) Extent() Span     { return i.Span }
func (i *FromInstruction) instructionNode() {}
