package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/modal-labs/dockerfile-parser/ast"
)

// n builds an expected node over src so test trees stay readable.
func n(src string, kind Kind, start, end int, children ...*Node) *Node {
	return &Node{
		Kind:     kind,
		Span:     ast.NewSpan(start, end),
		Text:     src[start:end],
		Children: children,
	}
}

func TestTokenizeCommentAndFrom(t *testing.T) {
	src := "# hi\nFROM alpine\n"
	got := Tokenize(src)
	want := []*Node{
		n(src, KindComment, 0, 4),
		n(src, KindFrom, 5, 16,
			n(src, KindImageName, 10, 16),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeCopyStandard(t *testing.T) {
	src := "COPY a b\n"
	got := Tokenize(src)
	want := []*Node{
		n(src, KindCopy, 0, 8,
			n(src, KindCopyStandard, 5, 8,
				n(src, KindPathSpec, 5, 6),
				n(src, KindPathSpec, 7, 8),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeRunShell(t *testing.T) {
	src := "RUN echo\n"
	got := Tokenize(src)
	want := []*Node{
		n(src, KindRun, 0, 8,
			n(src, KindShell, 4, 8,
				n(src, KindBreakable, 4, 8,
					n(src, KindShellLiteral, 4, 8),
				),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeRunHeredoc(t *testing.T) {
	src := "RUN <<EOF\nhi\nEOF\n"
	got := Tokenize(src)
	term := &Node{
		Kind: KindHeredocTerm,
		Span: ast.NewSpan(13, 16),
		Text: "EOF\n", // newline kept in Text only
	}
	want := []*Node{
		n(src, KindRun, 0, 16,
			n(src, KindShell, 4, 16,
				n(src, KindHeredoc, 4, 16,
					n(src, KindHeredocDelim, 6, 9),
					n(src, KindHeredocBody, 10, 13),
					term,
				),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

// Every child span must nest inside its parent's span, terminator lines
// included.
func TestNodeSpansNestWithinParents(t *testing.T) {
	sources := []string{
		"RUN <<EOF\nhi\nEOF\n",
		"COPY <<A <<B /dst\none\nA\ntwo\nB\n",
		"RUN cat <<EOF >/tmp/out\nhello there\nEOF\n",
		"COPY --from=alpine a b\n",
		"RUN apk add \\\n  # deps\n  curl\n",
	}
	var check func(t *testing.T, parent *Node)
	check = func(t *testing.T, parent *Node) {
		for _, child := range parent.Children {
			if !parent.Span.Contains(child.Span) {
				t.Errorf("%s span %+v escapes %s span %+v",
					child.Kind, child.Span, parent.Kind, parent.Span)
			}
			check(t, child)
		}
	}
	for _, src := range sources {
		for _, node := range Tokenize(src) {
			check(t, node)
		}
	}
}

func TestTokenizeCopyFlagParts(t *testing.T) {
	src := "COPY --chown=app:app a b\n"
	got := Tokenize(src)
	want := []*Node{
		n(src, KindCopy, 0, 24,
			n(src, KindCopyStandard, 5, 24,
				n(src, KindFlag, 5, 20,
					n(src, KindFlagName, 7, 12),
					n(src, KindFlagValue, 13, 20),
				),
				n(src, KindPathSpec, 21, 22),
				n(src, KindPathSpec, 23, 24),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeHeredocOpenerWhitespaceAndQuotes(t *testing.T) {
	src := "RUN <<-  \"EOF\"\nhi\nEOF\n"
	got := Tokenize(src)
	if len(got) != 1 {
		t.Fatalf("got %d nodes, want 1", len(got))
	}
	shell := got[0].Children[0]
	if shell.Kind != KindShell {
		t.Fatalf("first child kind = %s, want shell", shell.Kind)
	}
	heredoc := shell.Children[0]
	if heredoc.Kind != KindHeredoc {
		t.Fatalf("kind = %s, want heredoc", heredoc.Kind)
	}
	delim := heredoc.Children[0]
	if delim.Text != "\"EOF\"" {
		t.Fatalf("delimiter text = %q, want quoted EOF", delim.Text)
	}
	term := heredoc.Children[2]
	if term.Kind != KindHeredocTerm || term.Text != "EOF\n" {
		t.Fatalf("terminator = %s %q, want heredoc_term with trailing newline", term.Kind, term.Text)
	}
	if want := ast.NewSpan(18, 21); term.Span != want {
		t.Fatalf("terminator span = %+v, want %+v", term.Span, want)
	}
}

func TestTokenizeContinuationWithBlankAndCommentLines(t *testing.T) {
	src := "COPY a \\\n\n  # note\n  b\n"
	got := Tokenize(src)
	want := []*Node{
		n(src, KindCopy, 0, 22,
			n(src, KindCopyStandard, 5, 22,
				n(src, KindPathSpec, 5, 6),
				n(src, KindComment, 12, 18),
				n(src, KindPathSpec, 21, 22),
			),
		),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}
