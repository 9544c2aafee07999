package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
)

func sp(start, end int) ast.Span {
	return ast.NewSpan(start, end)
}

func sstr(start, end int, content string) ast.SpannedString {
	return ast.SpannedString{Span: sp(start, end), Content: content}
}

func parseCopy(t *testing.T, src string) *ast.CopyInstruction {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	if len(doc.Instructions) != 1 {
		t.Fatalf("Parse(%q): got %d instructions, want 1", src, len(doc.Instructions))
	}
	ins, err := ast.AsCopy(doc.Instructions[0])
	if err != nil {
		t.Fatalf("AsCopy: %v", err)
	}
	return ins
}

func TestCopyBasic(t *testing.T) {
	got := parseCopy(t, "COPY foo.txt /app/\n")
	want := &ast.CopyInstruction{
		Span: sp(0, 18),
		Sources: []ast.Source{
			ast.FileName{Name: sstr(5, 12, "foo.txt")},
		},
		Destination: sstr(13, 18, "/app/"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyMultipleSources(t *testing.T) {
	got := parseCopy(t, "COPY a b c /dst\n")
	want := &ast.CopyInstruction{
		Span: sp(0, 15),
		Sources: []ast.Source{
			ast.FileName{Name: sstr(5, 6, "a")},
			ast.FileName{Name: sstr(7, 8, "b")},
			ast.FileName{Name: sstr(9, 10, "c")},
		},
		Destination: sstr(11, 15, "/dst"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyQuotedPath(t *testing.T) {
	got := parseCopy(t, "COPY \"my file\" /dest\n")
	want := &ast.CopyInstruction{
		Span: sp(0, 20),
		Sources: []ast.Source{
			ast.FileName{Name: sstr(5, 14, "my file")},
		},
		Destination: sstr(15, 20, "/dest"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyFromFlag(t *testing.T) {
	got := parseCopy(t, "COPY --from=alpine:3.10 /lib.so /tmp/\n")
	want := &ast.CopyInstruction{
		Span: sp(0, 37),
		Flags: []ast.CopyFlag{
			{
				Span:  sp(5, 23),
				Name:  sstr(7, 11, "from"),
				Value: sstr(12, 23, "alpine:3.10"),
			},
		},
		Sources: []ast.Source{
			ast.FileName{Name: sstr(24, 31, "/lib.so")},
		},
		Destination: sstr(32, 37, "/tmp/"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyFlagsAndInterleavedComments(t *testing.T) {
	src := "COPY \\\n" +
		"  --from=alpine \\\n" +
		"  # lint\n" +
		"  /app/file.json \\\n" +
		"  # keep\n" +
		"  /dest/\n"
	got := parseCopy(t, src)
	want := &ast.CopyInstruction{
		Span: sp(0, 70),
		Flags: []ast.CopyFlag{
			{
				Span:  sp(9, 22),
				Name:  sstr(11, 15, "from"),
				Value: sstr(16, 22, "alpine"),
			},
		},
		Sources: []ast.Source{
			ast.FileName{Name: sstr(36, 50, "/app/file.json")},
		},
		Destination: sstr(64, 70, "/dest/"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredoc(t *testing.T) {
	src := "COPY <<EOF /greeting\nhello\nworld\nEOF\n"
	got := parseCopy(t, src)
	want := &ast.CopyInstruction{
		Span: sp(0, 36),
		Sources: []ast.Source{
			ast.FileContents{Contents: sstr(21, 33, "hello\nworld\n")},
		},
		Destination: sstr(11, 20, "/greeting"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredocMultiple(t *testing.T) {
	src := "COPY <<FILE1 <<FILE2 /dest\nfirst\nFILE1\nsecond\nFILE2\n"
	got := parseCopy(t, src)
	want := &ast.CopyInstruction{
		Span: sp(0, 51),
		Sources: []ast.Source{
			ast.FileContents{Contents: sstr(27, 33, "first\n")},
			ast.FileContents{Contents: sstr(39, 46, "second\n")},
		},
		Destination: sstr(21, 26, "/dest"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredocEmptyBody(t *testing.T) {
	src := "COPY <<EOF /empty\nEOF\n"
	got := parseCopy(t, src)
	want := &ast.CopyInstruction{
		Span: sp(0, 21),
		Sources: []ast.Source{
			ast.FileContents{Contents: sstr(18, 18, "")},
		},
		Destination: sstr(11, 17, "/empty"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("copy mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTooFewPaths(t *testing.T) {
	for _, src := range []string{"COPY\n", "COPY /only\n"} {
		_, err := Parse(src)
		want := &errors.GenericParseError{Message: "copy requires at least one source and a destination"}
		if diff := cmp.Diff(want, err); diff != "" {
			t.Fatalf("Parse(%q) error mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestCopyFlagWithoutValue(t *testing.T) {
	_, err := Parse("COPY --chown /a /b\n")
	want := &errors.GenericParseError{Message: "copy flags require a key/value"}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredocRejectsComments(t *testing.T) {
	src := "COPY <<EOF \\\n  # nope\n  /dest\nhi\nEOF\n"
	_, err := Parse(src)
	want := &errors.UnexpectedTokenError{
		Kind:  "comment",
		Text:  "# nope",
		Start: 15,
		End:   21,
	}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredocReversedTerminators(t *testing.T) {
	src := "COPY <<A <<B /dst\none\nB\ntwo\nA\n"
	_, err := Parse(src)
	want := &errors.HeredocTerminatorMismatchError{
		Delimiter:  "A",
		Terminator: "B",
		Start:      22,
		End:        23,
	}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyHeredocUnterminated(t *testing.T) {
	src := "COPY <<EOF /dest\nhello\n"
	_, err := Parse(src)
	want := &errors.UnmatchedHeredocDelimiterError{
		Delimiters: []string{"EOF"},
		Start:      7,
		End:        10,
	}
	if diff := cmp.Diff(want, err); diff != "" {
		t.Fatalf("error mismatch (-want +got):\n%s", diff)
	}
}
