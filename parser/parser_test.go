package parser

import (
	"strings"
	"testing"

	"github.com/modal-labs/dockerfile-parser/ast"
)

const multiStageSource = `ARG BASE=alpine

FROM ${BASE} AS build
RUN make

FROM scratch
COPY bin /bin
CMD ["/bin/app"]
`

func TestParseMultiStage(t *testing.T) {
	doc, err := Parse(multiStageSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Instructions) != 7 {
		t.Fatalf("got %d instructions, want 7", len(doc.Instructions))
	}

	if len(doc.GlobalArgs) != 1 || doc.GlobalArgs[0].Name.Content != "BASE" {
		t.Fatalf("global args = %+v, want one named BASE", doc.GlobalArgs)
	}

	stages := doc.Stages()
	if len(stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(stages))
	}
	if stages[0].Name == nil || stages[0].Name.Content != "build" {
		t.Fatalf("stage 0 name = %v, want build", stages[0].Name)
	}
	if len(stages[0].Instructions) != 2 {
		t.Fatalf("stage 0 has %d instructions, want 2", len(stages[0].Instructions))
	}
	if stages[1].Name != nil {
		t.Fatalf("stage 1 name = %v, want unnamed", stages[1].Name)
	}
	if len(stages[1].Instructions) != 3 {
		t.Fatalf("stage 1 has %d instructions, want 3", len(stages[1].Instructions))
	}
	if stages[0].Root.Index != 0 || stages[1].Root.Index != 1 {
		t.Fatalf("stage indices = %d, %d; want 0, 1", stages[0].Root.Index, stages[1].Root.Index)
	}
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(multiStageSource))
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if len(doc.Instructions) != 7 {
		t.Fatalf("got %d instructions, want 7", len(doc.Instructions))
	}
}

func TestParseSkipsTopLevelComments(t *testing.T) {
	doc, err := Parse("# syntax=docker/dockerfile:1\nFROM alpine\n# trailing\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Instructions) != 1 {
		t.Fatalf("got %d instructions, want 1", len(doc.Instructions))
	}
	if _, err := ast.AsFrom(doc.Instructions[0]); err != nil {
		t.Fatalf("AsFrom: %v", err)
	}
}

func TestParseInstructionAfterHeredoc(t *testing.T) {
	src := "RUN <<EOF\nhi\nEOF\nCOPY a b\n"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Instructions) != 2 {
		t.Fatalf("got %d instructions, want 2", len(doc.Instructions))
	}
	cp, err := ast.AsCopy(doc.Instructions[1])
	if err != nil {
		t.Fatalf("AsCopy: %v", err)
	}
	if cp.Destination.Content != "b" {
		t.Fatalf("destination = %q, want b", cp.Destination.Content)
	}
}

func TestParseConsecutiveHeredocsInOneRun(t *testing.T) {
	src := "RUN <<A && <<B\none\nA\ntwo\nB\n"
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	run, err := ast.AsRun(doc.Instructions[0])
	if err != nil {
		t.Fatalf("AsRun: %v", err)
	}
	_, heredoc, ok := run.ShellWithHeredoc()
	if !ok {
		t.Fatal("expected shell-with-heredoc body")
	}
	if heredoc.Delimiter.Content != "A" || heredoc.Body.Content != "one\n" {
		t.Fatalf("first heredoc = %+v, want delimiter A with body %q", heredoc, "one\n")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, src := range []string{"", "\n\n", "   \n\t\n"} {
		doc, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		if len(doc.Instructions) != 0 {
			t.Fatalf("Parse(%q): got %d instructions, want 0", src, len(doc.Instructions))
		}
	}
}

func TestParseFailsFast(t *testing.T) {
	_, err := Parse("FROM alpine\nCOPY /only\nRUN echo never-assembled\n")
	if err == nil {
		t.Fatal("expected error from malformed COPY")
	}
	if err.Error() != "copy requires at least one source and a destination" {
		t.Fatalf("error = %q", err.Error())
	}
}

func TestStageLookups(t *testing.T) {
	doc, err := Parse(multiStageSource)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if stage, ok := doc.StageByName("build"); !ok || stage.Index != 0 {
		t.Fatalf("StageByName(build) = %+v, %v", stage, ok)
	}
	if _, ok := doc.StageByName("missing"); ok {
		t.Fatal("StageByName(missing) matched")
	}
	if stage, ok := doc.StageByIndex(1); !ok || stage.Name != nil {
		t.Fatalf("StageByIndex(1) = %+v, %v", stage, ok)
	}
	if _, ok := doc.StageByIndex(5); ok {
		t.Fatal("StageByIndex(5) matched")
	}
}
