package ast

import (
	"testing"
)

func TestNarrowingMatchesShape(t *testing.T) {
	var ins Instruction = &CopyInstruction{Span: NewSpan(0, 10)}

	got, err := AsCopy(ins)
	if err != nil {
		t.Fatalf("AsCopy: %v", err)
	}
	if got.Span != NewSpan(0, 10) {
		t.Fatalf("narrowed span = %+v", got.Span)
	}
}

func TestNarrowingNamesBothShapes(t *testing.T) {
	var ins Instruction = &CopyInstruction{}

	_, err := AsRun(ins)
	if err == nil {
		t.Fatal("AsRun on a copy record succeeded")
	}
	if got, want := err.Error(), "cannot convert CopyInstruction to RunInstruction"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestNarrowingIsTotal(t *testing.T) {
	records := []Instruction{
		&FromInstruction{},
		&ArgInstruction{},
		&EnvInstruction{},
		&LabelInstruction{},
		&CopyInstruction{},
		&RunInstruction{},
		&CmdInstruction{},
		&EntrypointInstruction{},
		&MiscInstruction{},
	}
	for _, ins := range records {
		name := ShapeName(ins)
		if name == "Instruction" {
			t.Errorf("%T has no shape name", ins)
		}
		// every record must either narrow cleanly or fail with a
		// ConversionError, never panic
		if _, err := AsFrom(ins); err == nil {
			if _, ok := ins.(*FromInstruction); !ok {
				t.Errorf("AsFrom(%s) succeeded", name)
			}
		}
	}
}
