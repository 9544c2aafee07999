package ast

import "testing"

func stageFixture() *Dockerfile {
	buildName := SpannedString{Span: NewSpan(20, 25), Content: "build"}
	globalArg := &ArgInstruction{Span: NewSpan(0, 10), Name: SpannedString{Content: "BASE"}}
	return &Dockerfile{
		Instructions: []Instruction{
			globalArg,
			&FromInstruction{Span: NewSpan(12, 25), Index: 0, Alias: &buildName},
			&RunInstruction{Span: NewSpan(26, 34)},
			&FromInstruction{Span: NewSpan(36, 48), Index: 1},
			&CopyInstruction{Span: NewSpan(49, 62)},
		},
		GlobalArgs: []*ArgInstruction{globalArg},
	}
}

func TestStagesGrouping(t *testing.T) {
	stages := stageFixture().Stages()
	if len(stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(stages))
	}
	if stages[0].Name == nil || stages[0].Name.Content != "build" {
		t.Fatalf("stage 0 name = %v", stages[0].Name)
	}
	// the FROM belongs to its own stage
	if len(stages[0].Instructions) != 2 {
		t.Fatalf("stage 0 has %d instructions, want 2", len(stages[0].Instructions))
	}
	if len(stages[1].Instructions) != 2 {
		t.Fatalf("stage 1 has %d instructions, want 2", len(stages[1].Instructions))
	}
}

func TestStagesExcludeGlobalPrefix(t *testing.T) {
	stages := stageFixture().Stages()
	for _, stage := range stages {
		for _, ins := range stage.Instructions {
			if _, ok := ins.(*ArgInstruction); ok {
				t.Fatal("global ARG leaked into a stage")
			}
		}
	}
}

func TestStagesEmptyFile(t *testing.T) {
	doc := &Dockerfile{}
	if got := doc.Stages(); len(got) != 0 {
		t.Fatalf("Stages() on empty file = %d entries", len(got))
	}
}
