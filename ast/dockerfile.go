package ast

// Dockerfile is a fully parsed file: every instruction in source order, plus
// the ARG instructions that appeared before the first FROM (these are global
// to the file and belong to no build stage).
type Dockerfile struct {
	Instructions []Instruction
	GlobalArgs   []*ArgInstruction
}

// Stage is one build stage: the run of instructions rooted at a FROM, up to
// but excluding the next FROM. Name is nil for unnamed stages.
type Stage struct {
	Index        int
	Name         *SpannedString
	Root         *FromInstruction
	Instructions []Instruction
}

// Stages groups the file's instructions into build stages. Instructions
// before the first FROM (global ARGs, leading comments' neighbors) belong to
// no stage and are not returned.
func (d *Dockerfile) Stages() []Stage {
	var stages []Stage
	for _, ins := range d.Instructions {
		if from, ok := ins.(*FromInstruction); ok {
			stages = append(stages, Stage{
				Index: len(stages),
				Name:  from.Alias,
				Root:  from,
			})
		}
		if len(stages) == 0 {
			continue
		}
		last := &stages[len(stages)-1]
		last.Instructions = append(last.Instructions, ins)
	}
	return stages
}

// StageByName returns the stage whose FROM carries the alias name.
func (d *Dockerfile) StageByName(name string) (Stage, bool) {
	for _, stage := range d.Stages() {
		if stage.Name != nil && stage.Name.Content == name {
			return stage, true
		}
	}
	return Stage{}, false
}

// StageByIndex returns the stage at the zero-based index.
func (d *Dockerfile) StageByIndex(index int) (Stage, bool) {
	stages := d.Stages()
	if index < 0 || index >= len(stages) {
		return Stage{}, false
	}
	return stages[index], true
}
