package ast

import (
	"github.com/modal-labs/dockerfile-parser/errors"
)

// Instruction is a single parsed Dockerfile instruction. It is a closed sum
// over the instruction-family records in this package; callers narrow a
// generic value with the As* functions, which fail with a ConversionError
// naming both shapes when the runtime shape differs.
type Instruction interface {
	// Extent returns the span of the whole matched instruction.
	Extent() Span

	instructionNode()
}

// ShapeName returns the record shape name used in conversion errors.
func ShapeName(ins Instruction) string {
	switch ins.(type) {
	case *FromInstruction:
		return "FromInstruction"
	case *ArgInstruction:
		return "ArgInstruction"
	case *EnvInstruction:
		return "EnvInstruction"
	case *LabelInstruction:
		return "LabelInstruction"
	case *CopyInstruction:
		return "CopyInstruction"
	case *RunInstruction:
		return "RunInstruction"
	case *CmdInstruction:
		return "CmdInstruction"
	case *EntrypointInstruction:
		return "EntrypointInstruction"
	case *MiscInstruction:
		return "MiscInstruction"
	default:
		return "Instruction"
	}
}

func narrow[T Instruction](ins Instruction, to string) (T, error) {
	if v, ok := ins.(T); ok {
		return v, nil
	}
	var zero T
	return zero, &errors.ConversionError{From: ShapeName(ins), To: to}
}

// AsFrom narrows ins to a FROM record.
func AsFrom(ins Instruction) (*FromInstruction, error) {
	return narrow[*FromInstruction](ins, "FromInstruction")
}

// AsArg narrows ins to an ARG record.
func AsArg(ins Instruction) (*ArgInstruction, error) {
	return narrow[*ArgInstruction](ins, "ArgInstruction")
}

// AsEnv narrows ins to an ENV record.
func AsEnv(ins Instruction) (*EnvInstruction, error) {
	return narrow[*EnvInstruction](ins, "EnvInstruction")
}

// AsLabel narrows ins to a LABEL record.
func AsLabel(ins Instruction) (*LabelInstruction, error) {
	return narrow[*LabelInstruction](ins, "LabelInstruction")
}

// AsCopy narrows ins to a COPY record.
func AsCopy(ins Instruction) (*CopyInstruction, error) {
	return narrow[*CopyInstruction](ins, "CopyInstruction")
}

// AsRun narrows ins to a RUN record.
func AsRun(ins Instruction) (*RunInstruction, error) {
	return narrow[*RunInstruction](ins, "RunInstruction")
}

// AsCmd narrows ins to a CMD record.
func AsCmd(ins Instruction) (*CmdInstruction, error) {
	return narrow[*CmdInstruction](ins, "CmdInstruction")
}

// AsEntrypoint narrows ins to an ENTRYPOINT record.
func AsEntrypoint(ins Instruction) (*EntrypointInstruction, error) {
	return narrow[*EntrypointInstruction](ins, "EntrypointInstruction")
}

// AsMisc narrows ins to a misc record.
func AsMisc(ins Instruction) (*MiscInstruction, error) {
	return narrow[*MiscInstruction](ins, "MiscInstruction")
}
