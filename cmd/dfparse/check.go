package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/modal-labs/dockerfile-parser/ast"
	"github.com/modal-labs/dockerfile-parser/errors"
	"github.com/modal-labs/dockerfile-parser/parser"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	okColor   = color.New(color.FgGreen)
)

var checkCmd = &cobra.Command{
	Use:   "check <dockerfile>...",
	Short: "Parse Dockerfiles and report problems with source positions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false
		for _, path := range args {
			if !checkFile(cmd, path) {
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("check failed")
		}
		return nil
	},
}

func checkFile(cmd *cobra.Command, path string) bool {
	out := cmd.OutOrStdout()
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "%s %s: %v\n", errColor.Sprint("error:"), path, err)
		return false
	}
	src := string(data)

	doc, err := parser.Parse(src)
	if err != nil {
		if start, end, ok := errors.SpanOf(err); ok {
			line, col := lineCol(src, start)
			fmt.Fprintf(out, "%s %s:%d:%d: %v (bytes %d..%d)\n",
				errColor.Sprint("error:"), path, line, col, err, start, end)
		} else {
			fmt.Fprintf(out, "%s %s: %v\n", errColor.Sprint("error:"), path, err)
		}
		return false
	}

	warnings := 0
	for _, ins := range doc.Instructions {
		misc, ok := ins.(*ast.MiscInstruction)
		if !ok || parser.KnownInstruction(misc.Instruction.Content) {
			continue
		}
		warnings++
		line, col := lineCol(src, misc.Instruction.Span.Start)
		msg := fmt.Sprintf("unknown instruction %q", misc.Instruction.Content)
		if suggestion, ok := parser.SuggestInstruction(misc.Instruction.Content); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
		}
		fmt.Fprintf(out, "%s %s:%d:%d: %s\n", warnColor.Sprint("warning:"), path, line, col, msg)
	}

	summary := fmt.Sprintf("%d instructions, %d stages", len(doc.Instructions), len(doc.Stages()))
	if warnings > 0 {
		summary += fmt.Sprintf(", %d warnings", warnings)
	}
	fmt.Fprintf(out, "%s %s: %s\n", okColor.Sprint("ok:"), path, summary)
	return true
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(src string, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line = 1 + strings.Count(src[:offset], "\n")
	col = offset - strings.LastIndexByte(src[:offset], '\n')
	return line, col
}
