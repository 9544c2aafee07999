package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modal-labs/dockerfile-parser/parser"
)

var stagesCmd = &cobra.Command{
	Use:   "stages <dockerfile>",
	Short: "List the build stages of a Dockerfile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc, err := parser.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		for _, stage := range doc.Stages() {
			name := "<unnamed>"
			if stage.Name != nil {
				name = stage.Name.Content
			}
			fmt.Fprintf(out, "%d\t%s\t%s\t%d instructions\n",
				stage.Index, name, stage.Root.ImageParsed, len(stage.Instructions))
		}
		return nil
	},
}
