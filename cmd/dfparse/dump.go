package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modal-labs/dockerfile-parser/parser"
)

var dumpFormat string

var dumpCmd = &cobra.Command{
	Use:   "dump <dockerfile>",
	Short: "Parse a Dockerfile and print its instruction tree",
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

		rendered := renderDockerfile(doc)
		switch dumpFormat {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rendered)
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(rendered)
		case "cbor":
			out, err := cbor.Marshal(rendered)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		default:
			return fmt.Errorf("unsupported format %q (use json, yaml, or cbor)", dumpFormat)
		}
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "json", "output format: json, yaml, or cbor")
}
