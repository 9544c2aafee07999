package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dfparse",
	Short:         "Parse and inspect Dockerfiles",
	Long:          "dfparse parses Dockerfiles into span-preserving instruction trees and exposes them for inspection, validation, and tooling.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(watchCmd)
}
