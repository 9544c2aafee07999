// dfparse is a command-line front end for the Dockerfile parser: it dumps
// parsed instruction trees, checks files and reports diagnostics with source
// positions, lists build stages, and can watch files for changes.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the CLI and reports the failure on stderr itself: rootCmd
// silences cobra's own error printing so messages are not duplicated.
func run(args []string, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
