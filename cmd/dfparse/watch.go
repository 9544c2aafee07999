package main

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dockerfile>...",
	Short: "Re-check Dockerfiles whenever they change on disk",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		watched := make(map[string]bool, len(args))
		for _, path := range args {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			watched[abs] = true
			// watch the directory: editors replace files on save, which
			// drops a watch on the file itself
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				return err
			}
			checkFile(cmd, abs)
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				abs, err := filepath.Abs(event.Name)
				if err != nil || !watched[abs] {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					checkFile(cmd, abs)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-cmd.Context().Done():
				return nil
			}
		}
	},
}
