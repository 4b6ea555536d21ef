// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch INPUT OUTPUT",
		Short: "Merge once, then re-merge whenever the input file changes",
		Long:  "Watch runs the merge and keeps running, re-merging INPUT into OUTPUT on every change until interrupted. A failing re-merge is reported and watching continues.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "keep merged.csv in sync with export.csv",
				Line:    "rowmerge watch export.csv merged.csv -k id",
			},
		}),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			logger := utils.GetLogger(cmd)
			inPath, outPath := args[0], args[1]
			if inPath == table.Stdio || outPath == table.Stdio {
				return fmt.Errorf("watch requires file paths, not stdin/stdout")
			}
			p, err := getMergeParams(cmd)
			if err != nil {
				return err
			}
			run := func() error {
				res, m, err := mergeFile(cmd, p, inPath)
				if err != nil {
					return err
				}
				if err := writeTableFile(outPath, res, p.csvOpts); err != nil {
					return err
				}
				cmd.Printf("Merged %d rows into %d rows\n", m.RowsCount(), m.GroupsCount())
				return nil
			}
			if err := run(); err != nil {
				return err
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// watch the directory: editors often replace the file on save
			if err := watcher.Add(filepath.Dir(inPath)); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(inPath) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					logger.V(1).Info("input changed", "event", event.Op.String())
					if err := run(); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "merge failed: %s\n", err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					return err
				}
			}
		},
	}
	addMergeFlags(cmd)
	return cmd
}
