// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"fmt"
	"path/filepath"

	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/hestia-earth/rowmerge/pkg/widgets"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview INPUT",
		Short: "Show the merged result in an interactive table",
		Long:  "Preview runs the merge in memory and shows the result in an interactive table without writing any file. To produce a CSV file, use \"rowmerge merge\" instead.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "preview the merge of export.csv by id",
				Line:    "rowmerge preview export.csv -k id",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := utils.SetupLogger(cmd)
			if err != nil {
				return err
			}
			if cleanup != nil {
				defer cleanup()
			}
			if args[0] == table.Stdio {
				return fmt.Errorf("preview cannot read from stdin, pass a file path")
			}
			p, err := getMergeParams(cmd)
			if err != nil {
				return err
			}
			res, m, err := mergeFile(cmd, p, args[0])
			if err != nil {
				return err
			}
			content := widgets.NewPreviewTable(res.Columns, res.Rows, m.KeyIndices())
			return widgets.PreviewApp(filepath.Base(args[0]), content, len(p.keys)).Run()
		},
	}
	addMergeFlags(cmd)
	return cmd
}
