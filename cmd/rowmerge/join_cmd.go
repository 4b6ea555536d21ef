// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"fmt"

	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/join"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/spf13/cobra"
)

func newJoinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join INPUT OUTPUT",
		Short: "Merge related rows linked by *.id columns onto the same row",
		Long: "Join discovers mappings between index columns (*.id or *.@id) and the columns\n" +
			"referencing them, then outer-joins the related rows. A column \"foo.bar.id\"\n" +
			"references the index column \"bar.id\"; rows holding a value in \"bar.id\" are\n" +
			"joined onto the rows referencing them.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "merge related data nodes exported on separate rows",
				Line:    "rowmerge join export.csv joined.csv",
			},
			{
				Comment: "read from stdin, write to stdout",
				Line:    "cat export.csv | rowmerge join - -",
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
			c, err := utils.GetConfig()
			if err != nil {
				return err
			}
			csvOpts, err := getCSVOptions(cmd, c)
			if err != nil {
				return err
			}
			in, err := table.OpenInput(args[0])
			if err != nil {
				return err
			}
			tbl, err := table.ReadTable(in, csvOpts)
			if err != nil {
				in.Close()
				return err
			}
			if err := in.Close(); err != nil {
				return err
			}
			res, found := join.Transform(tbl, *logger)
			if !found {
				fmt.Fprintln(cmd.ErrOrStderr(), "Failed to find any join operations which could be performed. "+
					"Maybe you didn't include any index columns (*.id or *.@id) in the data export?")
			}
			return writeTableFile(args[1], res, csvOpts)
		},
	}
	cmd.Flags().String("delimiter", "", "CSV delimiter. Defaults to comma.")
	cmd.Flags().String("na", "", `value that reads as empty and that empty values serialize to (defaults to config or "-")`)
	return cmd
}
