// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/hestia-earth/rowmerge/pkg/testutils"
	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen OUTPUT",
		Short: "Generate a fake CSV export for trying out rowmerge",
		Long:  "Gen writes a CSV of fake records. By default each record is fragmented across several rows sharing the same id, ready to be put back together with \"rowmerge merge\".",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "generate 100 fragmented records then merge them back",
				Line:    "rowmerge gen export.csv --records 100 && rowmerge merge export.csv merged.csv -k id",
			},
			{
				Comment: "generate complete rows instead",
				Line:    "rowmerge gen flat.csv --flat",
			},
		}),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := cmd.Flags().GetInt("records")
			if err != nil {
				return err
			}
			flat, err := cmd.Flags().GetBool("flat")
			if err != nil {
				return err
			}
			seed, err := cmd.Flags().GetInt64("seed")
			if err != nil {
				return err
			}
			gofakeit.Seed(seed)
			var rows [][]string
			if flat {
				rows = testutils.FakeFlatRows(records)
			} else {
				rows = testutils.FakeFragmentedRows(records)
			}
			return writeTableFile(args[0], &table.Table{
				Columns: testutils.FakeColumns,
				Rows:    rows,
			}, nil)
		},
	}
	cmd.Flags().Int("records", 10, "number of records to generate")
	cmd.Flags().Bool("flat", false, "generate one complete row per record instead of fragments")
	cmd.Flags().Int64("seed", 0, "random seed, 0 means non-deterministic")
	return cmd
}
