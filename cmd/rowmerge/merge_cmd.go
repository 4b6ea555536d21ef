// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/conf"
	"github.com/hestia-earth/rowmerge/pkg/merge"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge INPUT OUTPUT",
		Short: "Merge rows sharing a key into one row per key",
		Long: "Merge groups rows by the key column(s) and combines each group into a single\n" +
			"row. Within a group, a column holding one distinct non-empty value resolves to\n" +
			"that value; contradictory values resolve according to the conflict policy.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "merge rows sharing the same id",
				Line:    "rowmerge merge export.csv merged.csv -k id",
			},
			{
				Comment: "merge with a composite key",
				Line:    "rowmerge merge export.csv merged.csv -k id,date",
			},
			{
				Comment: "join contradictory values instead of failing",
				Line:    "rowmerge merge export.csv merged.csv -k id --policy join",
			},
			{
				Comment: "read from stdin, write to stdout",
				Line:    "cat export.csv | rowmerge merge - - -k id > merged.csv",
			},
			{
				Comment: "gzip-compressed input and output",
				Line:    "rowmerge merge export.csv.gz merged.csv.gz -k id",
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
			p, err := getMergeParams(cmd)
			if err != nil {
				return err
			}
			res, m, err := mergeFile(cmd, p, args[0])
			if err != nil {
				return err
			}
			if err := writeTableFile(args[1], res, p.csvOpts); err != nil {
				return err
			}
			if args[1] != table.Stdio {
				cmd.Printf("Merged %d rows into %d rows\n", m.RowsCount(), m.GroupsCount())
			}
			return nil
		},
	}
	addMergeFlags(cmd)
	return cmd
}

func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("key", "k", nil, "key column(s) identifying rows that belong to the same record")
	cmd.Flags().String("policy", "", `conflict policy, one of "strict", "first", "last" and "join" (defaults to config or "strict")`)
	cmd.Flags().String("join-separator", "", `separator between joined values under the "join" policy (defaults to config or ";")`)
	cmd.Flags().StringSlice("ignore-columns", nil, "glob patterns of columns whose conflicts resolve to the first non-empty value")
	cmd.Flags().String("delimiter", "", "CSV delimiter. Defaults to comma.")
	cmd.Flags().String("na", "", `value that reads as empty and that empty values serialize to (defaults to config or "-")`)
	utils.SetupProgressBarFlags(cmd.Flags())
}

type mergeParams struct {
	keys    []string
	opts    []merge.MergerOption
	csvOpts *table.Options
}

// getMergeParams resolves merge settings: a flag that was set wins over the
// config file, which wins over defaults.
func getMergeParams(cmd *cobra.Command) (*mergeParams, error) {
	c, err := utils.GetConfig()
	if err != nil {
		return nil, err
	}
	keys, err := cmd.Flags().GetStringSlice("key")
	if err != nil {
		return nil, err
	}
	p := &mergeParams{keys: keys}

	policy := c.Merge.Policy
	if cmd.Flags().Changed("policy") {
		if policy, err = cmd.Flags().GetString("policy"); err != nil {
			return nil, err
		}
	}
	pol, err := merge.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}
	p.opts = append(p.opts, merge.WithPolicy(pol))

	sep := c.Merge.JoinSeparator
	if cmd.Flags().Changed("join-separator") {
		if sep, err = cmd.Flags().GetString("join-separator"); err != nil {
			return nil, err
		}
	}
	p.opts = append(p.opts, merge.WithJoinSeparator(sep))

	ignore := c.Merge.IgnoreColumns
	if cmd.Flags().Changed("ignore-columns") {
		if ignore, err = cmd.Flags().GetStringSlice("ignore-columns"); err != nil {
			return nil, err
		}
	}
	if len(ignore) > 0 {
		p.opts = append(p.opts, merge.WithIgnoredColumns(ignore...))
	}

	p.csvOpts, err = getCSVOptions(cmd, c)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func getCSVOptions(cmd *cobra.Command, c *conf.Config) (*table.Options, error) {
	delim, err := utils.GetRuneFromFlag(cmd, "delimiter")
	if err != nil {
		return nil, err
	}
	if delim == 0 && c.CSV.Delimiter != "" {
		delim = []rune(c.CSV.Delimiter)[0]
	}
	na := ""
	if c.CSV.NA != nil {
		na = *c.CSV.NA
	}
	if cmd.Flags().Changed("na") {
		if na, err = cmd.Flags().GetString("na"); err != nil {
			return nil, err
		}
	}
	return &table.Options{Delimiter: delim, NA: na}, nil
}

// mergeFile reads the input and resolves all groups. On an unresolved
// conflict it prints a colored breakdown before failing.
func mergeFile(cmd *cobra.Command, p *mergeParams, inPath string) (*table.Table, *merge.Merger, error) {
	in, err := table.OpenInput(inPath)
	if err != nil {
		return nil, nil, err
	}
	defer in.Close()
	r, err := table.NewReader(in, p.csvOpts)
	if err != nil {
		return nil, nil, err
	}
	m, err := merge.NewMerger(r.Columns(), p.keys, p.opts...)
	if err != nil {
		return nil, nil, err
	}
	container, err := utils.GetProgressBarContainer(cmd)
	if err != nil {
		return nil, nil, err
	}
	bar := container.NewBar(0, "reading rows")
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			bar.Abort()
			container.Wait()
			return nil, nil, err
		}
		if err := m.AddRow(row); err != nil {
			bar.Abort()
			container.Wait()
			return nil, nil, err
		}
		bar.Incr()
	}
	bar.Done()
	container.Wait()
	res, err := m.Merge()
	if err != nil {
		var ce *merge.ConflictError
		if errors.As(err, &ce) {
			printConflict(cmd.ErrOrStderr(), ce)
			return nil, nil, fmt.Errorf("merge aborted, rerun with --policy to pick a resolution")
		}
		return nil, nil, err
	}
	return res, m, nil
}

func printConflict(w io.Writer, ce *merge.ConflictError) {
	fmt.Fprintf(w, "%s column %s holds contradictory values for key %s:\n",
		color.RedString("conflict:"),
		color.HiWhiteString("%q", ce.Column),
		color.YellowString("%q", strings.Join(ce.Key, ",")),
	)
	for _, v := range ce.Values {
		fmt.Fprintf(w, "  - %q\n", v)
	}
}

func writeTableFile(path string, t *table.Table, opts *table.Options) error {
	out, err := table.CreateOutput(path)
	if err != nil {
		return err
	}
	if err := table.WriteTable(out, t, opts); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
