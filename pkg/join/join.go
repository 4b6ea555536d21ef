// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package join

import (
	"github.com/go-logr/logr"
	"github.com/hestia-earth/rowmerge/pkg/slice"
	"github.com/hestia-earth/rowmerge/pkg/table"
)

func overlap(sl1, sl2 []string) []string {
	res := []string{}
	for _, s := range sl1 {
		if slice.StringSliceContains(sl2, s) {
			res = append(res, s)
		}
	}
	return res
}

// joinOnce outer-joins right onto left, matching left[refCol] == right[idCol].
// Left rows come out in order, each duplicated per matching right row.
// Unmatched right rows are appended with empty left fields.
func joinOnce(left, right *table.Table, refCol, idCol string) *table.Table {
	li := left.ColumnIndex(refCol)
	ri := right.ColumnIndex(idCol)
	columns := append(append([]string{}, left.Columns...), right.Columns...)
	res := &table.Table{Columns: columns}
	byID := map[string][]int{}
	for j, row := range right.Rows {
		byID[row[ri]] = append(byID[row[ri]], j)
	}
	matched := make([]bool, len(right.Rows))
	emptyRight := make([]string, len(right.Columns))
	for _, row := range left.Rows {
		inds := byID[row[li]]
		if row[li] == "" || len(inds) == 0 {
			res.Rows = append(res.Rows, append(append([]string{}, row...), emptyRight...))
			continue
		}
		for _, j := range inds {
			matched[j] = true
			res.Rows = append(res.Rows, append(append([]string{}, row...), right.Rows[j]...))
		}
	}
	emptyLeft := make([]string, len(left.Columns))
	for j, row := range right.Rows {
		if !matched[j] {
			res.Rows = append(res.Rows, append(append([]string{}, emptyLeft...), row...))
		}
	}
	return res
}

// OuterJoin applies each mapping in turn: rows holding a value in the index
// column are split off and outer-joined back onto the remaining rows via the
// reference column. A mapping whose two sides still share columns after
// dropping all-empty ones cannot be joined safely and is skipped. The result
// keeps t's column order, with dropped all-empty columns restored empty.
func OuterJoin(t *table.Table, mappings []Mapping, logger logr.Logger) *table.Table {
	out := t
	for _, mp := range mappings {
		idx := out.ColumnIndex(mp.ID)
		if idx == -1 {
			continue
		}
		right := &table.Table{Columns: out.Columns}
		left := &table.Table{Columns: out.Columns}
		for _, row := range out.Rows {
			if row[idx] != "" {
				right.Rows = append(right.Rows, row)
			} else {
				left.Rows = append(left.Rows, row)
			}
		}
		// nothing holds a value in the index column, skip joining
		if len(right.Rows) == 0 {
			continue
		}
		right = right.DropColumns(right.EmptyColumns())
		left = left.DropColumns(left.EmptyColumns())
		if cols := overlap(left.Columns, right.Columns); len(cols) > 0 {
			logger.Info("skipping join: overlapping columns", "idColumn", mp.ID, "columns", cols)
			continue
		}
		if left.ColumnIndex(mp.Ref) == -1 {
			logger.Info("skipping join: reference column holds no value", "refColumn", mp.Ref)
			continue
		}
		logger.V(1).Info("joining", "idColumn", mp.ID, "refColumn", mp.Ref)
		out = joinOnce(left, right, mp.Ref, mp.ID)
	}
	return out.SelectColumns(t.Columns)
}

// Transform merges related rows of t: it discovers the id column mappings
// and outer-joins on each. When no mapping is found t is returned unchanged
// and found is false.
func Transform(t *table.Table, logger logr.Logger) (res *table.Table, found bool) {
	mappings := DiscoverMappings(t.Columns)
	if len(mappings) == 0 {
		return t, false
	}
	return OuterJoin(t, mappings, logger), true
}
