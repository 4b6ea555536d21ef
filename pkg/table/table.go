// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package table

import (
	"fmt"

	"github.com/hestia-earth/rowmerge/pkg/slice"
)

// Table holds an entire delimited file in memory: a header row followed by
// records in input order.
type Table struct {
	Columns []string
	Rows    [][]string
}

// FormatError indicates a record whose field count disagrees with the header.
type FormatError struct {
	Record int
	Want   int
	Got    int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("record %d: expected %d fields, found %d", e.Record, e.Want, e.Got)
}

// ColumnIndex returns the index of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all values of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	i := t.ColumnIndex(name)
	if i == -1 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	vals := make([]string, len(t.Rows))
	for j, row := range t.Rows {
		vals[j] = row[i]
	}
	return vals, nil
}

// EmptyColumns returns names of columns that hold no value in any row.
func (t *Table) EmptyColumns() []string {
	names := []string{}
	for i, c := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if row[i] != "" {
				empty = false
				break
			}
		}
		if empty {
			names = append(names, c)
		}
	}
	return names
}

// DropColumns returns a new table without the named columns. Unknown names
// are ignored.
func (t *Table) DropColumns(names []string) *Table {
	keep := []int{}
	columns := []string{}
	for i, c := range t.Columns {
		if !slice.StringSliceContains(names, c) {
			keep = append(keep, i)
			columns = append(columns, c)
		}
	}
	res := &Table{Columns: columns}
	for _, row := range t.Rows {
		res.Rows = append(res.Rows, slice.IndicesToValues(row, keep))
	}
	return res
}

// SelectColumns returns a new table with exactly the named columns in the
// given order. Columns missing from t come out empty.
func (t *Table) SelectColumns(names []string) *Table {
	inds := make([]int, len(names))
	for i, name := range names {
		inds[i] = t.ColumnIndex(name)
	}
	res := &Table{Columns: append([]string{}, names...)}
	for _, row := range t.Rows {
		vals := make([]string, len(names))
		for i, j := range inds {
			if j != -1 {
				vals[i] = row[j]
			}
		}
		res.Rows = append(res.Rows, vals)
	}
	return res
}
