// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package table

import (
	"encoding/csv"
	"io"
)

// Writer serializes a header and records, mapping empty values back to the
// NA sentinel when one is set.
type Writer struct {
	cw    *csv.Writer
	na    string
	nCols int
	buf   []string
}

func NewWriter(w io.Writer, columns []string, opts *Options) (*Writer, error) {
	if opts == nil {
		opts = &Options{}
	}
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}
	if err := cw.Write(columns); err != nil {
		return nil, err
	}
	return &Writer{
		cw:    cw,
		na:    opts.NA,
		nCols: len(columns),
		buf:   make([]string, len(columns)),
	}, nil
}

func (w *Writer) Write(row []string) error {
	if len(row) != w.nCols {
		return &FormatError{Want: w.nCols, Got: len(row)}
	}
	if w.na == "" {
		return w.cw.Write(row)
	}
	for i, v := range row {
		if v == "" {
			w.buf[i] = w.na
		} else {
			w.buf[i] = v
		}
	}
	return w.cw.Write(w.buf)
}

func (w *Writer) Flush() error {
	w.cw.Flush()
	return w.cw.Error()
}

// WriteTable writes t in full and flushes.
func WriteTable(w io.Writer, t *Table, opts *Options) error {
	tw, err := NewWriter(w, t.Columns, opts)
	if err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := tw.Write(row); err != nil {
			return err
		}
	}
	return tw.Flush()
}
