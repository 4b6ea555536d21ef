// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Options control how values are read from and written to delimited text.
type Options struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune

	// NA is a sentinel that reads as the empty value and that empty values
	// serialize back to. Empty string disables the mapping.
	NA string
}

// Reader decodes one record at a time. Records whose every field is empty
// are skipped, following the upstream export format which pads short nodes
// with blank lines.
type Reader struct {
	cr      *csv.Reader
	columns []string
	na      string
	record  int
}

func NewReader(r io.Reader, opts *Options) (*Reader, error) {
	if opts == nil {
		opts = &Options{}
	}
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	// field counts are checked against the header instead
	cr.FieldsPerRecord = -1
	columns, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV error: %v", err)
	}
	return &Reader{
		cr:      cr,
		columns: columns,
		na:      opts.NA,
		record:  1,
	}, nil
}

func (r *Reader) Columns() []string {
	return r.columns
}

// Read returns the next non-empty record, or io.EOF. A record with the
// wrong number of fields fails with *FormatError.
func (r *Reader) Read() ([]string, error) {
	for {
		rec, err := r.cr.Read()
		if err != nil {
			return nil, err
		}
		r.record++
		if len(rec) != len(r.columns) {
			return nil, &FormatError{Record: r.record, Want: len(r.columns), Got: len(rec)}
		}
		empty := true
		for i, v := range rec {
			if v == r.na {
				rec[i] = ""
			}
			if rec[i] != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		return rec, nil
	}
}

// ReadTable reads r to the end.
func ReadTable(r io.Reader, opts *Options) (*Table, error) {
	tr, err := NewReader(r, opts)
	if err != nil {
		return nil, err
	}
	t := &Table{Columns: tr.Columns()}
	for {
		rec, err := tr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}
