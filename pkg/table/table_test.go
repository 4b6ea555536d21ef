// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package table

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	tbl, err := ReadTable(strings.NewReader(strings.Join([]string{
		"id,name,area",
		"1,corn,-",
		",,",
		"2,-,12.5",
	}, "\n")), &Options{NA: "-"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name", "area"}, tbl.Columns)
	assert.Equal(t, [][]string{
		{"1", "corn", ""},
		{"2", "", "12.5"},
	}, tbl.Rows)
}

func TestReadTableFormatError(t *testing.T) {
	_, err := ReadTable(strings.NewReader(strings.Join([]string{
		"id,name",
		"1,corn",
		"2,wheat,extra",
	}, "\n")), nil)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Record)
	assert.Equal(t, 2, fe.Want)
	assert.Equal(t, 3, fe.Got)
}

func TestReaderDelimiter(t *testing.T) {
	r, err := NewReader(strings.NewReader("id|name\n1|corn\n"), &Options{Delimiter: '|'})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, r.Columns())
	rec, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "corn"}, rec)
	_, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestWriteTable(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WriteTable(buf, &Table{
		Columns: []string{"id", "name", "area"},
		Rows: [][]string{
			{"1", "corn", ""},
			{"2", "", "12.5"},
		},
	}, &Options{NA: "-"})
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"id,name,area",
		"1,corn,-",
		"2,-,12.5",
		"",
	}, "\n"), buf.String())
}

func TestWriterRejectsShortRow(t *testing.T) {
	w, err := NewWriter(io.Discard, []string{"a", "b"}, nil)
	require.NoError(t, err)
	err = w.Write([]string{"1"})
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestTableColumnHelpers(t *testing.T) {
	tbl := &Table{
		Columns: []string{"id", "name", "notes"},
		Rows: [][]string{
			{"1", "corn", ""},
			{"2", "wheat", ""},
		},
	}
	vals, err := tbl.Column("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"corn", "wheat"}, vals)
	_, err = tbl.Column("nope")
	assert.Error(t, err)

	assert.Equal(t, []string{"notes"}, tbl.EmptyColumns())

	dropped := tbl.DropColumns([]string{"notes"})
	assert.Equal(t, []string{"id", "name"}, dropped.Columns)
	assert.Equal(t, [][]string{{"1", "corn"}, {"2", "wheat"}}, dropped.Rows)

	sel := dropped.SelectColumns([]string{"id", "name", "notes"})
	assert.Equal(t, []string{"id", "name", "notes"}, sel.Columns)
	assert.Equal(t, [][]string{{"1", "corn", ""}, {"2", "wheat", ""}}, sel.Rows)
}

func TestGzipRoundTrip(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "data.csv.gz")
	w, err := CreateOutput(name)
	require.NoError(t, err)
	require.NoError(t, WriteTable(w, &Table{
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "corn"}},
	}, nil))
	require.NoError(t, w.Close())

	// file on disk must actually be gzip
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, b[:2])

	r, err := OpenInput(name)
	require.NoError(t, err)
	defer r.Close()
	tbl, err := ReadTable(r, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "corn"}}, tbl.Rows)
}
