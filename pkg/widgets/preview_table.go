// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

var (
	columnStyle = tcell.StyleDefault.Foreground(tcell.ColorAzure).Bold(true)
	keyStyle    = tcell.StyleDefault.Foreground(tcell.ColorAquaMarine).Background(tcell.ColorBlack)
	cellStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

const maxColumnWidth = 32

// PreviewTable feeds a merged table to tview one cell at a time. Row 0 is
// the header; key columns get their own style.
type PreviewTable struct {
	tview.TableContentReadOnly
	columns []string
	rows    [][]string
	keyCols map[int]struct{}
	widths  []int
}

func NewPreviewTable(columns []string, rows [][]string, keyIndices []int) *PreviewTable {
	keyCols := map[int]struct{}{}
	for _, i := range keyIndices {
		keyCols[i] = struct{}{}
	}
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, row := range rows {
		for i, v := range row {
			if w := runewidth.StringWidth(v); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, w := range widths {
		if w > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return &PreviewTable{
		columns: columns,
		rows:    rows,
		keyCols: keyCols,
		widths:  widths,
	}
}

func (t *PreviewTable) GetCell(row, column int) *tview.TableCell {
	if row == 0 {
		return tview.NewTableCell(t.columns[column]).
			SetStyle(columnStyle).
			SetMaxWidth(t.widths[column]).
			SetSelectable(false)
	}
	cell := tview.NewTableCell(t.rows[row-1][column]).SetMaxWidth(t.widths[column])
	if _, ok := t.keyCols[column]; ok {
		cell.SetStyle(keyStyle)
	} else {
		cell.SetStyle(cellStyle)
	}
	return cell
}

func (t *PreviewTable) GetRowCount() int {
	return len(t.rows) + 1
}

func (t *PreviewTable) GetColumnCount() int {
	return len(t.columns)
}
