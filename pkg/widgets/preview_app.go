// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// PreviewApp builds the interactive preview: a title bar showing the shape
// of the merged table above a scrollable virtual table. Esc or q quits.
func PreviewApp(title string, content *PreviewTable, keyCount int) *tview.Application {
	app := tview.NewApplication().EnableMouse(true)

	titleBar := tview.NewTextView().SetDynamicColors(true)
	fmt.Fprintf(titleBar, "[yellow]%s[white]  ([teal]%d[white] x [teal]%d[white])",
		title, content.GetRowCount()-1, content.GetColumnCount())

	tv := tview.NewTable().
		SetContent(content).
		SetFixed(1, keyCount).
		SetSelectable(true, false).
		SetBorders(false)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(titleBar, 1, 1, false).
		AddItem(tv, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})
	return app.SetRoot(flex, true).SetFocus(flex)
}
