// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package testutils

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v6"
)

// FakeColumns are the columns produced by FakeFragmentedRows.
var FakeColumns = []string{"id", "name", "email", "country"}

// FakeFragmentedRows builds merge fixtures: numKeys distinct keys, each
// split across one row per non-key column so that every group merges
// without conflict. Rows of one key are contiguous.
func FakeFragmentedRows(numKeys int) [][]string {
	rows := [][]string{}
	for i := 0; i < numKeys; i++ {
		id := strconv.Itoa(i + 1)
		rows = append(rows,
			[]string{id, gofakeit.Name(), "", ""},
			[]string{id, "", gofakeit.Email(), ""},
			[]string{id, "", "", gofakeit.Country()},
		)
	}
	return rows
}

// FakeFlatRows builds numRows complete rows with distinct keys.
func FakeFlatRows(numRows int) [][]string {
	rows := [][]string{}
	for i := 0; i < numRows; i++ {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			gofakeit.Name(),
			gofakeit.Email(),
			gofakeit.Country(),
		})
	}
	return rows
}
