// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuplicatedString(t *testing.T) {
	assert.Equal(t, "", DuplicatedString([]string{"a", "b", "c"}))
	assert.Equal(t, "b", DuplicatedString([]string{"a", "b", "c", "b"}))
}

func TestColumnIndices(t *testing.T) {
	columns := []string{"id", "name", "area", "country.id"}
	inds, err := ColumnIndices(columns, []string{"id", "country.id"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, inds)

	_, err = ColumnIndices(columns, []string{"date"})
	assert.Error(t, err)
}

func TestIndicesToValues(t *testing.T) {
	assert.Equal(t, []string{"c", "a"}, IndicesToValues([]string{"a", "b", "c"}, []int{2, 0}))
}

func TestStringSliceContains(t *testing.T) {
	assert.True(t, StringSliceContains([]string{"a", "b"}, "b"))
	assert.False(t, StringSliceContains([]string{"a", "b"}, "c"))
}
