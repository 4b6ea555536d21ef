// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package merge_test

import (
	"testing"

	"github.com/hestia-earth/rowmerge/pkg/merge"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeRows(t *testing.T, columns []string, rows [][]string, keys []string, opts ...merge.MergerOption) (*table.Table, error) {
	t.Helper()
	return merge.MergeTable(&table.Table{Columns: columns, Rows: rows}, keys, opts...)
}

func TestMergeCombinesNonConflicting(t *testing.T) {
	res, err := mergeRows(t,
		[]string{"id", "a", "b"},
		[][]string{
			{"1", "x", ""},
			{"1", "", "y"},
		},
		[]string{"id"},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "x", "y"},
	}, res.Rows)
}

func TestMergeStrictConflict(t *testing.T) {
	_, err := mergeRows(t,
		[]string{"id", "a"},
		[][]string{
			{"1", "x"},
			{"1", "z"},
		},
		[]string{"id"},
	)
	var ce *merge.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"1"}, ce.Key)
	assert.Equal(t, "a", ce.Column)
	assert.Equal(t, []string{"x", "z"}, ce.Values)
	assert.Equal(t, `conflicting values for column "a" (key "1"): "x", "z"`, ce.Error())
}

func TestMergePolicies(t *testing.T) {
	columns := []string{"id", "a"}
	rows := [][]string{
		{"1", "x"},
		{"1", "z"},
		{"1", "x"},
	}
	for _, c := range []struct {
		policy merge.Policy
		want   string
	}{
		{merge.PolicyFirst, "x"},
		{merge.PolicyLast, "x"},
		{merge.PolicyJoin, "x;z"},
	} {
		t.Run(c.policy.String(), func(t *testing.T) {
			res, err := mergeRows(t, columns, rows, []string{"id"}, merge.WithPolicy(c.policy))
			require.NoError(t, err)
			assert.Equal(t, [][]string{{"1", c.want}}, res.Rows)
		})
	}
}

func TestMergePolicyLastFollowsRowOrder(t *testing.T) {
	// the last non-empty value in input row order wins, even when it is a
	// repeat of an earlier value or followed by empty rows
	res, err := mergeRows(t,
		[]string{"id", "a", "b"},
		[][]string{
			{"1", "x", "m"},
			{"1", "z", ""},
			{"1", "x", ""},
			{"1", "", "n"},
		},
		[]string{"id"},
		merge.WithPolicy(merge.PolicyLast),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "x", "n"}}, res.Rows)
}

func TestMergeJoinSeparator(t *testing.T) {
	res, err := mergeRows(t,
		[]string{"id", "a"},
		[][]string{
			{"1", "x"},
			{"1", "z"},
		},
		[]string{"id"},
		merge.WithPolicy(merge.PolicyJoin),
		merge.WithJoinSeparator(" | "),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "x | z"}}, res.Rows)
}

func TestMergePreservesFirstSeenOrder(t *testing.T) {
	res, err := mergeRows(t,
		[]string{"id", "a"},
		[][]string{
			{"3", "x"},
			{"1", ""},
			{"2", "y"},
			{"1", "z"},
		},
		[]string{"id"},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"3", "x"},
		{"1", "z"},
		{"2", "y"},
	}, res.Rows)
}

func TestMergeCompositeKey(t *testing.T) {
	res, err := mergeRows(t,
		[]string{"id", "date", "a"},
		[][]string{
			{"1", "2021", "x"},
			{"1", "2022", "y"},
			{"1", "2021", ""},
		},
		[]string{"id", "date"},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"1", "2021", "x"},
		{"1", "2022", "y"},
	}, res.Rows)
}

func TestMergeCollapsesDuplicateRows(t *testing.T) {
	// exact duplicates are not conflicts even under strict policy
	res, err := mergeRows(t,
		[]string{"id", "a"},
		[][]string{
			{"1", "x"},
			{"1", "x"},
		},
		[]string{"id"},
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "x"}}, res.Rows)
}

func TestMergeIgnoredColumns(t *testing.T) {
	res, err := mergeRows(t,
		[]string{"id", "a", "meta.updated"},
		[][]string{
			{"1", "x", "2021-01-01"},
			{"1", "", "2022-02-02"},
		},
		[]string{"id"},
		merge.WithIgnoredColumns("meta.*"),
	)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "x", "2021-01-01"}}, res.Rows)
}

func TestMergeIdempotent(t *testing.T) {
	columns := []string{"id", "a", "b"}
	rows := [][]string{
		{"1", "x", ""},
		{"1", "z", "y"},
		{"2", "q", ""},
	}
	first, err := mergeRows(t, columns, rows, []string{"id"}, merge.WithPolicy(merge.PolicyJoin))
	require.NoError(t, err)
	second, err := merge.MergeTable(first, []string{"id"}, merge.WithPolicy(merge.PolicyJoin))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMergeKeyValidation(t *testing.T) {
	columns := []string{"id", "a"}
	_, err := merge.NewMerger(columns, nil)
	assert.Error(t, err)
	_, err = merge.NewMerger(columns, []string{"id", "id"})
	assert.Error(t, err)
	_, err = merge.NewMerger(columns, []string{"nope"})
	assert.Error(t, err)
	_, err = merge.NewMerger(columns, []string{"id"}, merge.WithIgnoredColumns("["))
	assert.Error(t, err)
}

func TestMergerRejectsShortRow(t *testing.T) {
	m, err := merge.NewMerger([]string{"id", "a"}, []string{"id"})
	require.NoError(t, err)
	err = m.AddRow([]string{"1"})
	var fe *table.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestMergerCounts(t *testing.T) {
	m, err := merge.NewMerger([]string{"id", "a"}, []string{"id"})
	require.NoError(t, err)
	for _, row := range [][]string{
		{"1", "x"},
		{"1", ""},
		{"2", "y"},
	} {
		require.NoError(t, m.AddRow(row))
	}
	assert.Equal(t, 3, m.RowsCount())
	assert.Equal(t, 2, m.GroupsCount())
	assert.Equal(t, []int{0}, m.KeyIndices())
}
