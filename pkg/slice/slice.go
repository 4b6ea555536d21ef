// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package slice

import (
	"fmt"
)

// DuplicatedString returns the first string that appears more than once in s,
// or the empty string when all elements are distinct.
func DuplicatedString(s []string) string {
	m := map[string]struct{}{}
	for _, k := range s {
		if _, ok := m[k]; ok {
			return k
		}
		m[k] = struct{}{}
	}
	return ""
}

// ColumnIndices resolves each name in names to its index within columns.
func ColumnIndices(columns, names []string) ([]int, error) {
	res := []int{}
	for _, name := range names {
		found := false
		for i, c := range columns {
			if c == name {
				res = append(res, i)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("column %q not found", name)
		}
	}
	return res, nil
}

func IndicesToValues(vals []string, keys []int) []string {
	res := []string{}
	for _, k := range keys {
		res = append(res, vals[k])
	}
	return res
}

func StringSliceContains(sl []string, s string) bool {
	for _, v := range sl {
		if v == s {
			return true
		}
	}
	return false
}
