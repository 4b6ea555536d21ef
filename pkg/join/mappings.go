// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package join

import (
	"regexp"
	"strings"
)

// idColPat matches top-level index columns such as "site.id" or
// "cycle.@id" but not "foo.bar.id" or "foo.id.bar".
var idColPat = regexp.MustCompile(`^\w+\.@?id$`)

// Mapping pairs a reference column with the index column it links to. A
// column of the form "foo.bar.id" references the index column "bar.id".
type Mapping struct {
	Ref string
	ID  string
}

// DiscoverMappings finds which columns reference which index columns. When
// an index column could be mapped to multiple references ("foo.bar.id",
// "baz.bar.id"), only the first one in column order is kept: there is no
// satisfactory way to merge rows on many-to-many relationships.
func DiscoverMappings(columns []string) []Mapping {
	indexCols := map[string]struct{}{}
	for _, col := range columns {
		if idColPat.MatchString(strings.TrimSpace(col)) {
			indexCols[col] = struct{}{}
		}
	}
	mappings := []Mapping{}
	for _, col := range columns {
		end := strings.LastIndex(col, ".")
		if end == -1 {
			end = len(col) - 1
			if end < 0 {
				end = 0
			}
		}
		// offset is the position of the second to last "."
		offset := strings.LastIndex(col[:end], ".")
		suffix := col[offset+1:]
		if offset > 0 {
			if _, ok := indexCols[suffix]; ok {
				mappings = append(mappings, Mapping{Ref: col, ID: suffix})
				delete(indexCols, suffix)
			}
		}
	}
	return mappings
}
