// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package utils

import (
	"fmt"
	"strings"
)

type Example struct {
	Comment string
	Line    string
}

func CombineExamples(sl []Example) string {
	sb := &strings.Builder{}
	for i, ex := range sl {
		fmt.Fprintf(sb, "  # %s\n  %s", ex.Comment, ex.Line)
		if i < len(sl)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
