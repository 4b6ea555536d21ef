// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package merge

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a non-key column holds two or more
// distinct non-empty values within one group.
type Policy string

func (p Policy) String() string {
	return string(p)
}

const (
	// PolicyStrict fails the run with a ConflictError.
	PolicyStrict Policy = "strict"

	// PolicyFirst keeps the first non-empty value in row order.
	PolicyFirst Policy = "first"

	// PolicyLast keeps the last non-empty value in row order.
	PolicyLast Policy = "last"

	// PolicyJoin joins distinct values, in first-appearance order, with a
	// separator.
	PolicyJoin Policy = "join"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyStrict, PolicyFirst, PolicyLast, PolicyJoin:
		return p, nil
	}
	return "", fmt.Errorf(`invalid policy %q, valid options are "strict", "first", "last", and "join"`, s)
}

// ConflictError reports contradictory values under PolicyStrict.
type ConflictError struct {
	// Key holds the group's key column values.
	Key []string

	// Column is the name of the conflicting column.
	Column string

	// Values are the distinct non-empty values found, in row order.
	Values []string
}

func (e *ConflictError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("conflicting values for column %q (key %q): %s",
		e.Column, strings.Join(e.Key, ","), strings.Join(quoted, ", "))
}
