// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

// GetRuneFromFlag decodes a single-character string flag, 0 when unset.
func GetRuneFromFlag(cmd *cobra.Command, flag string) (rune, error) {
	s, err := cmd.Flags().GetString(flag)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return 0, fmt.Errorf("error reading rune from flag %q: could not decode rune in %q", flag, s)
	}
	return r, nil
}
