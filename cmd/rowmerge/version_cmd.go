// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"github.com/spf13/cobra"
)

// overridden at build time with -ldflags
var version = "0.2.0"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("rowmerge %s\n", version)
			return nil
		},
	}
	return cmd
}
