// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package main

import (
	"fmt"
	"os"

	"github.com/hestia-earth/rowmerge/cmd/rowmerge"
)

func main() {
	rootCmd := rowmerge.RootCmd()
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
