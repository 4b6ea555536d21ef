// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"fmt"
	"os"

	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/hestia-earth/rowmerge/pkg/conf"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read or write the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the defaults",
		Long:  "Init writes the default settings to the config file, ready to be edited. The file goes to the path given with --config-file, or .rowmerge.yaml in the working directory.",
		Example: utils.CombineExamples([]utils.Example{
			{
				Comment: "create .rowmerge.yaml in the working directory",
				Line:    "rowmerge config init",
			},
		}),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("config_file")
			if path == "" {
				path = conf.DefaultPath
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %q already exists", path)
			}
			if err := conf.Save(path, conf.Default()); err != nil {
				return err
			}
			cmd.Printf("Created config file %s\n", path)
			return nil
		},
	}
}
