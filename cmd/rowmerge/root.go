// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package rowmerge

import (
	"os"
	"runtime/pprof"

	"github.com/hestia-earth/rowmerge/cmd/rowmerge/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rowmerge",
		Short: "Merge related rows in CSV files",
		Long: "Rowmerge combines CSV rows that describe the same logical record: rows sharing\n" +
			"a key merge into one row per key, and rows linked through *.id columns join\n" +
			"onto the same row.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cpuprofile, err := cmd.Flags().GetString("cpuprofile")
			if err != nil {
				return err
			}
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return err
				}
				pprof.StartCPUProfile(f)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			pprof.StopCPUProfile()
			heapprofile, err := cmd.Flags().GetString("heapprofile")
			if err != nil {
				return err
			}
			if heapprofile != "" {
				f, err := os.Create(heapprofile)
				if err != nil {
					return err
				}
				defer f.Close()
				err = pprof.WriteHeapProfile(f)
				if err != nil {
					return err
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Usage()
		},
	}
	viper.SetEnvPrefix("rowmerge")
	rootCmd.PersistentFlags().String("config-file", "", "config file path, defaults to .rowmerge.yaml in the working directory")
	viper.BindEnv("config_file")
	viper.BindPFlag("config_file", rootCmd.PersistentFlags().Lookup("config-file"))
	utils.AddLoggerFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().String("cpuprofile", "", "write cpu profile to file")
	rootCmd.PersistentFlags().String("heapprofile", "", "write heap profile to file")
	rootCmd.AddCommand(newMergeCmd())
	rootCmd.AddCommand(newJoinCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}
