package utils

import (
	"github.com/hestia-earth/rowmerge/pkg/pbar"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func SetupProgressBarFlags(flags *pflag.FlagSet) {
	flags.Bool("no-progress", false, "don't display progress bar")
}

// GetProgressBarContainer renders progress on stderr, keeping stdout free
// for CSV output.
func GetProgressBarContainer(cmd *cobra.Command) (*pbar.Container, error) {
	noP, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return nil, err
	}
	return pbar.NewContainer(cmd.ErrOrStderr(), noP), nil
}
