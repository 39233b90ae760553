package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "stats [file|-]",
		Short: "Print character and line counts of the plain text output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			res, err := process(cmd.Context(), a, sourceFor(cmd, in, args), in.from)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatStats(res.Stats))
			return err
		},
	}
	addInputFlags(cmd, &in)
	return cmd
}
