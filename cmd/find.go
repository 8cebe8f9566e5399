package cmd

import (
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find NOTES...",
	Short: "Lists the scales containing the given notes",
	Long: `Lists the scales containing the given notes. Notes are sharp-spelled
names (C, c#, A#) or pitch class numbers 0-11, separated by spaces or commas.`,
	Example: "  scalefinder find C E G\n  scalefinder find 0,4,7",
	RunE: func(cmd *cobra.Command, args []string) error {
		sel, err := pitch.ParseSet(args)
		if err != nil {
			return err
		}
		e := engine.New(scale.Build())
		e.SetAll(sel)
		printState(cmd.OutOrStdout(), e.Selection(), e.Matches())
		return nil
	},
}
