package cmd

import (
	"fmt"

	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:     "export SCALE FILE",
	Short:   "Writes a scale out as a MIDI file",
	Example: "  scalefinder export F#m fsharp-minor.mid",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, ok := scale.Build().Lookup(args[0])
		if !ok {
			return errors.Errorf("no scale named %q", args[0])
		}
		if err := midi.WriteFile(args[1], s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v to %v\n", s.Label(), args[1])
		return nil
	},
}
