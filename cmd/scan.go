package cmd

import (
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/midi"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/spf13/cobra"
)

var scanTrack int

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVarP(&scanTrack, "track", "t", -1, "only read this track (0-based); all tracks when negative")
}

var scanCmd = &cobra.Command{
	Use:   "scan FILE",
	Short: "Finds the scales that fit the notes of a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		sel, err := midi.PitchClasses(parsed, scanTrack)
		if err != nil {
			return err
		}
		logger.UI.Printf("%v: found %v", args[0], sel)
		e := engine.New(scale.Build())
		e.SetAll(sel)
		printState(cmd.OutOrStdout(), e.Selection(), e.Matches())
		return nil
	},
}
