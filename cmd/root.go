package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scalefinder",
	Short: "Finds the scales that contain a set of notes",
	Long: `Toggle the notes you hear and scalefinder lists every major and
natural minor scale that contains all of them.`,
	SilenceUsage: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
