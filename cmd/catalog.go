package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/scalefinder/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var catalogFormat string

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "output format: text or yaml")
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lists every scale the finder knows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printCatalog(cmd.OutOrStdout(), scale.Build(), catalogFormat)
	},
}

type catalogEntry struct {
	Name  string     `yaml:"name"`
	Kind  scale.Kind `yaml:"kind"`
	Root  string     `yaml:"root"`
	Notes []string   `yaml:"notes"`
}

func printCatalog(w io.Writer, c scale.Catalog, format string) error {
	switch format {
	case "text":
		for _, s := range c {
			fmt.Fprintf(w, "%-11s %s\n", s.Label(), s.Title())
		}
		return nil
	case "yaml":
		var entries []catalogEntry
		for _, s := range c {
			var notes []string
			for _, n := range s.Notes() {
				notes = append(notes, n.Name())
			}
			entries = append(entries, catalogEntry{Name: s.Name, Kind: s.Kind, Root: s.Root.Name(), Notes: notes})
		}
		out, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "could not encode catalog")
		}
		_, err = w.Write(out)
		return err
	default:
		return errors.Errorf("unknown format %q", format)
	}
}
