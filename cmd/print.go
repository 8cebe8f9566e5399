package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/keyboard"
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/jsphweid/scalefinder/view"
)

func scaleList(scales []scale.Scale) string {
	if len(scales) == 0 {
		return view.NoMatches
	}
	var labels []string
	for _, s := range scales {
		labels = append(labels, s.Name)
	}
	return strings.Join(labels, "  ")
}

func printState(w io.Writer, selection pitch.Set, m engine.Matches) {
	fmt.Fprintln(w, keyboard.Render(selection))
	fmt.Fprintln(w)
	if selection.Empty() {
		fmt.Fprintln(w, "No notes selected, showing every scale")
	} else {
		fmt.Fprintf(w, "Notes: %v\n", selection)
	}
	fmt.Fprintf(w, "Major: %s\n", scaleList(m.Majors))
	fmt.Fprintf(w, "Minor: %s\n", scaleList(m.Minors))
}
