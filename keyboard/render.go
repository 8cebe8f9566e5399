package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/scalefinder/pitch"
	"golang.org/x/exp/slices"
)

const whiteWidth = 4

var (
	onStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214"))
	whiteOffStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "255"})
	blackOffStyle = lipgloss.NewStyle().Faint(true)
	ledOnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func label(note pitch.Class, selection pitch.Set) string {
	if selection.Has(note) {
		return note.Name() + "*"
	}
	return note.Name()
}

// Render draws one octave: black key names on the first line, white key names
// on the second and the indicator lights on the third. Selected keys are
// highlighted and marked with "*" so the state survives plain output.
func Render(selection pitch.Set) string {
	var black strings.Builder
	cursor := 0
	for _, note := range BlackOrder {
		leftWhite := slices.Index(WhiteOrder, note-1)
		start := leftWhite*whiteWidth + whiteWidth - 1
		black.WriteString(strings.Repeat(" ", start-cursor))
		text := label(note, selection)
		if selection.Has(note) {
			black.WriteString(onStyle.Render(text))
		} else {
			black.WriteString(blackOffStyle.Render(text))
		}
		cursor = start + len(text)
	}

	var white strings.Builder
	for _, note := range WhiteOrder {
		text := " " + label(note, selection)
		text += strings.Repeat(" ", whiteWidth-len(text))
		if selection.Has(note) {
			white.WriteString(onStyle.Render(text))
		} else {
			white.WriteString(whiteOffStyle.Render(text))
		}
	}

	var leds []string
	for _, on := range LEDs(selection) {
		if on {
			leds = append(leds, ledOnStyle.Render("●"))
		} else {
			leds = append(leds, "○")
		}
	}

	return strings.Join([]string{black.String(), white.String(), " " + strings.Join(leds, " ")}, "\n")
}
