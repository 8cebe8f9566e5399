package view

import (
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/keyboard"
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
)

// NoMatches is shown in place of an empty scale list.
const NoMatches = "No matches"

type KeyState struct {
	keyboard.Key
	On bool `json:"on"`
}

type ScaleButton struct {
	Name  string      `json:"name"`
	Kind  scale.Kind  `json:"kind"`
	Label string      `json:"label"`
	Title string      `json:"title"`
	Notes []int       `json:"notes"`
	Root  pitch.Class `json:"root"`
}

type State struct {
	Selection []int         `json:"selection"`
	Filtered  bool          `json:"filtered"`
	Keys      []KeyState    `json:"keys"`
	LEDs      []bool        `json:"leds"`
	Majors    []ScaleButton `json:"majors"`
	Minors    []ScaleButton `json:"minors"`
}

func Button(s scale.Scale) ScaleButton {
	var notes []int
	for _, c := range s.Notes() {
		notes = append(notes, int(c))
	}
	return ScaleButton{
		Name:  s.Name,
		Kind:  s.Kind,
		Label: s.Label(),
		Title: s.Title(),
		Notes: notes,
		Root:  s.Root,
	}
}

func Buttons(scales []scale.Scale) []ScaleButton {
	res := make([]ScaleButton, 0, len(scales))
	for _, s := range scales {
		res = append(res, Button(s))
	}
	return res
}

func FromMatches(selection pitch.Set, m engine.Matches) State {
	var keys []KeyState
	for _, k := range keyboard.Layout() {
		keys = append(keys, KeyState{Key: k, On: selection.Has(k.Note)})
	}
	return State{
		Selection: selection.Ints(),
		Filtered:  !selection.Empty(),
		Keys:      keys,
		LEDs:      keyboard.LEDs(selection),
		Majors:    Buttons(m.Majors),
		Minors:    Buttons(m.Minors),
	}
}

func Build(e *engine.Engine) State {
	return FromMatches(e.Selection(), e.Matches())
}
