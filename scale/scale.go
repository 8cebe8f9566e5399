package scale

import (
	"strings"

	"github.com/jsphweid/scalefinder/pitch"
	"github.com/pkg/errors"
)

type Kind int

const (
	Major Kind = iota
	Minor
)

var (
	majorIntervals = []int{0, 2, 4, 5, 7, 9, 11}
	minorIntervals = []int{0, 2, 3, 5, 7, 8, 10}
)

func (k Kind) String() string {
	if k == Minor {
		return "minor"
	}
	return "major"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "major":
		*k = Major
	case "minor":
		*k = Minor
	default:
		return errors.Errorf("unknown scale kind %q", text)
	}
	return nil
}

// Intervals returns the semitone offsets from the root, in scale order.
func Intervals(k Kind) []int {
	var src []int
	switch k {
	case Major:
		src = majorIntervals
	case Minor:
		src = minorIntervals
	default:
		panic("unknown scale kind")
	}
	res := make([]int, len(src))
	copy(res, src)
	return res
}

type Scale struct {
	Kind         Kind
	Root         pitch.Class
	Name         string
	PitchClasses pitch.Set
}

func newScale(kind Kind, root pitch.Class) Scale {
	var set pitch.Set
	for _, offset := range Intervals(kind) {
		set = set.Add(root.Transpose(offset))
	}
	name := root.Name()
	if kind == Minor {
		name += "m"
	}
	return Scale{Kind: kind, Root: root, Name: name, PitchClasses: set}
}

// Notes returns the member pitch classes starting at the root.
func (s Scale) Notes() []pitch.Class {
	var res []pitch.Class
	for _, offset := range Intervals(s.Kind) {
		res = append(res, s.Root.Transpose(offset))
	}
	return res
}

func (s Scale) Label() string {
	if s.Kind == Minor {
		return s.Name + " (Minor)"
	}
	return s.Name + " (Major)"
}

func (s Scale) Title() string {
	var parts []string
	for _, c := range s.Notes() {
		parts = append(parts, c.Name())
	}
	return strings.Join(parts, " ")
}

func (s Scale) Contains(sel pitch.Set) bool {
	return sel.SubsetOf(s.PitchClasses)
}
