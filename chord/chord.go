package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/util"
)

// OnNotes tracks MIDI keys that are currently held down.
type OnNotes = map[uint8]bool

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// PitchClasses folds MIDI keys from any octave into a pitch class set.
func PitchClasses(notes []uint8) pitch.Set {
	var s pitch.Set
	for _, note := range notes {
		s = s.Add(pitch.FromMidi(note))
	}
	return s
}

func HeldPitchClasses(on OnNotes) pitch.Set {
	return PitchClasses(util.GetKeys(on))
}

func HeldKey(on OnNotes) string {
	return CreateChordKey(util.GetKeysSorted(on))
}
