package keyboard

import (
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/util"
	"golang.org/x/exp/slices"
)

var (
	WhiteOrder = []pitch.Class{0, 2, 4, 5, 7, 9, 11}
	BlackOrder = []pitch.Class{1, 3, 6, 8, 10}
)

const NumLEDs = 7

type Key struct {
	Note  pitch.Class `json:"note"`
	Name  string      `json:"name"`
	White bool        `json:"white"`
	// Center is the horizontal middle of the key as a percentage of the
	// keyboard width.
	Center float64 `json:"center"`
}

func whiteCenter(pos int) float64 {
	return (float64(pos) + 0.5) / float64(len(WhiteOrder)) * 100
}

// blackCenter puts a black key halfway between the white keys either side.
func blackCenter(note pitch.Class) float64 {
	right := slices.IndexFunc(WhiteOrder, func(w pitch.Class) bool { return w > note })
	if right == -1 {
		right = len(WhiteOrder) - 1
	}
	left := right - 1
	if left < 0 {
		left = 0
	}
	return (whiteCenter(left) + whiteCenter(right)) / 2
}

// Layout returns the white keys left to right followed by the black keys.
func Layout() []Key {
	keys := make([]Key, 0, pitch.NumClasses)
	for i, note := range WhiteOrder {
		keys = append(keys, Key{Note: note, Name: note.Name(), White: true, Center: whiteCenter(i)})
	}
	for _, note := range BlackOrder {
		keys = append(keys, Key{Note: note, Name: note.Name(), Center: blackCenter(note)})
	}
	return keys
}

// LEDs lights one indicator per selected note, up to NumLEDs.
func LEDs(selection pitch.Set) []bool {
	lit := util.Min(selection.Len(), NumLEDs)
	res := make([]bool, NumLEDs)
	for i := 0; i < lit; i++ {
		res[i] = true
	}
	return res
}
