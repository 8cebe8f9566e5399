package midi

import (
	"io"
	"os"

	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

// Keys lists the MIDI keys of one ascending octave of s, starting from the
// root in the middle C octave and ending on the root an octave up.
func Keys(s scale.Scale) []uint8 {
	root := uint8(constants.MiddleC) + uint8(s.Root)
	var res []uint8
	for _, offset := range scale.Intervals(s.Kind) {
		res = append(res, root+uint8(offset))
	}
	return append(res, root+12)
}

// Create builds a single track file playing the scale in quarter notes.
func Create(s scale.Scale) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.ExportTicksPerQuarter)

	var track smf.Track
	for _, key := range Keys(s) {
		track = append(track, smf.Event{Delta: 0, Message: smf.Message(gomidi.NoteOn(0, key, velocity))})
		track = append(track, smf.Event{Delta: constants.ExportTicksPerQuarter, Message: smf.Message(gomidi.NoteOff(0, key))})
	}
	track.Close(0)

	res.Tracks = append(res.Tracks, track)
	return res
}

func Write(w io.Writer, s scale.Scale) error {
	_, err := Create(s).WriteTo(w)
	if err != nil {
		return errors.Wrapf(err, "could not write %v", s.Name)
	}
	return nil
}

func WriteFile(path string, s scale.Scale) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create midi file")
	}
	defer f.Close()
	return Write(f, s)
}
