package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/scalefinder/pitch"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s = nil
			e = errors.New(fmt.Sprint(rec))
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing midi file")
	}
	return res, nil
}

// PitchClasses collects every pitch class that sounds in the file. A negative
// track includes all tracks.
func PitchClasses(s *smf.SMF, track int) (pitch.Set, error) {
	if track >= len(s.Tracks) {
		return 0, errors.Errorf("track %d requested but file has %d tracks", track, len(s.Tracks))
	}

	var res pitch.Set
	for i, events := range s.Tracks {
		if track >= 0 && i != track {
			continue
		}
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = res.Add(pitch.FromMidi(key))
			}
		}
	}
	return res, nil
}
