package pitch

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Class is one of the 12 equal-tempered semitones within an octave, 0 = C.
type Class int

const NumClasses = 12

var names = [NumClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var isWhite = [NumClasses]bool{true, false, true, false, true, true, false, true, false, true, false, true}

func (c Class) Valid() bool {
	return c >= 0 && c < NumClasses
}

// MustClass panics if n is outside [0,11]. Callers are expected to have
// constrained the value already.
func MustClass(n int) Class {
	c := Class(n)
	if !c.Valid() {
		panic(fmt.Sprintf("pitch class out of range: %d", n))
	}
	return c
}

// FromMidi reduces a MIDI key number to its pitch class.
func FromMidi(key uint8) Class {
	return Class(key % NumClasses)
}

func (c Class) Name() string {
	return names[MustClass(int(c))]
}

func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return names[c]
}

func (c Class) IsWhite() bool {
	return isWhite[MustClass(int(c))]
}

// Transpose moves c by semitones, wrapping around the octave.
func (c Class) Transpose(semitones int) Class {
	n := (int(c) + semitones) % NumClasses
	if n < 0 {
		n += NumClasses
	}
	return Class(n)
}

// Parse accepts a sharp-spelled name ("C", "c#", "A#") or a number 0..11.
func Parse(s string) (Class, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty note")
	}
	if n, err := strconv.Atoi(s); err == nil {
		c := Class(n)
		if !c.Valid() {
			return 0, errors.Errorf("pitch class %d is outside 0..11", n)
		}
		return c, nil
	}
	upper := strings.ToUpper(s[:1]) + s[1:]
	for i, name := range names {
		if name == upper {
			return Class(i), nil
		}
	}
	return 0, errors.Errorf("unknown note %q", s)
}

func (c *Class) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if !Class(n).Valid() {
			return errors.Errorf("pitch class %d is outside 0..11", n)
		}
		*c = Class(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "pitch class must be a number or a note name")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
