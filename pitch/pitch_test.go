package pitch

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Class(0).Name())
	assert.Equal("F#", Class(6).Name())
	assert.Equal("B", Class(11).Name())
	assert.Equal("Class(12)", Class(12).String())
}

func TestMustClassPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { MustClass(12) })
	assert.Panics(t, func() { MustClass(-1) })
	assert.NotPanics(t, func() { MustClass(11) })
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Class(2), Class(11).Transpose(3))
	assert.Equal(Class(10), Class(0).Transpose(-2))
	assert.Equal(Class(5), Class(5).Transpose(24))
}

func TestFromMidi(t *testing.T) {
	assert.Equal(t, Class(0), FromMidi(60))
	assert.Equal(t, Class(9), FromMidi(69))
}

func TestWhiteKeys(t *testing.T) {
	var whites []int
	for c := Class(0); c < NumClasses; c++ {
		if c.IsWhite() {
			whites = append(whites, int(c))
		}
	}
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, whites)
}

func TestParse(t *testing.T) {
	cases := map[string]Class{
		"C":   0,
		"c#":  1,
		"A#":  10,
		" g ": 7,
		"11":  11,
		"0":   0,
	}
	for in, want := range cases {
		t.Run(fmt.Sprintf("parse %q", in), func(t *testing.T) {
			got, err := Parse(in)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	for _, bad := range []string{"", "H", "Db", "12", "-1"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestUnmarshalJSONAcceptsNumbersAndNames(t *testing.T) {
	var got []Class
	err := json.Unmarshal([]byte(`[0, "E", "g", 11]`), &got)
	assert.NoError(t, err)
	assert.Equal(t, []Class{0, 4, 7, 11}, got)

	assert.Error(t, json.Unmarshal([]byte(`[12]`), &got))
	assert.Error(t, json.Unmarshal([]byte(`[true]`), &got))
}
