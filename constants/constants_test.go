package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("SCALEFINDER_ADDR", "")
	t.Setenv("SCALEFINDER_MIDI_PORT", "")
	t.Setenv("SCALEFINDER_DEBOUNCE_MS", "")
	t.Setenv("SCALEFINDER_SESSION_TTL", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetAddr())
	assert.Equal(0, GetMidiPort())
	assert.Equal(80*time.Millisecond, GetDebounce())
	assert.Equal(30*time.Minute, GetSessionTTL())
}

func TestOverrides(t *testing.T) {
	t.Setenv("SCALEFINDER_ADDR", "127.0.0.1:9000")
	t.Setenv("SCALEFINDER_MIDI_PORT", "2")
	t.Setenv("SCALEFINDER_DEBOUNCE_MS", "150")
	t.Setenv("SCALEFINDER_SESSION_TTL", "5m")

	assert := assert.New(t)
	assert.Equal("127.0.0.1:9000", GetAddr())
	assert.Equal(2, GetMidiPort())
	assert.Equal(150*time.Millisecond, GetDebounce())
	assert.Equal(5*time.Minute, GetSessionTTL())
}

func TestBadNumberPanics(t *testing.T) {
	t.Setenv("SCALEFINDER_MIDI_PORT", "abc")
	assert.Panics(t, func() { GetMidiPort() })
}
