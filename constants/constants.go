package constants

import (
	"os"
	"strconv"
	"time"
)

func GetAddr() string {
	addr := os.Getenv("SCALEFINDER_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMidiPort() int {
	return getInt("SCALEFINDER_MIDI_PORT", 0)
}

// GetDebounce is how long the listener waits for a burst of MIDI events
// (a chord being struck) to settle before reporting matches.
func GetDebounce() time.Duration {
	return time.Duration(getInt("SCALEFINDER_DEBOUNCE_MS", 80)) * time.Millisecond
}

func GetSessionTTL() time.Duration {
	raw := os.Getenv("SCALEFINDER_SESSION_TTL")
	if raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			panic("SCALEFINDER_SESSION_TTL is not a duration: " + err.Error())
		}
		return d
	}
	return 30 * time.Minute
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		panic(key + " is not a number: " + err.Error())
	}
	return n
}

const MiddleC = 60

const ExportTicksPerQuarter = 960
