package logger

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"
	"time"
)

var Stream io.Writer = os.Stderr

var (
	mu   sync.Mutex
	prev io.Writer // Stream at the time of the previous line
)

var lineRE = regexp.MustCompile("(?m)^")

func write(line string) {
	mu.Lock()
	defer mu.Unlock()

	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	var timestamp string
	if prev != Stream {
		// first line on a stream carries the zone
		timestamp = time.Now().Format("2006-01-02T15:04:05.000Z07:00")
		prev = Stream
	} else {
		timestamp = time.Now().Format("2006-01-02T15:04:05.000")
	}
	fmt.Fprintln(Stream, timestamp+" "+line)
}

func log(prefix, msg string) {
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	for _, line := range lineRE.Split(msg, -1) {
		write(prefix + line)
	}
}

type Context struct {
	Prefix string
}

func (l Context) Println(args ...interface{}) {
	log(l.Prefix, fmt.Sprintln(args...))
}

func (l Context) Printf(format string, args ...interface{}) {
	log(l.Prefix, fmt.Sprintf(format, args...))
}

var (
	HTTP = Context{"HTTP "}
	MIDI = Context{"MIDI "}
	UI   = Context{"  UI "}
)
