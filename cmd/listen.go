package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/scalefinder/chord"
	"github.com/jsphweid/scalefinder/constants"
	"github.com/jsphweid/scalefinder/engine"
	"github.com/jsphweid/scalefinder/logger"
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

const allNotesOff = 123

var (
	listenPort  int
	listenHold  bool
	listenPorts bool
)

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().IntVarP(&listenPort, "port", "p", constants.GetMidiPort(), "MIDI input port number")
	listenCmd.Flags().BoolVar(&listenHold, "hold", false, "select exactly the notes being held instead of toggling")
	listenCmd.Flags().BoolVar(&listenPorts, "ports", false, "list MIDI input ports and exit")
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Selects notes from a MIDI keyboard",
	Long: `Listens to a MIDI input. Each key pressed toggles its note, or with
--hold the selection follows the keys currently held down. An "all notes off"
message clears the selection.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer midi.CloseDriver()
		if listenPorts {
			fmt.Fprintln(cmd.OutOrStdout(), midi.GetInPorts())
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return listen(ctx, cmd.OutOrStdout(), listenPort, listenHold)
	},
}

// noteRouter turns MIDI note events into engine input. It is driven from the
// driver's callback goroutine, so everything goes through mu.
type noteRouter struct {
	mu     sync.Mutex
	engine *engine.Engine
	hold   bool
	on     chord.OnNotes
}

func newNoteRouter(e *engine.Engine, hold bool) *noteRouter {
	return &noteRouter{engine: e, hold: hold, on: make(chord.OnNotes)}
}

func (r *noteRouter) noteStart(key uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hold {
		r.on[key] = true
		r.engine.SetAll(chord.HeldPitchClasses(r.on))
		return
	}
	r.engine.OnPitchClassActivated(pitch.FromMidi(key))
}

func (r *noteRouter) noteEnd(key uint8) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hold {
		return
	}
	delete(r.on, key)
	r.engine.SetAll(chord.HeldPitchClasses(r.on))
}

func (r *noteRouter) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.on = make(chord.OnNotes)
	r.engine.OnResetRequested()
}

func (r *noteRouter) handle(msg midi.Message) {
	var ch, key, vel, cc, val uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		r.noteStart(key)
	case msg.GetNoteEnd(&ch, &key):
		r.noteEnd(key)
	case msg.GetControlChange(&ch, &cc, &val) && cc == allNotesOff:
		r.reset()
	default:
		// ignore
	}
}

// reportTo prints the current state to w. Bursts of changes, like the notes
// of a struck chord, are coalesced into one report.
func (r *noteRouter) reportTo(w io.Writer, debounced func(func())) engine.Listener {
	return engine.ListenerFunc(func(pitch.Set, engine.Matches) {
		debounced(func() { r.report(w) })
	})
}

func (r *noteRouter) report(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	logger.MIDI.Printf("held %v", chord.HeldKey(r.on))
	printState(w, r.engine.Selection(), r.engine.Matches())
}

func listen(ctx context.Context, out io.Writer, port int, hold bool) error {
	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI input %d, available inputs:\n%v", port, midi.GetInPorts())
	}

	e := engine.New(scale.Build())
	router := newNoteRouter(e, hold)
	e.Subscribe(router.reportTo(out, debounce.New(constants.GetDebounce())))

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		router.handle(msg)
	})
	if err != nil {
		return errors.Wrap(err, "could not listen to MIDI input")
	}
	defer stop()

	logger.MIDI.Printf("listening on %v", in)
	router.report(out)
	<-ctx.Done()
	return nil
}
