package engine

import (
	"fmt"

	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/scale"
)

// Listener is told about every change to the selection, after the matches
// have been refreshed.
type Listener interface {
	OnSelectionChanged(selection pitch.Set, matches Matches)
}

type ListenerFunc func(selection pitch.Set, matches Matches)

func (f ListenerFunc) OnSelectionChanged(selection pitch.Set, matches Matches) {
	f(selection, matches)
}

// InputHandler is what a rendering layer calls when the user acts.
type InputHandler interface {
	OnPitchClassActivated(pc pitch.Class)
	OnScaleChosen(s scale.Scale)
	OnResetRequested()
}

// Engine owns the current selection. It is not safe for concurrent use;
// callers running on several goroutines must serialize access.
type Engine struct {
	catalog   scale.Catalog
	selection pitch.Set
	listeners []Listener

	memoValid bool
	memoKey   pitch.Set
	memo      Matches
}

var _ InputHandler = (*Engine)(nil)

func New(catalog scale.Catalog) *Engine {
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() scale.Catalog {
	return e.catalog
}

func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Engine) Selection() pitch.Set {
	return e.selection
}

// Filtered reports whether a filter is applied, which is how callers tell an
// empty match list apart from the unfiltered catalog.
func (e *Engine) Filtered() bool {
	return !e.selection.Empty()
}

func (e *Engine) Toggle(pc pitch.Class) {
	e.update(e.selection.Toggle(pc))
}

func (e *Engine) SetAll(s pitch.Set) {
	if s&^pitch.Chromatic != 0 {
		panic(fmt.Sprintf("pitch set out of range: %#x", uint16(s)))
	}
	e.update(s)
}

func (e *Engine) RequestSetAll(s pitch.Set) {
	e.SetAll(s)
}

func (e *Engine) Clear() {
	e.update(0)
}

func (e *Engine) Matches() Matches {
	if !e.memoValid || e.memoKey != e.selection {
		e.memo = Match(e.selection, e.catalog)
		e.memoKey = e.selection
		e.memoValid = true
	}
	return copyMatches(e.memo)
}

func (e *Engine) OnPitchClassActivated(pc pitch.Class) {
	e.Toggle(pc)
}

func (e *Engine) OnScaleChosen(s scale.Scale) {
	e.RequestSetAll(s.PitchClasses)
}

func (e *Engine) OnResetRequested() {
	e.Clear()
}

func (e *Engine) update(s pitch.Set) {
	e.selection = s
	m := e.Matches()
	for _, l := range e.listeners {
		l.OnSelectionChanged(e.selection, m)
	}
}

// callers may append to or reorder what they get back
func copyMatches(m Matches) Matches {
	return Matches{
		Majors: append([]scale.Scale(nil), m.Majors...),
		Minors: append([]scale.Scale(nil), m.Minors...),
	}
}
