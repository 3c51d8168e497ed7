// Package session collects notes played during a capture session and hands
// them to the analyzer when the session ends.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/chordid/note"
)

// Controller guards the running flag and the note buffer. Notes may be
// appended from a listener goroutine while another goroutine starts and ends
// sessions.
type Controller struct {
	mu      sync.Mutex
	running bool
	id      uuid.UUID
	notes   []string
}

func NewController() *Controller {
	return &Controller{}
}

// Start begins a session with a fresh id. It returns false if one is already running.
func (c *Controller) Start() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return c.id, false
	}
	c.running = true
	c.id = uuid.New()
	return c.id, true
}

func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller) ID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Append records a note if a session is running.
func (c *Controller) Append(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return false
	}
	c.notes = append(c.notes, name)
	return true
}

// TakeAndReset returns everything appended so far in arrival order and
// empties the buffer.
func (c *Controller) TakeAndReset() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	notes := c.notes
	c.notes = nil
	return notes
}

// End stops the running session and takes its notes in one step.
func (c *Controller) End() (uuid.UUID, []string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return uuid.Nil, nil, false
	}
	c.running = false
	notes := c.notes
	c.notes = nil
	return c.id, notes, true
}

// Dedupe keeps the first occurrence of each note.
func Dedupe(notes []string) []string {
	seen := make(map[string]bool, len(notes))
	var res []string
	for _, n := range notes {
		if !seen[n] {
			seen[n] = true
			res = append(res, n)
		}
	}
	return res
}

// Recorder appends pressed MIDI keys to a controller as note names.
type Recorder struct {
	Controller  *Controller
	PreferFlats bool
}

func (r Recorder) NoteOn(key uint8) {
	r.Controller.Append(note.NameMidi(key, r.PreferFlats))
}

func (r Recorder) NoteOff(key uint8) {}
