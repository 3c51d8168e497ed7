package session

import (
	"io"
	"sort"
	"sync"

	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/constants"
)

// HeldNotes tracks the keys currently down and reports each change.
type HeldNotes struct {
	mu       sync.Mutex
	held     map[uint8]int
	onChange func(keys []uint8)
}

func NewHeldNotes(onChange func(keys []uint8)) *HeldNotes {
	return &HeldNotes{held: make(map[uint8]int), onChange: onChange}
}

func (h *HeldNotes) NoteOn(key uint8) {
	h.mu.Lock()
	h.held[key]++
	keys := h.keysLocked()
	h.mu.Unlock()
	h.changed(keys)
}

func (h *HeldNotes) NoteOff(key uint8) {
	h.mu.Lock()
	if h.held[key] > 1 {
		h.held[key]--
	} else {
		delete(h.held, key)
	}
	keys := h.keysLocked()
	h.mu.Unlock()
	h.changed(keys)
}

func (h *HeldNotes) Keys() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keysLocked()
}

func (h *HeldNotes) keysLocked() []uint8 {
	keys := make([]uint8, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func (h *HeldNotes) changed(keys []uint8) {
	if h.onChange != nil {
		h.onChange(keys)
	}
}

// Live prints the chord for a set of held keys whenever the text changes.
type Live struct {
	mu          sync.Mutex
	out         io.Writer
	preferFlats bool
	last        string
}

func NewLive(out io.Writer, preferFlats bool) *Live {
	return &Live{out: out, preferFlats: preferFlats}
}

// Show analyzes keys and returns the text printed, or "" when nothing changed.
func (l *Live) Show(keys []uint8) string {
	var text string
	if len(keys) >= constants.MinChordNotes && len(keys) <= constants.MaxChordNotes {
		text = chord.AnalyzeMidi(keys, l.preferFlats).Short()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if text == l.last {
		return ""
	}
	l.last = text
	if text == "" {
		return ""
	}
	io.WriteString(l.out, text+"\n")
	return text
}
