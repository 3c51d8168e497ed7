package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"gitlab.com/gomidi/midi/v2/smf"
)

// CreateChordKey identifies a pitch-class set heard over a given bass class,
// e.g. "0-4-7/4" for a C major triad over E.
func CreateChordKey(set model.PitchClassSet, bass model.PitchClass) string {
	parts := make([]string, len(set))
	for i, pc := range set {
		parts[i] = fmt.Sprintf("%v", int(pc))
	}
	return strings.Join(parts, "-") + fmt.Sprintf("/%v", int(bass))
}

func getChord(pressed map[uint8]int, offset int64) model.Sounding {
	var c model.Sounding
	for note := range pressed {
		c.Notes = append(c.Notes, note)
	}
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})

	// millis is accurate enough and gives us 1200 hours in 32 bits
	c.Offset = uint32(offset / 1000)
	return c
}

// GetChords returns the sets of keys sounding together over the file, in time
// order. Events sharing a timestamp collapse into one chord.
func GetChords(s *smf.SMF) (chords []model.Sounding, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("could not read chords: %v", r)
		}
	}()

	var reducedEvents []model.ReducedEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset: s.TimeAt(absTicks),
					Note:   key,
				})
			case event.Message.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChord := make(map[int64]model.Sounding)
	var offsets []int64
	// same key can be held on several channels
	pressed := make(map[uint8]int)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			if pressed[evt.Note] > 1 {
				pressed[evt.Note]--
			} else {
				delete(pressed, evt.Note)
			}
		} else {
			pressed[evt.Note]++
		}
		if _, ok := timestampToChord[evt.Offset]; !ok {
			offsets = append(offsets, evt.Offset)
		}
		timestampToChord[evt.Offset] = getChord(pressed, evt.Offset)
	}

	for _, offset := range offsets {
		c := timestampToChord[offset]
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}

// MidiChordKey is CreateChordKey for a set of MIDI keys.
func MidiChordKey(keys []uint8) string {
	if len(keys) == 0 {
		return ""
	}
	pcs := make([]model.PitchClass, len(keys))
	low := keys[0]
	for i, k := range keys {
		pcs[i] = model.Pitch(k).Class()
		if k < low {
			low = k
		}
	}
	return CreateChordKey(note.Normalize(pcs), model.Pitch(low).Class())
}
