// Package note turns note spellings such as "C#4" or "Bb" into pitch classes
// and absolute pitches, and names pitch classes back for display.
package note

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/chordid/model"
)

// DefaultOctave is assumed when a spelling carries none.
const DefaultOctave = 4

var spellings = map[string]model.PitchClass{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"E#": 5, "F": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// ParseError reports a note whose letter/accidental head is not a known spelling.
type ParseError struct {
	Note string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized note spelling: %q", e.Note)
}

func isHeadChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '#'
}

// Parse splits a note into its spelling head and octave tail. A missing or
// non-numeric tail puts the note in DefaultOctave.
func Parse(s string) (model.PitchClass, model.Pitch, error) {
	trimmed := strings.TrimSpace(s)
	end := strings.IndexFunc(trimmed, func(r rune) bool { return !isHeadChar(r) })
	if end == -1 {
		end = len(trimmed)
	}
	head, tail := trimmed[:end], trimmed[end:]

	pc, ok := spellings[head]
	if !ok {
		return 0, 0, &ParseError{Note: s}
	}

	octave := DefaultOctave
	if n, err := strconv.Atoi(tail); err == nil && !strings.HasPrefix(tail, "+") {
		octave = n
	}
	return pc, model.Pitch(int(pc) + 12*(octave+1)), nil
}

// Name spells a pitch class with sharps, or flats when preferFlats is set.
func Name(pc model.PitchClass, preferFlats bool) string {
	i := ((int(pc) % 12) + 12) % 12
	if preferFlats {
		return flatNames[i]
	}
	return sharpNames[i]
}

// NameMidi spells a MIDI key with its octave, e.g. 61 -> "C#4".
func NameMidi(key uint8, preferFlats bool) string {
	return Name(model.Pitch(key).Class(), preferFlats) + strconv.Itoa(int(key)/12-1)
}
