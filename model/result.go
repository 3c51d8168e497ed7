package model

import "fmt"

type ResultKind int

const (
	NoNotes ResultKind = iota
	SingleNote
	Interval
	Chord
	NoChord
)

func (k ResultKind) String() string {
	switch k {
	case NoNotes:
		return "no_notes"
	case SingleNote:
		return "single_note"
	case Interval:
		return "interval"
	case Chord:
		return "chord"
	case NoChord:
		return "no_chord"
	default:
		return "unknown"
	}
}

func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ResultKind) UnmarshalText(text []byte) error {
	for kind := NoNotes; kind <= NoChord; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown result kind %q", text)
}

type IntervalReport struct {
	Lower    string `json:"lower"`
	Upper    string `json:"upper"`
	Distance int    `json:"distance"`
	Up       string `json:"up"`
	Down     string `json:"down"`
	// power chord label for perfect 4ths/5ths, shell description otherwise
	Guess      string `json:"guess"`
	PowerChord bool   `json:"power_chord"`
}

// Result is the outcome of analyzing one set of notes.
type Result struct {
	Kind         ResultKind       `json:"kind"`
	Notes        []string         `json:"notes"`
	PitchClasses PitchClassSet    `json:"pitch_classes"`
	Label        string           `json:"label,omitempty"`
	Interval     *IntervalReport  `json:"interval,omitempty"`
	Best         *ScoredCandidate `json:"best,omitempty"`
}

func (r Result) String() string {
	switch r.Kind {
	case NoNotes:
		return "No notes."
	case SingleNote:
		return "Single note: " + r.Label
	case Interval:
		iv := r.Interval
		return fmt.Sprintf("Intervals:\n  %s→%s : %s\n  %s→%s : %s (inversion)\nBest chord guess: %s",
			iv.Lower, iv.Upper, iv.Up, iv.Upper, iv.Lower, iv.Down, iv.Guess)
	case Chord:
		return r.Label
	default:
		return "No chord."
	}
}

// Short is a one-line form of the result for live and file listings.
func (r Result) Short() string {
	switch r.Kind {
	case SingleNote, Chord:
		return r.Label
	case Interval:
		return r.Interval.Guess
	case NoChord:
		return "No chord."
	default:
		return ""
	}
}
