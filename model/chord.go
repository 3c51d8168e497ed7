package model

type Notes = []uint8

// Sounding is a set of MIDI keys held together in a file.
type Sounding struct {
	// milliseconds from the start of the file
	Offset uint32
	Notes  Notes
}

type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

// Candidate is one (root, quality) reading of a pitch-class set.
type Candidate struct {
	Root    PitchClass `json:"root"`
	Quality string     `json:"quality"`
}

type ScoreTerms struct {
	Coverage     float64 `json:"coverage"`
	MissingThird float64 `json:"missing_third"`
	MissingSeven float64 `json:"missing_seventh"`
	Complexity   float64 `json:"complexity"`
	BassFit      float64 `json:"bass_fit"`
	Realism      float64 `json:"realism"`
	CleanTriad   float64 `json:"clean_triad"`
}

type ScoredCandidate struct {
	Candidate
	Score float64    `json:"score"`
	Terms ScoreTerms `json:"terms"`
	Label string     `json:"label"`
}
