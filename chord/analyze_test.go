package chord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/theory"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeChords(t *testing.T) {
	cases := []struct {
		notes string
		sharp string
		flat  string
	}{
		{"C E G", "C", "C"},
		{"E3 G3 C4", "C/E", "C/E"},
		{"E G C", "C", "C"},
		{"C E G B", "Cmaj7", "Cmaj7"},
		{"Db F Ab C", "C#maj7/C", "Dbmaj7/C"},
		{"C# E G Bb", "C#dim7", "Dbdim7"},
		{"C Eb G Bb D", "Cm9", "Cm9"},
		{"G C D", "Csus2", "Csus2"},
		{"C D G", "Csus2", "Csus2"},
		{"C F G", "Csus4", "Csus4"},
		{"C E G Ab", "G#+maj7/C", "Ab+maj7/C"},
		{"C E F# Bb", "C7alt", "C7alt"},
		{"C E G Bb", "C7", "C7"},
		{"C E G Bb Db", "C7alt", "C7alt"},
		{"A C E", "Am/C", "Am/C"},
		{"B D F", "Bdim/D", "Bdim/D"},
		{"C E G#", "C+", "C+"},
		{"C Eb Gb A", "Cdim7", "Cdim7"},
		{"C E G A", "C6", "C6"},
		{"C E G D", "Cadd9", "Cadd9"},
		{"D F# A C", "D7/C", "D7/C"},
		{"C Eb G Bb", "Cm7", "Cm7"},
		{"C E G Bb D F", "C11", "C11"},
		{"C E G Bb D A", "C13", "C13"},
		{"C E G B D", "Cmaj9", "Cmaj9"},
		{"Db F Ab", "C#", "Db"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v is %v", c.notes, c.sharp), func(t *testing.T) {
			assert := assert.New(t)
			notes := strings.Fields(c.notes)

			res, err := Analyze(notes, false)
			assert.NoError(err)
			assert.Equal(model.Chord, res.Kind)
			assert.Equal(c.sharp, res.Label)
			assert.Equal(c.sharp, res.String())
			assert.NotNil(res.Best)

			res, err = Analyze(notes, true)
			assert.NoError(err)
			assert.Equal(c.flat, res.Label)
		})
	}
}

func TestAnalyzeIgnoresOrderAboveTheBass(t *testing.T) {
	orders := [][]string{
		{"E3", "G4", "C4", "B4"},
		{"E3", "B4", "C4", "G4"},
		{"E3", "C4", "B4", "G4"},
	}
	for _, notes := range orders {
		res, err := Analyze(notes, false)
		assert.NoError(t, err)
		assert.Equal(t, "Cmaj7/E", res.Label)
	}
}

func TestAnalyzeRootPositionTemplates(t *testing.T) {
	for _, tmpl := range theory.Templates() {
		// the altered dominant template is only a core, it never matches alone
		if tmpl.Intervals.Len() < 3 || tmpl.Quality == theory.AlteredDominant {
			continue
		}
		t.Run(fmt.Sprintf("F %v", tmpl.Quality), func(t *testing.T) {
			var keys []uint8
			var set []model.PitchClass
			for _, i := range tmpl.Intervals.Slice() {
				keys = append(keys, uint8(65+i))
				set = append(set, model.PitchClass((5+i)%12))
			}

			assert := assert.New(t)
			assert.Contains(Match(note.Normalize(set)), model.Candidate{Root: 5, Quality: tmpl.Quality})

			res := AnalyzeMidi(keys, false)
			assert.Equal(model.Chord, res.Kind)
			if theory.IsAlteredFamily(tmpl.Quality) || tmpl.Quality == "+7" {
				// the fixed alteration spellings all read as an altered dominant
				assert.Equal("F7alt", res.Label)
			} else {
				assert.Equal("F"+tmpl.Symbol, res.Label)
			}
		})
	}
}

func TestAnalyzeFixedAlterations(t *testing.T) {
	cases := map[string]string{
		"E3 C4 D4":      "E7♯5",
		"D3 C4 G#4":     "D7♭5",
		"C3 F#4 A#4":    "C7♭5",
		"C3 G#4 A#4":    "C7♯5",
		"C3 E4 A#4 C#5": "C7alt",
	}
	for notes, label := range cases {
		t.Run(notes, func(t *testing.T) {
			res, err := Analyze(strings.Fields(notes), false)
			assert.NoError(t, err)
			assert.Equal(t, label, res.Label)
		})
	}
}

func TestAnalyzeNoChord(t *testing.T) {
	res, err := Analyze([]string{"C", "C#", "D"}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(model.NoChord, res.Kind)
	assert.Nil(res.Best)
	assert.Equal("No chord.", res.String())
}

func TestAnalyzeSmallSets(t *testing.T) {
	assert := assert.New(t)

	res, err := Analyze(nil, false)
	assert.NoError(err)
	assert.Equal(model.NoNotes, res.Kind)
	assert.Equal("No notes.", res.String())

	res, err = Analyze([]string{"Bb3", "A#5"}, false)
	assert.NoError(err)
	assert.Equal(model.SingleNote, res.Kind)
	assert.Equal("Single note: A#", res.String())

	res, err = Analyze([]string{"Bb3"}, true)
	assert.NoError(err)
	assert.Equal("Bb", res.Label)
}

func TestAnalyzeDyads(t *testing.T) {
	cases := []struct {
		notes string
		guess string
		label string
		up    string
		down  string
	}{
		{"C G", "C5", "C5", "P5", "P4"},
		// without octaves C4 sounds below F4, so the bass rule adds "/C"
		{"C F", "F5/C", "F5/C", "P4", "P5"},
		{"F3 C4", "F5", "F5", "P4", "P5"},
		{"C E", "major shell (M3)", "", "M3", "m6(♯5)"},
		{"C Eb", "minor shell (m3)", "", "m3(♭3)", "M6"},
		{"C Bb", "m7 shell", "", "m7(♭7)", "M2"},
		{"C B", "M7 shell", "", "M7", "m2(♭2)"},
		{"C D", "ambiguous dyad", "", "M2", "m7(♭7)"},
	}

	for _, c := range cases {
		t.Run(c.notes, func(t *testing.T) {
			res, err := Analyze(strings.Fields(c.notes), false)

			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(model.Interval, res.Kind)
			assert.Equal(c.guess, res.Interval.Guess)
			assert.Equal(c.label, res.Label)
			assert.Equal(c.up, res.Interval.Up)
			assert.Equal(c.down, res.Interval.Down)
			assert.Equal(c.label != "", res.Interval.PowerChord)
		})
	}
}

func TestAnalyzeDyadText(t *testing.T) {
	res, err := Analyze([]string{"C", "G"}, false)
	assert.NoError(t, err)
	assert.Equal(t, "Intervals:\n  C→G : P5\n  G→C : P4 (inversion)\nBest chord guess: C5", res.String())
}

func TestAnalyzeRejectsUnknownNotes(t *testing.T) {
	_, err := Analyze([]string{"C", "H", "G"}, false)

	var parseErr *note.ParseError
	assert := assert.New(t)
	assert.True(errors.As(err, &parseErr))
	assert.Equal("H", parseErr.Note)

	_, err = Explain([]string{"H"}, false)
	assert.Error(err)
}

func TestAnalyzeMidi(t *testing.T) {
	res := AnalyzeMidi([]uint8{52, 55, 60}, false)

	assert := assert.New(t)
	assert.Equal("C/E", res.Label)
	assert.Equal([]string{"E3", "G3", "C4"}, res.Notes)
	assert.Equal(model.PitchClassSet{0, 4, 7}, res.PitchClasses)
}

func TestAnalyzeAll(t *testing.T) {
	assert := assert.New(t)

	res, labels, err := AnalyzeAll([]string{"E3", "G3", "C4"}, false)
	assert.NoError(err)
	assert.Equal("C/E", res.Label)
	assert.Contains(labels, "C/E")
	assert.Contains(labels, "Cmaj7/E")
	assert.IsIncreasing(labels)
	assert.Equal(RenderAll(Match(res.PitchClasses), res.PitchClasses, pitches(52, 55, 60), false), labels)

	res, labels, err = AnalyzeAll([]string{"C", "G"}, false)
	assert.NoError(err)
	assert.Equal(model.Interval, res.Kind)
	assert.Empty(labels)

	_, _, err = AnalyzeAll([]string{"C", "H"}, false)
	var parseErr *note.ParseError
	assert.True(errors.As(err, &parseErr))
}

func TestExplain(t *testing.T) {
	ranked, err := Explain([]string{"C", "E", "G", "B"}, false)

	assert := assert.New(t)
	assert.NoError(err)
	assert.NotEmpty(ranked)
	assert.Equal("Cmaj7", ranked[0].Label)
	assert.Equal(model.Candidate{Root: 0, Quality: "maj7"}, ranked[0].Candidate)
}
