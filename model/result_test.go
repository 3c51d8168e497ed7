package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultKindText(t *testing.T) {
	assert := assert.New(t)
	for kind := NoNotes; kind <= NoChord; kind++ {
		text, err := kind.MarshalText()
		assert.NoError(err)

		var back ResultKind
		assert.NoError(back.UnmarshalText(text))
		assert.Equal(kind, back)
	}

	var k ResultKind
	assert.Error(k.UnmarshalText([]byte("chordish")))
}

func TestResultJSON(t *testing.T) {
	res := Result{Kind: Chord, Notes: []string{"C", "E", "G"}, PitchClasses: PitchClassSet{0, 4, 7}, Label: "C"}
	b, err := json.Marshal(res)

	assert := assert.New(t)
	assert.NoError(err)
	assert.JSONEq(`{"kind":"chord","notes":["C","E","G"],"pitch_classes":[0,4,7],"label":"C"}`, string(b))
}

func TestResultShort(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", Result{Kind: NoNotes}.Short())
	assert.Equal("E", Result{Kind: SingleNote, Label: "E"}.Short())
	assert.Equal("m7 shell", Result{Kind: Interval, Interval: &IntervalReport{Guess: "m7 shell"}}.Short())
	assert.Equal("No chord.", Result{Kind: NoChord}.Short())
}

func TestPitchClassSet(t *testing.T) {
	set := PitchClassSet{0, 4, 7}

	assert := assert.New(t)
	assert.True(set.Contains(4))
	assert.False(set.Contains(5))
	assert.Equal([]int{0, 4, 7}, set.Ints())
	assert.Equal(PitchClass(1), Pitch(61).Class())
}

func TestSoundingAndChordKindCoexist(t *testing.T) {
	s := Sounding{Offset: 500, Notes: Notes{60, 64, 67}}
	res := Result{Kind: Chord, Label: "C"}

	assert := assert.New(t)
	assert.Equal(uint32(500), s.Offset)
	assert.Equal("chord", res.Kind.String())
	assert.Equal("C", res.Short())
}
