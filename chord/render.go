package chord

import (
	"sort"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/theory"
)

// Render names a candidate, adding "/bass" when the lowest pitch is a played
// note other than the root.
func Render(c model.Candidate, set model.PitchClassSet, pitches []model.Pitch, preferFlats bool) string {
	low, ok := lowest(pitches)
	if !ok {
		return ""
	}
	base := note.Name(c.Root, preferFlats) + theory.Symbol(c.Quality)
	bass := low.Class()
	if bass != c.Root && set.Contains(bass) {
		return base + "/" + note.Name(bass, preferFlats)
	}
	return base
}

// RenderAll returns the distinct labels of all candidates, sorted.
func RenderAll(cands []model.Candidate, set model.PitchClassSet, pitches []model.Pitch, preferFlats bool) []string {
	seen := make(map[string]bool)
	var res []string
	for _, c := range cands {
		label := Render(c, set, pitches, preferFlats)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		res = append(res, label)
	}
	sort.Strings(res)
	return res
}
