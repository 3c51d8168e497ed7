package chord

import (
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
)

var dominantCore = theory.SetOf(4, 10)

// rotate re-expresses the set relative to root.
func rotate(set model.PitchClassSet, root model.PitchClass) theory.IntervalSet {
	var rel theory.IntervalSet
	for _, pc := range set {
		rel = rel.With(int(pc - root))
	}
	return rel
}

func accepts(t theory.Template, rel theory.IntervalSet) bool {
	if t.Quality == theory.AlteredDominant {
		return dominantCore.SubsetOf(rel) && rel.Intersect(theory.AlterationTones) != 0
	}
	return rel.SubsetOf(t.Intervals)
}

// Match returns every (root, quality) reading of the set. Roots are tried in
// ascending order and qualities in dictionary order; the first occurrence of
// a pair decides its position.
func Match(set model.PitchClassSet) []model.Candidate {
	if len(set) < 2 {
		return nil
	}

	templates := theory.Templates()
	seen := make(map[model.Candidate]bool)
	var res []model.Candidate
	for _, root := range set {
		rel := rotate(set, root)
		for _, t := range templates {
			if !accepts(t, rel) {
				continue
			}
			c := model.Candidate{Root: root, Quality: t.Quality}
			if !seen[c] {
				seen[c] = true
				res = append(res, c)
			}
		}
	}
	return res
}
