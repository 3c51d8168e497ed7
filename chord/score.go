package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/theory"
	"gonum.org/v1/gonum/floats"
)

// Scoring weights. The sum is a heuristic, tune here rather than in the code below.
const (
	CoverageWeight          = 0.90
	MissingThirdPenalty     = 0.30
	MissingSeventhPenalty   = 0.15
	ComplexityPerTone       = 0.04
	// EvidencedExtensionScale scales complexity when a 9th, 11th or 13th is actually played.
	EvidencedExtensionScale = 0.4
	RootBassBonus           = 0.15
	ThirdBassBonus          = 0.05
	FifthBassBonus          = 0.03
	AlterationToneBonus     = 0.08
	NoAlterationPenalty     = 0.10
	CleanTriadBonus         = 0.12
)

var extensionTones = theory.SetOf(2, 5, 9)

func impliesSeventh(quality string) bool {
	for _, ext := range []string{"7", "9", "11", "13"} {
		if strings.Contains(quality, ext) {
			return true
		}
	}
	return false
}

func lowest(pitches []model.Pitch) (model.Pitch, bool) {
	if len(pitches) == 0 {
		return 0, false
	}
	low := pitches[0]
	for _, p := range pitches[1:] {
		if p < low {
			low = p
		}
	}
	return low, true
}

// Breakdown computes each signed scoring term for one candidate.
func Breakdown(c model.Candidate, set model.PitchClassSet, pitches []model.Pitch) model.ScoreTerms {
	var terms model.ScoreTerms
	t, ok := theory.Lookup(c.Quality)
	if !ok {
		return terms
	}
	rel := rotate(set, c.Root)

	terms.Coverage = CoverageWeight * float64(rel.Len()) / float64(t.Intervals.Len())

	hasThird := rel.Has(3) || rel.Has(4)
	hasSeventh := rel.Has(10) || rel.Has(11)
	if !theory.HasNoThird(c.Quality) && !hasThird {
		terms.MissingThird = -MissingThirdPenalty
	}
	if impliesSeventh(c.Quality) && !hasSeventh {
		terms.MissingSeven = -MissingSeventhPenalty
	}

	complexity := float64(t.Intervals.Len()-3) * ComplexityPerTone
	if rel.Intersect(extensionTones) != 0 {
		complexity *= EvidencedExtensionScale
	}
	terms.Complexity = -complexity

	if low, ok := lowest(pitches); ok {
		bass := int(low.Class())
		root := int(c.Root)
		switch {
		case bass == root:
			terms.BassFit = RootBassBonus
		case (rel.Has(4) && bass == (root+4)%12) || (rel.Has(3) && bass == (root+3)%12):
			terms.BassFit = ThirdBassBonus
		case rel.Has(7) && bass == (root+7)%12:
			terms.BassFit = FifthBassBonus
		}
	}

	if theory.IsAlteredFamily(c.Quality) {
		if alterations := rel.Intersect(theory.AlterationTones).Len(); alterations > 0 {
			terms.Realism = AlterationToneBonus * float64(alterations)
		} else {
			terms.Realism = -NoAlterationPenalty
		}
	}

	if len(set) == 3 && rel == t.Intervals && theory.IsBasicTriad(c.Quality) {
		terms.CleanTriad = CleanTriadBonus
	}
	return terms
}

func total(t model.ScoreTerms) float64 {
	return floats.Sum([]float64{
		t.Coverage,
		t.MissingThird,
		t.MissingSeven,
		t.Complexity,
		t.BassFit,
		t.Realism,
		t.CleanTriad,
	})
}

// Score is the plausibility of a candidate; higher is better.
func Score(c model.Candidate, set model.PitchClassSet, pitches []model.Pitch) float64 {
	return total(Breakdown(c, set, pitches))
}

// Best picks the highest scoring candidate. Ties go to the earliest one.
func Best(cands []model.Candidate, set model.PitchClassSet, pitches []model.Pitch) (model.ScoredCandidate, bool) {
	if len(cands) == 0 {
		return model.ScoredCandidate{}, false
	}
	scores := make([]float64, len(cands))
	for i, c := range cands {
		scores[i] = Score(c, set, pitches)
	}
	i := floats.MaxIdx(scores)
	return model.ScoredCandidate{
		Candidate: cands[i],
		Score:     scores[i],
		Terms:     Breakdown(cands[i], set, pitches),
	}, true
}

// Rank scores and labels every candidate, best first. Equal scores keep
// their match order.
func Rank(cands []model.Candidate, set model.PitchClassSet, pitches []model.Pitch, preferFlats bool) []model.ScoredCandidate {
	res := make([]model.ScoredCandidate, 0, len(cands))
	for _, c := range cands {
		terms := Breakdown(c, set, pitches)
		res = append(res, model.ScoredCandidate{
			Candidate: c,
			Score:     total(terms),
			Terms:     terms,
			Label:     Render(c, set, pitches, preferFlats),
		})
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res
}
