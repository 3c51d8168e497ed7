package chord

import (
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
	"github.com/jsphweid/chordid/theory"
)

var shells = map[int]string{
	3:  "minor shell (m3)",
	4:  "major shell (M3)",
	10: "m7 shell",
	11: "M7 shell",
}

type parsed struct {
	notes   []string
	set     model.PitchClassSet
	pitches []model.Pitch
}

func parse(notes []string) (parsed, error) {
	pcs := make([]model.PitchClass, 0, len(notes))
	pitches := make([]model.Pitch, 0, len(notes))
	for _, n := range notes {
		pc, p, err := note.Parse(n)
		if err != nil {
			return parsed{}, err
		}
		pcs = append(pcs, pc)
		pitches = append(pitches, p)
	}
	return parsed{notes: notes, set: note.Normalize(pcs), pitches: pitches}, nil
}

func fromMidi(keys []uint8, preferFlats bool) parsed {
	p := parsed{
		notes:   make([]string, 0, len(keys)),
		pitches: make([]model.Pitch, 0, len(keys)),
	}
	pcs := make([]model.PitchClass, 0, len(keys))
	for _, k := range keys {
		pitch := model.Pitch(k)
		p.notes = append(p.notes, note.NameMidi(k, preferFlats))
		p.pitches = append(p.pitches, pitch)
		pcs = append(pcs, pitch.Class())
	}
	p.set = note.Normalize(pcs)
	return p
}

// Analyze names the chord, interval or note formed by the given note spellings.
// An unrecognized spelling returns a *note.ParseError and no result.
func Analyze(notes []string, preferFlats bool) (model.Result, error) {
	p, err := parse(notes)
	if err != nil {
		return model.Result{}, err
	}
	return analyze(p, preferFlats), nil
}

// AnalyzeMidi is Analyze for MIDI key numbers.
func AnalyzeMidi(keys []uint8, preferFlats bool) model.Result {
	return analyze(fromMidi(keys, preferFlats), preferFlats)
}

// AnalyzeAll is Analyze that also returns every matching chord name, sorted.
// Sets of fewer than three pitch classes have no names.
func AnalyzeAll(notes []string, preferFlats bool) (model.Result, []string, error) {
	p, err := parse(notes)
	if err != nil {
		return model.Result{}, nil, err
	}
	res := analyze(p, preferFlats)
	if len(p.set) < 3 {
		return res, nil, nil
	}
	return res, RenderAll(Match(p.set), p.set, p.pitches, preferFlats), nil
}

// Explain scores every reading of the notes, best first.
func Explain(notes []string, preferFlats bool) ([]model.ScoredCandidate, error) {
	p, err := parse(notes)
	if err != nil {
		return nil, err
	}
	return Rank(Match(p.set), p.set, p.pitches, preferFlats), nil
}

func analyze(p parsed, preferFlats bool) model.Result {
	res := model.Result{Notes: p.notes, PitchClasses: p.set}
	switch len(p.set) {
	case 0:
		res.Kind = model.NoNotes
	case 1:
		res.Kind = model.SingleNote
		res.Label = note.Name(p.set[0], preferFlats)
	case 2:
		analyzeDyad(&res, p, preferFlats)
	default:
		analyzeChord(&res, p, preferFlats)
	}
	return res
}

func analyzeDyad(res *model.Result, p parsed, preferFlats bool) {
	a, b := p.set[0], p.set[1]
	d := (int(b-a) + 12) % 12
	iv := &model.IntervalReport{
		Lower:    note.Name(a, preferFlats),
		Upper:    note.Name(b, preferFlats),
		Distance: d,
		Up:       theory.NameInterval(int(b - a)),
		Down:     theory.NameInterval(int(a - b)),
	}

	if d == 7 || d == 5 {
		root := a
		if d == 5 {
			root = b
		}
		iv.PowerChord = true
		iv.Guess = Render(model.Candidate{Root: root, Quality: "5"}, p.set, p.pitches, preferFlats)
		res.Label = iv.Guess
	} else if guess, ok := shells[d]; ok {
		iv.Guess = guess
	} else {
		iv.Guess = "ambiguous dyad"
	}

	res.Kind = model.Interval
	res.Interval = iv
}

func analyzeChord(res *model.Result, p parsed, preferFlats bool) {
	cands := Match(p.set)
	best, ok := Best(cands, p.set, p.pitches)
	if !ok {
		res.Kind = model.NoChord
		return
	}
	best.Label = Render(best.Candidate, p.set, p.pitches, preferFlats)

	if logging.DebugEnabled() {
		for _, sc := range Rank(cands, p.set, p.pitches, preferFlats) {
			logging.WithFields(logging.Fields{
				"label": sc.Label,
				"score": sc.Score,
				"terms": sc.Terms,
			}).Debug("scored candidate")
		}
	}

	res.Kind = model.Chord
	res.Label = best.Label
	res.Best = &best
}
