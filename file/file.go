// Package file labels the chords found in standard MIDI files.
package file

import (
	"github.com/jsphweid/chordid/chord"
	"github.com/jsphweid/chordid/constants"
	"github.com/jsphweid/chordid/midi"
	"github.com/jsphweid/chordid/model"
	"github.com/jsphweid/chordid/note"
)

type Label struct {
	// milliseconds from the start of the file
	Offset uint32
	Keys   model.Notes
	Result model.Result
}

type Report struct {
	Path   string
	Labels []Label
}

// Analyzer labels files and remembers results for sets it has seen before.
// It is not safe for concurrent use.
type Analyzer struct {
	PreferFlats bool
	cache       map[string]model.Result
	hits        int
}

func NewAnalyzer(preferFlats bool) *Analyzer {
	return &Analyzer{PreferFlats: preferFlats, cache: make(map[string]model.Result)}
}

func (a *Analyzer) CacheHits() int {
	return a.hits
}

func (a *Analyzer) analyze(keys []uint8) model.Result {
	key := chord.MidiChordKey(keys)
	if res, ok := a.cache[key]; ok {
		a.hits++
		res.Notes = make([]string, len(keys))
		for i, k := range keys {
			res.Notes[i] = note.NameMidi(k, a.PreferFlats)
		}
		return res
	}
	res := chord.AnalyzeMidi(keys, a.PreferFlats)
	a.cache[key] = res
	return res
}

// Analyze labels every chord in the file that has at least two pitch classes.
func (a *Analyzer) Analyze(path string) (Report, error) {
	report := Report{Path: path}
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return report, err
	}
	chords, err := chord.GetChords(parsed)
	if err != nil {
		return report, err
	}
	report.Labels = a.Label(chords)
	return report, nil
}

// Label analyzes chords already read from a file.
func (a *Analyzer) Label(chords []model.Sounding) []Label {
	var res []Label
	for _, c := range chords {
		// ignore really short or really long chords
		if len(c.Notes) < constants.MinChordNotes || len(c.Notes) > constants.MaxChordNotes {
			continue
		}
		r := a.analyze(c.Notes)
		if r.Kind == model.NoNotes || r.Kind == model.SingleNote {
			continue
		}
		res = append(res, Label{Offset: c.Offset, Keys: c.Notes, Result: r})
	}
	return res
}

// Collapse drops labels that repeat the one before them.
func (r Report) Collapse() []Label {
	var res []Label
	for _, l := range r.Labels {
		if len(res) > 0 && res[len(res)-1].Result.Short() == l.Result.Short() {
			continue
		}
		res = append(res, l)
	}
	return res
}
