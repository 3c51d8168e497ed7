package note

import (
	"github.com/jsphweid/chordid/model"
	"golang.org/x/exp/slices"
)

// Normalize reduces pitch classes modulo 12, drops duplicates and sorts them.
func Normalize(pcs []model.PitchClass) model.PitchClassSet {
	res := make(model.PitchClassSet, 0, len(pcs))
	for _, pc := range pcs {
		res = append(res, model.PitchClass(((int(pc)%12)+12)%12))
	}
	slices.Sort(res)
	return slices.Compact(res)
}
