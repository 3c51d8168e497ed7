package model

// PitchClass is a note identity modulo octave, C=0 ... B=11.
type PitchClass int

// Pitch is an absolute pitch number where C4 is 60.
type Pitch int

func (p Pitch) Class() PitchClass {
	return PitchClass(((int(p) % 12) + 12) % 12)
}

// PitchClassSet is sorted ascending and free of duplicates.
type PitchClassSet []PitchClass

func (s PitchClassSet) Contains(pc PitchClass) bool {
	for _, v := range s {
		if v == pc {
			return true
		}
	}
	return false
}

func (s PitchClassSet) Ints() []int {
	res := make([]int, len(s))
	for i, v := range s {
		res[i] = int(v)
	}
	return res
}
