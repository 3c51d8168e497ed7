// Package theory holds the read-only music tables shared by the analyzer:
// interval names, chord templates and their display symbols.
package theory

type Template struct {
	Quality   string
	Intervals IntervalSet
	Symbol    string
}

const AlteredDominant = "7alt"

// AlterationTones are the ♭9, ♯9, ♭5 and ♯5/♭13 interval classes.
var AlterationTones = SetOf(1, 3, 6, 8)

// declaration order is the tie-break order for equal scores
var templates = [...]Template{
	{"maj", SetOf(0, 4, 7), ""},
	{"min", SetOf(0, 3, 7), "m"},
	{"dim", SetOf(0, 3, 6), "dim"},
	{"aug", SetOf(0, 4, 8), "+"},
	{"sus2", SetOf(0, 2, 7), "sus2"},
	{"sus4", SetOf(0, 5, 7), "sus4"},
	{"5", SetOf(0, 7), "5"},
	{"6", SetOf(0, 4, 7, 9), "6"},
	{"m6", SetOf(0, 3, 7, 9), "m6"},
	{"add9", SetOf(0, 4, 7, 2), "add9"},
	{"add4", SetOf(0, 4, 7, 5), "add4"},
	{"madd9", SetOf(0, 3, 7, 2), "m(add9)"},
	{"maj7", SetOf(0, 4, 7, 11), "maj7"},
	{"7", SetOf(0, 4, 7, 10), "7"},
	{"m7", SetOf(0, 3, 7, 10), "m7"},
	{"mMaj7", SetOf(0, 3, 7, 11), "m(maj7)"},
	{"ø7", SetOf(0, 3, 6, 10), "m7♭5"},
	{"dim7", SetOf(0, 3, 6, 9), "dim7"},
	{"+maj7", SetOf(0, 4, 8, 11), "+maj7"},
	{"+7", SetOf(0, 4, 8, 10), "+7"},
	{"9", SetOf(0, 4, 7, 10, 2), "9"},
	{"maj9", SetOf(0, 4, 7, 11, 2), "maj9"},
	{"m9", SetOf(0, 3, 7, 10, 2), "m9"},
	{"11", SetOf(0, 4, 7, 10, 2, 5), "11"},
	{"m11", SetOf(0, 3, 7, 10, 2, 5), "m11"},
	{"13", SetOf(0, 4, 7, 10, 2, 9), "13"},
	{"maj13", SetOf(0, 4, 7, 11, 2, 9), "maj13"},
	{"m13", SetOf(0, 3, 7, 10, 2, 9), "m13"},
	{"7♭5", SetOf(0, 4, 6, 10), "7♭5"},
	{"7♯5", SetOf(0, 4, 8, 10), "7♯5"},
	{"7♭9", SetOf(0, 4, 7, 10, 1), "7♭9"},
	{"7♯9", SetOf(0, 4, 7, 10, 3), "7♯9"},
	{"7♭13", SetOf(0, 4, 7, 10, 8), "7♭13"},
	{AlteredDominant, SetOf(0, 4, 10), "7alt"},
}

var byQuality = func() map[string]int {
	m := make(map[string]int, len(templates))
	for i, t := range templates {
		m[t.Quality] = i
	}
	return m
}()

// Templates returns a copy of the dictionary in declaration order.
func Templates() []Template {
	res := make([]Template, len(templates))
	copy(res, templates[:])
	return res
}

func Lookup(quality string) (Template, bool) {
	i, ok := byQuality[quality]
	if !ok {
		return Template{}, false
	}
	return templates[i], true
}

// Symbol is the printable suffix for a quality, or the quality itself if unknown.
func Symbol(quality string) string {
	if t, ok := Lookup(quality); ok {
		return t.Symbol
	}
	return quality
}

// IsAlteredFamily reports dominant qualities that carry an alteration tone.
func IsAlteredFamily(quality string) bool {
	switch quality {
	case AlteredDominant, "7♭5", "7♯5", "7♭9", "7♯9", "7♭13":
		return true
	}
	return false
}

// HasNoThird reports qualities whose identity does not depend on a third.
func HasNoThird(quality string) bool {
	switch quality {
	case "5", "sus2", "sus4":
		return true
	}
	return false
}

// IsBasicTriad reports the six three-tone triad and suspension qualities.
func IsBasicTriad(quality string) bool {
	switch quality {
	case "maj", "min", "dim", "aug", "sus2", "sus4":
		return true
	}
	return false
}
