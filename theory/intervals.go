package theory

var intervalNames = [12]string{
	"P1/8",
	"m2(♭2)",
	"M2",
	"m3(♭3)",
	"M3",
	"P4",
	"TT(♯4/♭5)",
	"P5",
	"m6(♯5)",
	"M6",
	"m7(♭7)",
	"M7",
}

// NameInterval names any semitone distance after reducing it modulo 12.
func NameInterval(semitones int) string {
	return intervalNames[((semitones%12)+12)%12]
}
