package theory

import "math/bits"

// IntervalSet holds interval classes 0-11 as bits.
type IntervalSet uint16

func SetOf(intervals ...int) IntervalSet {
	var s IntervalSet
	for _, i := range intervals {
		s = s.With(i)
	}
	return s
}

func (s IntervalSet) With(i int) IntervalSet {
	return s | 1<<uint(((i%12)+12)%12)
}

func (s IntervalSet) Has(i int) bool {
	return s&(1<<uint(((i%12)+12)%12)) != 0
}

func (s IntervalSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s IntervalSet) SubsetOf(o IntervalSet) bool {
	return s&^o == 0
}

func (s IntervalSet) Intersect(o IntervalSet) IntervalSet {
	return s & o
}

// Slice lists the members in ascending order.
func (s IntervalSet) Slice() []int {
	res := make([]int, 0, s.Len())
	for i := 0; i < 12; i++ {
		if s.Has(i) {
			res = append(res, i)
		}
	}
	return res
}
