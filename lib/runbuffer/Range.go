package runbuffer

// Range addresses the character (rune) offsets [Start, Start+Length) of a
// document. A zero-length range denotes an insertion point.
type Range struct {
	Start  int
	Length int
}

func NewRange(start int, length int) Range {
	return Range{Start: start, Length: length}
}

func (r Range) End() int {
	return r.Start + r.Length
}

func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Clamp restricts the range to [0, totalLength]. Out of bounds input is
// clamped, never rejected.
func (r Range) Clamp(totalLength int) Range {
	if r.Start < 0 {
		r.Length += r.Start
		r.Start = 0
	}
	if r.Start > totalLength {
		r.Start = totalLength
	}
	if r.Length < 0 {
		r.Length = 0
	}
	if r.End() > totalLength {
		r.Length = totalLength - r.Start
	}
	return r
}
