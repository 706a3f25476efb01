package display

import "strconv"

// Seven-segment images for '0'..'9' (bit0 = segment a ... bit6 = segment g).
var digitSegments = [10]byte{0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07, 0x7F, 0x6F}

// Bogey is the optional digit shown on the bogey counter. The zero value is
// a blank counter.
type Bogey struct {
	digit int
	set   bool
}

// NoBogey is a blank counter.
var NoBogey = Bogey{}

// BogeyDigit returns a counter showing d. Values outside 0-9 are treated as
// "no digit".
func BogeyDigit(d int) Bogey {
	if d < 0 || d > 9 {
		return NoBogey
	}
	return Bogey{digit: d, set: true}
}

// Valid reports whether a digit is shown.
func (b Bogey) Valid() bool { return b.set }

// Digit returns the shown digit and whether one is set.
func (b Bogey) Digit() (int, bool) { return b.digit, b.set }

func (b Bogey) segments() byte {
	if !b.set {
		return 0x00
	}
	return digitSegments[b.digit]
}

func (b Bogey) String() string {
	if !b.set {
		return ""
	}
	return strconv.Itoa(b.digit)
}
