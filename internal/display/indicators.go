package display

import "fmt"

// Band is the frequency band indicator. At most one band is lit per image.
type Band int

const (
	BandNone Band = iota
	BandLaser
	BandKa
	BandK
	BandX
)

// Direction is the arrow indicator. At most one arrow is lit per image.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionFront
	DirectionSide
	DirectionRear
)

// Band/arrow byte layout. Bit 4 is the mute indicator and is never set here.
var (
	bandBits = [...]byte{
		BandNone:  0x00,
		BandLaser: 1 << 0,
		BandKa:    1 << 1,
		BandK:     1 << 2,
		BandX:     1 << 3,
	}
	directionBits = [...]byte{
		DirectionNone:  0x00,
		DirectionFront: 1 << 5,
		DirectionSide:  1 << 6,
		DirectionRear:  1 << 7,
	}

	bandNames      = [...]string{"None", "Laser", "Ka Band", "K Band", "X Band"}
	directionNames = [...]string{"None", "Front Arrow", "Side Arrow", "Rear Arrow"}
)

func (b Band) valid() bool { return b >= BandNone && int(b) < len(bandBits) }

func (b Band) bit() (byte, error) {
	if !b.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBand, int(b))
	}
	return bandBits[b], nil
}

func (b Band) String() string {
	if !b.valid() {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

func (d Direction) valid() bool { return d >= DirectionNone && int(d) < len(directionBits) }

func (d Direction) bit() (byte, error) {
	if !d.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
	}
	return directionBits[d], nil
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
