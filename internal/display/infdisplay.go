// Package display builds ESP infDisplayData (0x31) messages, which drive the
// bogey counter, band/arrow indicators, signal bar and volume of a remote
// alert display.
package display

import (
	"errors"
	"fmt"

	"v1-esp/internal/esp"
)

const (
	// MsgInfDisplayData is the ESP message id of the display image message.
	MsgInfDisplayData = 0x31

	// PayloadLen is the fixed payload size of an infDisplayData message.
	PayloadLen = 8

	MaxStrength = 8

	aux1 = 0x50
	aux2 = 0x00
)

var (
	ErrStrengthRange    = errors.New("signal strength out of range")
	ErrUnknownBand      = errors.New("unknown band")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Selection is the semantic content of one display image.
type Selection struct {
	Bogey     Bogey
	Band      Band
	Direction Direction
	Blink     bool
	Strength  int // 0-8 bars
	// Volumes are 4-bit; higher bits are dropped.
	MainVolume int
	MuteVolume int
}

// Payload is the 8-byte infDisplayData payload. Image1 is the steady state,
// Image2 the state shown during the off phase of a blink.
type Payload struct {
	DigitImage1 byte
	DigitImage2 byte
	Strength    byte
	BandImage1  byte
	BandImage2  byte
	Aux1        byte
	Aux2        byte
	Volume      byte
}

// Bytes returns the payload in wire order.
func (p Payload) Bytes() []byte {
	return []byte{
		p.DigitImage1,
		p.DigitImage2,
		p.Strength,
		p.BandImage1,
		p.BandImage2,
		p.Aux1,
		p.Aux2,
		p.Volume,
	}
}

// Build computes the infDisplayData payload for s.
func Build(s Selection) (Payload, error) {
	bar, err := strengthBar(s.Strength)
	if err != nil {
		return Payload{}, err
	}
	bandBits, err := s.Band.bit()
	if err != nil {
		return Payload{}, err
	}
	dirBits, err := s.Direction.bit()
	if err != nil {
		return Payload{}, err
	}

	p := Payload{
		DigitImage1: s.Bogey.segments(),
		Strength:    bar,
		BandImage1:  bandBits | dirBits,
		Aux1:        aux1,
		Aux2:        aux2,
		Volume:      byte(s.MainVolume&0x0F)<<4 | byte(s.MuteVolume&0x0F),
	}

	p.BandImage2 = p.BandImage1
	p.DigitImage2 = p.DigitImage1
	if s.Blink {
		p.BandImage2 = 0x00
		// An empty counter never toggles.
		if s.Bogey.Valid() {
			p.DigitImage2 = 0x00
		}
	}
	return p, nil
}

// Frame builds s and frames it as an infDisplayData broadcast from the V1.
func Frame(s Selection) ([]byte, error) {
	p, err := Build(s)
	if err != nil {
		return nil, err
	}
	return esp.Frame(esp.DeviceGeneralBroadcast, esp.DeviceV1, MsgInfDisplayData, p.Bytes())
}

// strengthBar lights the lowest n bits of the signal bar.
func strengthBar(n int) (byte, error) {
	if n < 0 || n > MaxStrength {
		return 0, fmt.Errorf("%w: %d (want 0-%d)", ErrStrengthRange, n, MaxStrength)
	}
	return byte((1 << n) - 1), nil
}
