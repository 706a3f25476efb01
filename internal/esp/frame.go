// Package esp implements framing for the ESP serial bus used by V1-style
// radar detectors and their accessories.
package esp

import (
	"errors"
	"fmt"
)

const (
	startOfFrame = 0xAA
	endOfFrame   = 0xAB

	destBase = 0xD0
	srcBase  = 0xE0

	// headerLen covers SOF, dest, src, message id and length.
	headerLen = 5
	// Overhead is the number of framing bytes around a payload.
	Overhead = headerLen + 2

	// MaxPayload is the largest payload whose length byte (payload + checksum)
	// still fits in one byte.
	MaxPayload = 0xFF - 1
)

// Device ids on the ESP bus. Only the low nibble is transmitted.
const (
	DeviceConcealedDisplay = 0x0
	DeviceRemoteAudio      = 0x1
	DeviceSavvy            = 0x2
	DeviceThirdParty1      = 0x3
	DeviceThirdParty2      = 0x4
	DeviceThirdParty3      = 0x5
	DeviceV1Connection     = 0x6
	DeviceGeneralBroadcast = 0x8
	DeviceV1NoChecksum     = 0x9
	DeviceV1               = 0xA
)

var ErrPayloadTooLong = errors.New("esp payload too long")

// Frame wraps payload in an ESP packet addressed from src to dest:
//
//	AA, D0|dest, E0|src, msgID, len(payload)+1, payload..., checksum, AB
//
// dest and src are masked to 4 bits and msgID to 8 bits. The checksum is the
// sum of every preceding byte, mod 256.
func Frame(dest, src, msgID int, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrPayloadTooLong, len(payload), MaxPayload)
	}

	out := make([]byte, 0, len(payload)+Overhead)
	out = append(out,
		startOfFrame,
		destAddr(dest),
		srcAddr(src),
		byte(msgID&0xFF),
		byte(len(payload)+1),
	)
	out = append(out, payload...)
	out = append(out, Checksum(out), endOfFrame)
	return out, nil
}

// Checksum returns the 8-bit additive checksum of b.
func Checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}

func destAddr(id int) byte { return destBase | byte(id&0x0F) }

func srcAddr(id int) byte { return srcBase | byte(id&0x0F) }
