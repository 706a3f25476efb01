// Package render formats packets for humans and firmware sources.
package render

import (
	"fmt"
	"strings"
)

// CArray renders b as a C initializer: {0xAA, 0xD8, ...}.
func CArray(b []byte) string {
	var sb strings.Builder
	sb.Grow(2 + len(b)*6)
	sb.WriteByte('{')
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02X", v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Hex renders b as space separated upper-case hex: AA D8 ...
func Hex(b []byte) string {
	return fmt.Sprintf("% X", b)
}
