// Package binary implements the deterministic little endian encoding used for
// runtime snapshots.
package binary

import (
	"encoding/binary"
)

var (
	LittleEndian  = binary.LittleEndian
	DefaultEndian = LittleEndian
)
