// Package bits provides bounds-checked little-endian integer extraction
// (there are no big-endian readers), MAC address formatting, and bitfield
// helpers shared by the radiotap and dot11 decoders.
package bits

import (
	"fmt"

	"github.com/pkg/errors"
)

// Truncated is returned when a read would run past the end of the buffer.
type Truncated struct {
	Field     string
	Needed    int
	Available int
}

func (e *Truncated) Error() string {
	return fmt.Sprintf("truncated reading %s: needed %d bytes, %d available",
		e.Field, e.Needed, e.Available)
}

func need(buf []byte, off, n int, field string) error {
	if off < 0 || off+n > len(buf) {
		avail := len(buf) - off
		if avail < 0 {
			avail = 0
		}
		return &Truncated{Field: field, Needed: n, Available: avail}
	}
	return nil
}

// U8 reads an unsigned 8-bit integer at off.
func U8(buf []byte, off int, field string) (uint8, error) {
	if err := need(buf, off, 1, field); err != nil {
		return 0, errors.WithStack(err)
	}
	return buf[off], nil
}

// I8 reads a signed 8-bit integer at off.
func I8(buf []byte, off int, field string) (int8, error) {
	v, err := U8(buf, off, field)
	return int8(v), err
}

// U16LE reads a little-endian unsigned 16-bit integer at off.
func U16LE(buf []byte, off int, field string) (uint16, error) {
	if err := need(buf, off, 2, field); err != nil {
		return 0, errors.WithStack(err)
	}
	return uint16(buf[off]) | uint16(buf[off+1])<<8, nil
}

// U32LE reads a little-endian unsigned 32-bit integer at off.
func U32LE(buf []byte, off int, field string) (uint32, error) {
	if err := need(buf, off, 4, field); err != nil {
		return 0, errors.WithStack(err)
	}
	return uint32(buf[off]) | uint32(buf[off+1])<<8 |
		uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24, nil
}

// U64LE reads a little-endian unsigned 64-bit integer at off.
func U64LE(buf []byte, off int, field string) (uint64, error) {
	if err := need(buf, off, 8, field); err != nil {
		return 0, errors.WithStack(err)
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(buf[off+i]) << (8 * uint(i))
	}
	return v, nil
}

// MAC reads 6 bytes at off and formats them as six colon-separated
// lowercase hex pairs (e.g. "04:a1:51:d0:dc:0f").
func MAC(buf []byte, off int, field string) (string, error) {
	if err := need(buf, off, 6, field); err != nil {
		return "", errors.WithStack(err)
	}
	b := buf[off : off+6]
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		b[0], b[1], b[2], b[3], b[4], b[5]), nil
}

// Bits extracts a width-bit field starting at bit lo (0 = least
// significant) from word.
func Bits(word uint64, lo, width uint) uint64 {
	mask := uint64(1)<<width - 1
	return (word >> lo) & mask
}

// Align rounds off up to the next multiple of n. n must be a power of two.
func Align(off, n int) int {
	return (off + n - 1) &^ (n - 1)
}
