// Package leb128 encodes and decodes unsigned integers in the
// variable-length formats used by the WebAssembly binary format: LEB128 for
// the 32-bit range and a single raw byte for the 7-bit range.
package leb128

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrOverflow7 is returned when a decoded value exceeds the unsigned 7-bit range.
	ErrOverflow7 = errors.New("overflows a 7-bit integer")
	// ErrOverflow32 is returned when a decoded value exceeds the unsigned 32-bit range.
	ErrOverflow32 = errors.New("overflows a 32-bit integer")
)

// EncodeUint32 encodes the value into a buffer in LEB128 format.
func EncodeUint32(value uint32) (buf []byte) {
	for value >= 0x80 {
		buf = append(buf, byte(value&0x7f)|0x80)
		value >>= 7
	}
	return append(buf, byte(value))
}

// EncodeUint7 encodes the value as a single byte. The value must be in the
// 7-bit range, or DecodeUint7 will reject it.
func EncodeUint7(value uint8) []byte {
	return []byte{value}
}

// DecodeUint32 reads a LEB128 encoded uint32 along with the number of bytes
// consumed. It fails with ErrOverflow32 when the encoding carries bits beyond
// the 32-bit range, and with a wrapped I/O error when the stream ends early.
func DecodeUint32(r io.Reader) (ret uint32, bytesRead uint64, err error) {
	const (
		continuationMask uint32 = 1 << 7
		valueMask               = ^continuationMask
	)
	for shift := 0; shift < 32; shift += 7 {
		b, err := readByteAsUint32(r)
		if err != nil {
			return 0, 0, fmt.Errorf("readByte failed: %w", err)
		}
		bytesRead++
		// The fifth byte contributes bits 28..31, so only its low nibble fits.
		if shift == 28 && b > 0x0f {
			return 0, 0, ErrOverflow32
		}
		ret |= (b & valueMask) << shift
		if b&continuationMask == 0 {
			return ret, bytesRead, nil
		}
	}
	return 0, 0, ErrOverflow32
}

// DecodeUint7 reads a single byte whose value must be in the 7-bit range,
// failing with ErrOverflow7 otherwise.
func DecodeUint7(r io.Reader) (uint8, error) {
	b := make([]byte, 1)
	if _, err := io.ReadFull(r, b); err != nil {
		return 0, fmt.Errorf("readByte failed: %w", err)
	}
	if b[0] > 0x7f {
		return 0, ErrOverflow7
	}
	return b[0], nil
}

func readByteAsUint32(r io.Reader) (uint32, error) {
	b := make([]byte, 1)
	_, err := io.ReadFull(r, b)
	return uint32(b[0]), err
}
