package namesec

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/wasmkit/namesec/leb128"
)

// decodeName reads a size-prefixed UTF-8 string.
func decodeName(r io.Reader) (string, error) {
	size, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return "", fmt.Errorf("failed to read the size of a name: %w", err)
	}

	buf, err := readExactly(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to read the bytes of a name: %w", err)
	}

	if !utf8.Valid(buf) {
		return "", ErrInvalidUTF8
	}
	return string(buf), nil
}

// encodeName writes the string prefixed by its size.
func encodeName(name string) []byte {
	return append(leb128.EncodeUint32(uint32(len(name))), name...)
}
