// Package namesec reads and writes the subsections of the "name" custom
// section defined by the WebAssembly binary format. Known subsections decode
// into typed values; unknown ones are captured verbatim so that any correctly
// formed input re-encodes byte-exactly.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-namesec
package namesec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/wasmkit/namesec/leb128"
)

const (
	// NameTypeModule identifies the subsection holding only the module name.
	NameTypeModule = uint8(0)
	// NameTypeFunctionNames identifies the subsection mapping function indices to function names, in ascending
	// order by function index.
	NameTypeFunctionNames = uint8(1)
	// NameTypeLocalNames identifies the subsection mapping function indices to a map of local indices to their
	// names, in ascending order by function and local index.
	NameTypeLocalNames = uint8(2)
)

// Section is one decoded subsection of the "name" custom section. Exactly
// four types implement it: ModuleNameSection, FunctionNameSection,
// LocalNameSection and, for any tag the living standard doesn't define,
// UnparsedNameSection.
type Section interface {
	// NameType returns the tag byte identifying how the payload is interpreted.
	NameType() uint8

	// EncodeData returns the subsection payload, without the tag and size framing.
	EncodeData() []byte
}

// DecodeSection reads one subsection: a tag byte in the 7-bit range, the
// payload size as a varuint32, and the payload itself. Tags 0, 1 and 2 decode
// into their typed Section, bounded to exactly the declared payload size; any
// other tag is captured verbatim as an UnparsedNameSection.
//
// Errors from r propagate wrapped, including io.ErrUnexpectedEOF when the
// stream ends before a declared size is satisfied. A known subsection whose
// payload doesn't occupy its whole declared size fails with
// ErrSectionSizeMismatch.
func DecodeSection(r io.Reader) (Section, error) {
	nameType, err := leb128.DecodeUint7(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the name type: %w", err)
	}

	dataSize, _, err := leb128.DecodeUint32(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read the size of subsection[%d]: %w", nameType, err)
	}

	var decode func(io.Reader) (Section, error)
	switch nameType {
	case NameTypeModule:
		decode = decodeModuleNameData
	case NameTypeFunctionNames:
		decode = decodeFunctionNamesData
	case NameTypeLocalNames:
		decode = decodeLocalNamesData
	default:
		data, err := readExactly(r, dataSize)
		if err != nil {
			return nil, fmt.Errorf("failed to read subsection[%d]: %w", nameType, err)
		}
		return &UnparsedNameSection{Tag: nameType, Data: data}, nil
	}

	lr := &io.LimitedReader{R: r, N: int64(dataSize)}
	s, err := decode(lr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode subsection[%d]: %w", nameType, err)
	}
	if lr.N != 0 {
		return nil, fmt.Errorf("subsection[%d] left %d bytes unread: %w", nameType, lr.N, ErrSectionSizeMismatch)
	}
	return s, nil
}

// EncodeSection writes the section with its tag and size framing: the tag
// byte, the payload size as a varuint32, and the payload. Errors from w
// propagate; a failed write is not rolled back.
func EncodeSection(w io.Writer, s Section) error {
	if _, err := w.Write(encodeSubsection(s.NameType(), s.EncodeData())); err != nil {
		return fmt.Errorf("failed to write subsection[%d]: %w", s.NameType(), err)
	}
	return nil
}

// encodeSubsection returns a buffer with the given payload behind its tag and
// size framing.
func encodeSubsection(nameType uint8, content []byte) []byte {
	result := leb128.EncodeUint7(nameType)
	result = append(result, leb128.EncodeUint32(uint32(len(content)))...)
	return append(result, content...)
}

// readExactly reads size bytes, growing the buffer as the stream proves it
// has them. The size field is attacker-controllable, so it must not be
// trusted for an up-front allocation.
func readExactly(r io.Reader, size uint32) ([]byte, error) {
	var buf bytes.Buffer
	if n, err := io.Copy(&buf, io.LimitReader(r, int64(size))); err != nil {
		return nil, err
	} else if n < int64(size) {
		return nil, io.ErrUnexpectedEOF
	}
	return buf.Bytes(), nil
}
