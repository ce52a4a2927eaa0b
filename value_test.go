package namesec

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeName(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "empty",
			input:    []byte{0x00},
			expected: "",
		},
		{
			name:     "ascii",
			input:    []byte{0x05, 'h', 'e', 'l', 'l', 'o'},
			expected: "hello",
		},
		{
			name:     "multi-byte runes",
			input:    append([]byte{0x06}, "名前"...),
			expected: "名前",
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			actual, err := decodeName(bytes.NewReader(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeName_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       []byte
		expectedErr error
	}{
		{
			name:        "missing size",
			input:       []byte{},
			expectedErr: io.EOF,
		},
		{
			name:        "fewer bytes than the declared size",
			input:       []byte{0x05, 'h', 'i'},
			expectedErr: io.ErrUnexpectedEOF,
		},
		{
			name:        "invalid UTF-8",
			input:       []byte{0x01, 0xff},
			expectedErr: ErrInvalidUTF8,
		},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeName(bytes.NewReader(tc.input))
			require.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestEncodeName(t *testing.T) {
	require.Equal(t, []byte{0x00}, encodeName(""))
	require.Equal(t, []byte{0x03, 'm', 's', 'g'}, encodeName("msg"))
}
