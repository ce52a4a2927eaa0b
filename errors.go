package namesec

import "errors"

var (
	// ErrSectionSizeMismatch is returned when a known subsection's payload
	// doesn't occupy exactly its declared size.
	ErrSectionSizeMismatch = errors.New("the declared subsection size doesn't match its payload")
	// ErrInvalidUTF8 is returned when a decoded name is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("name must be valid UTF-8")
)
