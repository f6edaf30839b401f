package sequence

import "errors"

var (
	// ErrSourceUnavailable wraps any failure to open or read the input.
	ErrSourceUnavailable = errors.New("sequence source unavailable")
	// ErrMalformedSequence means the cleaned length is not a multiple of MerLength.
	ErrMalformedSequence = errors.New("malformed sequence: incomplete mer")
)
