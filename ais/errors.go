package ais

import "fmt"

// MissingFieldError reports a required field absent from the input
// record with no declared default.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("ais: missing required field %q", e.Field)
}

// OutOfRangeError reports a value that does not fit in its field's
// declared width at encode time.
type OutOfRangeError struct {
	Field string
	Value int64
	Width int
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf("ais: field %q value %d does not fit in %d bits", e.Field, e.Value, e.Width)
}

// UnknownMessageClassError reports a MessageID not present in the registry.
type UnknownMessageClassError struct {
	ID uint64
}

func (e UnknownMessageClassError) Error() string {
	return fmt.Sprintf("ais: unknown message class %d", e.ID)
}

// TruncatedBufferError reports a decode slice that exceeds the input
// buffer's length.
type TruncatedBufferError struct {
	Field  string
	Offset int
	Need   int
	Have   int
}

func (e TruncatedBufferError) Error() string {
	return fmt.Sprintf("ais: truncated buffer decoding field %q at offset %d: need %d bits, have %d", e.Field, e.Offset, e.Need, e.Have)
}
