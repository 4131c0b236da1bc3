package dto

import (
	"bytes"
	"fmt"
)

// Flag is a boolean that travels as 0/1 on the wire. Decoding also accepts
// true and false.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "1", "true":
		*f = true
	case "0", "false":
		*f = false
	default:
		return fmt.Errorf("is_correct: expected 0, 1, true or false, got %s", data)
	}
	return nil
}

// FlagPtr converts an optional Flag to an optional bool.
func FlagPtr(f *Flag) *bool {
	if f == nil {
		return nil
	}
	b := bool(*f)
	return &b
}
