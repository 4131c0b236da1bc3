package dto

import (
	"bytes"
	"fmt"
	"strconv"
)

// UserID decodes from a JSON number or a numeric string. An empty string
// decodes as zero, which callers treat as absent.
type UserID uint64

func (id *UserID) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	if string(raw) == "null" {
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		s, err := strconv.Unquote(string(raw))
		if err != nil {
			return fmt.Errorf("user id: %w", err)
		}
		raw = bytes.TrimSpace([]byte(s))
		if len(raw) == 0 {
			*id = 0
			return nil
		}
	}
	v, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("user id: expected a non-negative integer, got %s", data)
	}
	*id = UserID(v)
	return nil
}

// UserIDValue returns zero for an omitted id.
func UserIDValue(id *UserID) uint64 {
	if id == nil {
		return 0
	}
	return uint64(*id)
}
