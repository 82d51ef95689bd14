package providers

import (
	"encoding/json"
	"fmt"
)

// StringID decodes a JSON identifier that may arrive as a string or a
// number. Event APIs are not consistent about this; the canonical
// Activity always carries a string ID.
type StringID string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StringID(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = StringID(num.String())
		return nil
	}

	return fmt.Errorf("id is neither string nor number: %s", data)
}

// String returns the identifier as a plain string.
func (s StringID) String() string {
	return string(s)
}
