package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is the canonical, string form of an entity identifier.
//
// Clients may send foreign keys either as JSON strings or JSON numbers,
// both are normalized so ownership checks can use plain equality.
type ID string

// UnmarshalJSON accepts "abc", 12 and null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number")
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}
