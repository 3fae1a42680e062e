package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Payload is a decoded JSON object whose values are kept raw until they are applied to an entity
type Payload map[string]json.RawMessage

// FilterFields returns a copy of payload that contains only the allowed keys.
// Keys in exclude are dropped even if they are allowed.
func FilterFields(payload Payload, allowed []string, exclude ...string) Payload {
	filtered := make(Payload, len(allowed))
	for _, key := range allowed {
		if slices.Contains(exclude, key) {
			continue
		}
		if value, ok := payload[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

// Has reports whether key is present in the payload
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// ID decodes key as an identifier. The second value is false when the key is absent or null.
func (p Payload) ID(key string) (ID, bool, error) {
	raw, ok := p[key]
	if !ok {
		return "", false, nil
	}

	var id ID
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", false, &ValidationError{Msg: "invalid payload", Fields: []string{fmt.Sprintf("%s: %v", key, err)}}
	}
	return id, id != "", nil
}

// ApplyTo overlays the payload on dst. Keys not present in the payload leave dst untouched.
func (p Payload) ApplyTo(dst any) error {
	if len(p) == 0 {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &ValidationError{Msg: "invalid payload", Fields: []string{err.Error()}}
	}
	return nil
}
