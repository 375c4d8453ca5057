// internal/domain/chat/mapping.go
package chat

import (
	"encoding/json"
	"fmt"
)

// UserMapping maps display names from the schedule table to opaque
// platform user IDs. Names without a mapping fall back to a plain
// textual mention.
type UserMapping map[string]string

// ParseUserMapping decodes a JSON object like
// {"Fabio": "U12345678", "Michael": "U23456789"}. An empty input yields
// an empty mapping.
func ParseUserMapping(raw string) (UserMapping, error) {
	if raw == "" {
		return UserMapping{}, nil
	}
	var m UserMapping
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("parse user mapping: %w", err)
	}
	return m, nil
}
