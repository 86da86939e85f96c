package domain

import "encoding/json"

// Favorite is a saved hotel. Hotel is the caller-supplied payload kept
// verbatim, with no schema enforced on it; when read back it is
// rendered through a generic structured-to-JSON conversion so embedded
// store types (dates, binary) never fail serialization.
type Favorite struct {
	ID     string          `json:"_id"`
	UserID string          `json:"userId"`
	Hotel  json.RawMessage `json:"hotel"`
}
