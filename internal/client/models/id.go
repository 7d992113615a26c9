// Package models defines the client-facing entities of the DeskHub API.
// All identifiers are normalized to strings regardless of how the server
// encodes them on the wire.
package models

import (
	"encoding/json"
	"fmt"
)

// ID is an entity identifier. The server is free to send it as a JSON
// string or a JSON number; either way it unmarshals to the string form.
type ID string

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}
