// Package models defines the client-side records: users, saved locations,
// payment methods, ride history and riders.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// ID identifies users and list items. The remote API may send ids as
// numbers; they are kept as their decimal text.
type ID string

// NewID returns a fresh time-ordered id.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

func (id ID) String() string { return string(id) }

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = ID(n.String())
	return nil
}
