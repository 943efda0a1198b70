package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

type record[T any] struct {
	V    int `json:"v"`
	Data T   `json:"data"`
}

// Load reads the record under key. A missing, malformed, or
// version-mismatched record is reported as absent.
func Load[T any](ctx context.Context, s Store, key string, version int) (T, bool, error) {
	var zero T

	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}

	var env record[json.RawMessage]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return zero, false, nil
	}
	if env.V != version || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return zero, false, nil
	}

	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		return zero, false, nil
	}
	return v, true, nil
}

// Save writes v under key as a versioned record.
func Save[T any](ctx context.Context, s Store, key string, version int, v T) error {
	b, err := json.Marshal(record[T]{V: version, Data: v})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}
