package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Store is the durable key/value collaborator the catalog persists through.
// Implementations must treat a missing key as absence, not an error.
type Store interface {
	// Save writes payload under key with the provided time-to-live.
	Save(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// Load returns the payload stored under key and whether the key existed.
	Load(ctx context.Context, key string) ([]byte, bool, error)
}

// Envelope wraps a serialized value with its write timestamp.
type Envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Wrap serialises v inside a timestamped envelope.
func Wrap(v any, now time.Time) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return json.Marshal(Envelope{Data: data, Timestamp: now.Unix()})
}

// Unwrap decodes an envelope and unmarshals its payload into dst,
// returning the write timestamp.
func Unwrap(raw []byte, dst any) (time.Time, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return time.Time{}, fmt.Errorf("decode envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return time.Time{}, fmt.Errorf("decode envelope payload: %w", err)
	}
	return time.Unix(env.Timestamp, 0), nil
}
