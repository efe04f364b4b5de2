package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when a key has no stored document
var ErrNotFound = errors.New("storage: key not found")

// Store is a persistent document store keyed by logical names. Implementations
// must deliver change notifications for every successful Set and Delete,
// including writes made by other processes sharing the same backing store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Subscribe registers a handler invoked with the key of every change.
	// The returned function unsubscribes the handler.
	Subscribe(handler func(key string)) (unsubscribe func())
}

// GetJSON loads and unmarshals the document at key into v. A missing key
// returns (false, nil) and leaves v untouched. A document that fails to
// unmarshal is reported as (false, err) so callers can apply their
// reset-to-default recovery.
func GetJSON(ctx context.Context, s Store, key string, v interface{}) (bool, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and stores it at key
func SetJSON(ctx context.Context, s Store, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data)
}
