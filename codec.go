package devwell

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/SiddDevCS/Dev-Well/internal/storageerr"
	"github.com/SiddDevCS/Dev-Well/kv"
)

// loadJSON reads key and unmarshals it into v. The bool reports whether a
// value was present; a missing key is not an error.
func (s *Store) loadJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storageerr.NewStoreError("load "+key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, storageerr.NewDecodeError("load "+key, err)
	}
	return true, nil
}

// storeJSON marshals v and writes it under key.
func (s *Store) storeJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return storageerr.NewDecodeError("encode "+key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return storageerr.NewStoreError("set "+key, err)
	}
	return nil
}
