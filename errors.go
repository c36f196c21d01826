package devwell

import (
	"errors"

	"github.com/SiddDevCS/Dev-Well/kv"
)

// ErrBackPressure is returned when the internal write queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// ErrNotFound re-exports the store sentinel so callers compare against a
// single symbol.
var ErrNotFound = kv.ErrNotFound
