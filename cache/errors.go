package cache

import "errors"

// Error taxonomy. A Get miss is not an error — it is a defined outcome
// reported through the presence flag. Errors are reserved for
// caller-correctable mistakes, and the cache state is left unchanged
// whenever one is returned.
var (
	// ErrInvalidCapacity is returned by New when Options.Capacity <= 0.
	ErrInvalidCapacity = errors.New("lrucache: capacity must be > 0")

	// ErrInvalidKey is returned when Options.KeyCheck rejects a key.
	ErrInvalidKey = errors.New("lrucache: invalid key")

	// ErrInvalidValue is returned by Put when Options.ValueCheck rejects
	// a value.
	ErrInvalidValue = errors.New("lrucache: invalid value")

	// ErrNoLoader is returned by GetOrLoad when no Loader was configured
	// in Options.
	ErrNoLoader = errors.New("lrucache: no Loader provided")
)
