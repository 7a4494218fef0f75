package cache

import "errors"

// ErrMiss is returned by Take when no entry matches producer and key.
var ErrMiss = errors.New("cache: no entry for producer/key")
