package chrono

import (
	"reflect"
	"sync"
)

// registryKey identifies one immutable instance by its discrete
// construction parameters. The parameter space is small and fully
// enumerable, so every packer, parser, and formatter variant is built
// at most once per process. Parsers and formatters additionally key on
// the source or target type they are instantiated for.
type registryKey struct {
	kind   string
	enc    Encoding
	mode   Mode
	layout int
	sep    byte
	typ    reflect.Type
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// cached returns the instance stored under key, building and caching it
// on first use.
func cached[V any](key registryKey, build func() (V, error)) (V, error) {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if hit, ok := registry[key]; ok {
		registryMu.RUnlock()
		return hit.(V), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if hit, ok := registry[key]; ok {
		return hit.(V), nil
	}

	v, err := build()
	if err != nil {
		var zero V
		return zero, err
	}
	registry[key] = v
	return v, nil
}

// Reset clears the instance cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
