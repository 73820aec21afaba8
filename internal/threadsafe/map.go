package threadsafe

import "sync"

// Map provides a simple locked map[K]V in order to make it thread safe
type Map[K comparable, V any] struct {
	mtx    sync.RWMutex
	values map[K]V
}

// NewMap creates a new thread safe map
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		values: make(map[K]V),
	}
}

// Size returns the amount of stored K-V-pairs
func (safeMap *Map[K, V]) Size() int {
	safeMap.mtx.RLock()
	defer safeMap.mtx.RUnlock()
	return len(safeMap.values)
}

// Lookup looks up a specific key and returns the corresponding value and a boolean indicating if it was found
func (safeMap *Map[K, V]) Lookup(key K) (V, bool) {
	safeMap.mtx.RLock()
	defer safeMap.mtx.RUnlock()
	val, ok := safeMap.values[key]
	return val, ok
}

// Set sets the value of a specific key
func (safeMap *Map[K, V]) Set(key K, val V) {
	safeMap.mtx.Lock()
	defer safeMap.mtx.Unlock()
	safeMap.values[key] = val
}

// Take removes the value of a specific key and returns it along with a boolean indicating if it was present
func (safeMap *Map[K, V]) Take(key K) (V, bool) {
	safeMap.mtx.Lock()
	defer safeMap.mtx.Unlock()
	val, ok := safeMap.values[key]
	if ok {
		delete(safeMap.values, key)
	}
	return val, ok
}

// Drain removes all K-V-pairs and returns the values that were stored
func (safeMap *Map[K, V]) Drain() []V {
	safeMap.mtx.Lock()
	defer safeMap.mtx.Unlock()
	values := make([]V, 0, len(safeMap.values))
	for _, val := range safeMap.values {
		values = append(values, val)
	}
	safeMap.values = make(map[K]V)
	return values
}
