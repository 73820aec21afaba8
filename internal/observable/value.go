// Package observable provides a value container that notifies its subscribers on every change.
package observable

import "sync"

// Value holds a value of type T and publishes every new value to its subscribers.
// Deliveries are serialized: subscribers observe changes in the order they were made.
// Subscribers may change the Value they observe; such changes are queued and delivered
// once the current delivery round has finished.
type Value[T any] struct {
	mtx         sync.RWMutex
	value       T
	subscribers map[uint64]func(T)
	nextID      uint64

	delivering bool
	pending    []T
}

// New creates a new observable value holding initial
func New[T any](initial T) *Value[T] {
	return &Value[T]{
		value:       initial,
		subscribers: make(map[uint64]func(T)),
	}
}

// Get returns the current value without subscribing to it
func (obj *Value[T]) Get() T {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return obj.value
}

// Set replaces the current value and notifies all subscribers
func (obj *Value[T]) Set(value T) {
	obj.Update(func(T) T {
		return value
	})
}

// Update replaces the current value with the result of fn and notifies all subscribers
func (obj *Value[T]) Update(fn func(current T) T) {
	obj.UpdateIf(func(current T) (T, bool) {
		return fn(current), true
	})
}

// UpdateIf calls fn with the current value.
// If fn reports a change, its result replaces the current value and all subscribers are notified.
// Otherwise, the value is kept and nobody gets notified.
// fn must not call back into the Value.
//
// If a delivery round is already running, the new value is queued and this call returns immediately;
// the running round delivers it after the values queued before it.
func (obj *Value[T]) UpdateIf(fn func(current T) (T, bool)) {
	obj.mtx.Lock()
	next, changed := fn(obj.value)
	if !changed {
		obj.mtx.Unlock()
		return
	}
	obj.value = next
	obj.pending = append(obj.pending, next)
	if obj.delivering {
		obj.mtx.Unlock()
		return
	}
	obj.delivering = true
	obj.drain()
}

// drain delivers queued values until the queue is empty.
// It is entered with mtx held and returns with it released.
func (obj *Value[T]) drain() {
	for len(obj.pending) > 0 {
		value := obj.pending[0]
		obj.pending = obj.pending[1:]
		subscribers := obj.snapshotSubscribers()
		obj.mtx.Unlock()

		for _, subscriber := range subscribers {
			subscriber(value)
		}

		obj.mtx.Lock()
	}
	obj.pending = nil
	obj.delivering = false
	obj.mtx.Unlock()
}

// Subscribe registers fn to be called with every new value.
// fn is called immediately with the current value.
// The returned function removes the subscription; calling it more than once is a no-op.
func (obj *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	obj.mtx.Lock()
	id := obj.nextID
	obj.nextID++
	obj.subscribers[id] = fn
	value := obj.value
	obj.mtx.Unlock()

	fn(value)

	return func() {
		obj.mtx.Lock()
		defer obj.mtx.Unlock()
		delete(obj.subscribers, id)
	}
}

// Subscribers returns the amount of active subscriptions
func (obj *Value[T]) Subscribers() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.subscribers)
}

func (obj *Value[T]) snapshotSubscribers() []func(T) {
	subscribers := make([]func(T), 0, len(obj.subscribers))
	for id := uint64(0); id < obj.nextID; id++ {
		if subscriber, ok := obj.subscribers[id]; ok {
			subscribers = append(subscribers, subscriber)
		}
	}
	return subscribers
}
