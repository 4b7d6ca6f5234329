// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "code.hybscloud.com/atomix"

// Event is a ref-counted handle to one immutable emitted payload.
// Cloning is O(1) and never copies the payload, which is how subjects fan
// a single push out to every subscriber mailbox. The counter is atomic so
// handles may cross goroutines when a subject is synchronized.
//
// Handles are affine: code that discards one without emitting it calls
// Release, and TryUnwrap consumes the handle on success.
type Event[T any] struct {
	box *eventBox[T]
}

type eventBox[T any] struct {
	value T
	refs  atomix.Uint32
}

// NewEvent wraps value in a fresh payload with a single handle.
func NewEvent[T any](value T) Event[T] {
	box := &eventBox[T]{value: value}
	box.refs.Store(1)
	return Event[T]{box: box}
}

// Clone returns a new handle to the same payload.
func (e Event[T]) Clone() Event[T] {
	e.box.refs.Add(1)
	return e
}

// Value returns a copy of the payload.
func (e Event[T]) Value() T {
	return e.box.value
}

// Get borrows the payload without copying it.
// The payload is immutable; callers must not write through the pointer.
func (e Event[T]) Get() *T {
	return &e.box.value
}

// Refs reports the number of live handles to the payload.
func (e Event[T]) Refs() uint32 {
	return e.box.refs.Load()
}

// TryUnwrap reclaims exclusive ownership of the payload.
// It succeeds only when e is the sole live handle, consuming it.
// Otherwise it returns ErrShared and e remains usable.
func (e Event[T]) TryUnwrap() (T, error) {
	if e.box.refs.CompareAndSwap(1, 0) {
		return e.box.value, nil
	}
	var zero T
	return zero, ErrShared
}

// Release drops this handle. Called when a mailbox or replay buffer
// discards an event it will never deliver.
func (e Event[T]) Release() {
	e.box.refs.Add(^uint32(0))
}
