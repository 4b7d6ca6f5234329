// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "sync"

// lockAdopter is implemented by subject variants whose mailboxes can share
// a synchronizing lock.
type lockAdopter interface {
	adopt(mu *sync.RWMutex)
}

// SyncSubject guards a subject for concurrent Push, Close and Subscribe
// from multiple goroutines. Event payloads are already atomically
// ref-counted, so the lock covers only registry, replay state and the
// subscriber mailboxes: producer calls run under the write lock and every
// mailbox created after Synchronize takes the same lock on the consumer
// side.
//
// Each returned Subscription is still single-consumer: exactly one
// goroutine may poll it. Synchronize before subscribing; subscriptions
// taken out earlier keep polling lock-free.
type SyncSubject[T any] struct {
	mu    sync.RWMutex
	inner Subject[T]
}

// Synchronize wraps subject for cross-goroutine use. Panics when subject
// is not one of the subject variants of this package.
func Synchronize[T any](subject Subject[T]) *SyncSubject[T] {
	s := &SyncSubject[T]{inner: subject}
	a, ok := subject.(lockAdopter)
	if !ok {
		panic("rx: subject does not support synchronization")
	}
	a.adopt(&s.mu)
	return s
}

// Subscribe registers a new subscriber under the write lock.
func (s *SyncSubject[T]) Subscribe() *Subscription[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Subscribe()
}

// Push delivers under the write lock: delivery appends to subscriber
// mailboxes, which is a stateful pass over the registry.
func (s *SyncSubject[T]) Push(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Push(value)
}

// Close completes every live subscription under the write lock.
func (s *SyncSubject[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Close()
}

// Value returns the wrapped behavior subject's current value under the
// read lock. ok is false when the wrapped subject is not a behavior
// subject or has no value yet.
func (s *SyncSubject[T]) Value() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.inner.(interface{ Value() (T, bool) }); ok {
		return b.Value()
	}
	var zero T
	return zero, false
}
