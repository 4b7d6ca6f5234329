// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "sync"

// BehaviorSubject is a Subject that retains the most recent value and
// delivers it to each new subscriber before any live pushes.
type BehaviorSubject[T any] struct {
	reg    registry[T]
	latest Event[T]
	seeded bool
}

// NewBehaviorSubject creates a behavior subject with no current value;
// the first subscriber receives nothing until the first push.
func NewBehaviorSubject[T any]() *BehaviorSubject[T] {
	return &BehaviorSubject[T]{}
}

// NewBehaviorSubjectSeeded creates a behavior subject whose current value
// starts at initial.
func NewBehaviorSubjectSeeded[T any](initial T) *BehaviorSubject[T] {
	return &BehaviorSubject[T]{latest: NewEvent(initial), seeded: true}
}

// Subscribe registers a new subscriber and, when a current value exists,
// delivers it into the fresh mailbox ahead of future pushes.
func (s *BehaviorSubject[T]) Subscribe() *Subscription[T] {
	mb := s.reg.attach()
	if s.seeded {
		mb.push(s.latest.Clone())
	}
	return newSubscription(mb)
}

func (s *BehaviorSubject[T]) adopt(mu *sync.RWMutex) {
	s.reg.adopt(mu)
}

// Push replaces the current value and fans it out. No-op after Close.
func (s *BehaviorSubject[T]) Push(value T) {
	if s.reg.closed {
		return
	}
	ev := NewEvent(value)
	if s.seeded {
		s.latest.Release()
	}
	s.latest = ev.Clone()
	s.seeded = true
	s.reg.deliver(ev)
}

// Close completes every live subscription. The current value remains
// observable through Value and through replay on late subscription.
// Idempotent.
func (s *BehaviorSubject[T]) Close() {
	s.reg.closeAll()
}

// Value returns a copy of the current value, if any.
func (s *BehaviorSubject[T]) Value() (T, bool) {
	if !s.seeded {
		var zero T
		return zero, false
	}
	return s.latest.Value(), true
}
