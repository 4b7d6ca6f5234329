// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "sync"

// ReplaySubject is a Subject that buffers past values and delivers the
// whole backlog, in original push order, to each new subscriber.
type ReplaySubject[T any] struct {
	reg    registry[T]
	buffer []Event[T]
	bound  int // 0 = unbounded
}

// NewReplaySubject creates a replay subject with an unbounded backlog.
func NewReplaySubject[T any]() *ReplaySubject[T] {
	return &ReplaySubject[T]{}
}

// NewReplaySubjectBuffer creates a replay subject that retains at most
// size values, evicting the oldest first. size must be positive.
func NewReplaySubjectBuffer[T any](size int) *ReplaySubject[T] {
	if size <= 0 {
		panic("rx: replay buffer size must be positive")
	}
	return &ReplaySubject[T]{bound: size}
}

// Subscribe registers a new subscriber and delivers the buffered backlog
// into the fresh mailbox. On a closed subject the subscription observes
// the backlog followed by io.EOF.
func (s *ReplaySubject[T]) Subscribe() *Subscription[T] {
	mb := s.reg.attach()
	for _, ev := range s.buffer {
		mb.push(ev.Clone())
	}
	return newSubscription(mb)
}

func (s *ReplaySubject[T]) adopt(mu *sync.RWMutex) {
	s.reg.adopt(mu)
}

// Push appends value to the backlog, evicting the oldest entry once a
// bounded buffer is at capacity, then fans the value out. No-op after
// Close.
func (s *ReplaySubject[T]) Push(value T) {
	if s.reg.closed {
		return
	}
	ev := NewEvent(value)
	if s.bound > 0 && len(s.buffer) == s.bound {
		s.buffer[0].Release()
		s.buffer = append(s.buffer[:0], s.buffer[1:]...)
	}
	s.buffer = append(s.buffer, ev.Clone())
	s.reg.deliver(ev)
}

// Close completes every live subscription; the backlog stays available to
// late subscribers. Idempotent.
func (s *ReplaySubject[T]) Close() {
	s.reg.closeAll()
}
