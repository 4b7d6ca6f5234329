// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "sync"

// Subject is a multicast producer: values pushed into it are delivered to
// every live subscriber, in push order per subscriber.
//
// Close transitions the subject to its terminal state and completes every
// live mailbox; it is idempotent. Push after Close is a silent no-op.
type Subject[T any] interface {
	Subscribe() *Subscription[T]
	Push(value T)
	Close()
}

// registry is the subscriber bookkeeping shared by all subject variants:
// a slice of live mailboxes plus the closed flag. Mailboxes of cancelled
// subscriptions are pruned on every delivery pass. mu is nil until the
// subject is synchronized; it is handed to every mailbox so consumer-side
// pops exclude concurrent delivery.
type registry[T any] struct {
	mu     *sync.RWMutex
	subs   []*mailbox[T]
	closed bool
}

// adopt installs the shared lock of a synchronized subject. Existing
// mailboxes keep polling lock-free, so synchronize before subscribing.
func (r *registry[T]) adopt(mu *sync.RWMutex) {
	r.mu = mu
}

// attach allocates a mailbox for a new subscriber. The mailbox starts
// completed when the subject has already closed.
func (r *registry[T]) attach() *mailbox[T] {
	mb := &mailbox[T]{mu: r.mu, done: r.closed}
	r.subs = append(r.subs, mb)
	return mb
}

// deliver clones ev into every live mailbox and prunes dead ones.
// The caller's handle is consumed.
func (r *registry[T]) deliver(ev Event[T]) {
	live := r.subs[:0]
	for _, mb := range r.subs {
		if mb.dead {
			continue
		}
		mb.push(ev.Clone())
		live = append(live, mb)
	}
	clear(r.subs[len(live):])
	r.subs = live
	ev.Release()
}

// closeAll marks the registry closed and completes every live mailbox.
func (r *registry[T]) closeAll() {
	r.closed = true
	live := r.subs[:0]
	for _, mb := range r.subs {
		if mb.dead {
			continue
		}
		mb.markDone()
		live = append(live, mb)
	}
	clear(r.subs[len(live):])
	r.subs = live
}

// PublishSubject delivers pushed values to current subscribers only; a
// subscriber attached after a push never sees it.
type PublishSubject[T any] struct {
	reg registry[T]
}

// NewPublishSubject creates an open subject with no subscribers.
func NewPublishSubject[T any]() *PublishSubject[T] {
	return &PublishSubject[T]{}
}

// Subscribe registers a new subscriber. On an already-closed subject the
// subscription reports io.EOF immediately.
func (s *PublishSubject[T]) Subscribe() *Subscription[T] {
	return newSubscription(s.reg.attach())
}

func (s *PublishSubject[T]) adopt(mu *sync.RWMutex) {
	s.reg.adopt(mu)
}

// Push wraps value in one shared payload and appends a handle to every
// live subscriber mailbox. No-op after Close.
func (s *PublishSubject[T]) Push(value T) {
	if s.reg.closed {
		return
	}
	s.reg.deliver(NewEvent(value))
}

// Close completes every live subscription. Idempotent.
func (s *PublishSubject[T]) Close() {
	s.reg.closeAll()
}
