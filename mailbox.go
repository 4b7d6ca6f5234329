// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "sync"

// mailbox is one subscriber's unbounded FIFO of pending events plus a
// completion flag. The owning subject appends; the owning Subscription
// pops. A dead mailbox belongs to a cancelled Subscription and is pruned
// from the subject registry on the next push or close pass — the explicit
// stand-in for a weak reference.
//
// mu is nil in the single-goroutine cooperative model. A synchronized
// subject shares its lock with every mailbox it creates: producer-side
// calls (push, markDone) already run under that lock, consumer-side calls
// take it here.
type mailbox[T any] struct {
	mu   *sync.RWMutex
	buf  []Event[T]
	head int
	done bool
	dead bool
}

// push appends ev. Caller is the owning subject, which in the
// synchronized case already holds the write lock.
func (m *mailbox[T]) push(ev Event[T]) {
	if m.dead {
		ev.Release()
		return
	}
	m.buf = append(m.buf, ev)
}

// markDone sets the completion flag. Pending events stay deliverable;
// subsequent calls are no-ops. Same locking rule as push.
func (m *mailbox[T]) markDone() {
	m.done = true
}

// take pops the oldest pending event. When ok is false, done tells the
// Subscription whether the sequence has ended or is merely idle.
func (m *mailbox[T]) take() (ev Event[T], ok, done bool) {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	if m.head >= len(m.buf) {
		return ev, false, m.done || m.dead
	}
	ev = m.buf[m.head]
	var zero Event[T]
	m.buf[m.head] = zero
	m.head++
	if m.head == len(m.buf) {
		m.buf = m.buf[:0]
		m.head = 0
	}
	return ev, true, false
}

// markDead releases all pending events and detaches the mailbox from
// future deliveries.
func (m *mailbox[T]) markDead() {
	if m.mu != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
	}
	if m.dead {
		return
	}
	m.dead = true
	for i := m.head; i < len(m.buf); i++ {
		m.buf[i].Release()
	}
	m.buf = nil
	m.head = 0
}

// state reports the queued length and whether the sequence has ended.
func (m *mailbox[T]) state() (queued int, done bool) {
	if m.mu != nil {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}
	return len(m.buf) - m.head, m.done || m.dead
}
