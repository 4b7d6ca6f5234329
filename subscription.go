// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

// Subscription is a single-owner pull view over one subscriber mailbox.
// It yields the subject's pushed values as shared Event handles, in push
// order. Dropping a Subscription is expressed by calling Cancel; the
// subject forgets the mailbox on its next push or close pass.
type Subscription[T any] struct {
	mb     *mailbox[T]
	serial Serial
}

func newSubscription[T any](mb *mailbox[T]) *Subscription[T] {
	return &Subscription[T]{mb: mb, serial: nextSerial()}
}

// Poll implements Stream. It pops the oldest pending event, reports
// io.EOF once the mailbox is empty and completed, and would-block while
// the mailbox is empty but the subject is still open.
func (s *Subscription[T]) Poll() (Event[T], error) {
	ev, ok, done := s.mb.take()
	if ok {
		return ev, nil
	}
	if done {
		return ev, io.EOF
	}
	return ev, iox.ErrWouldBlock
}

// Cancel releases the subscription: queued events are dropped and the
// subject stops delivering to it. Idempotent. Delivery to other
// subscriptions of the same subject is unaffected.
func (s *Subscription[T]) Cancel() {
	s.mb.markDead()
}

// Serial returns the identifier assigned to this subscription.
func (s *Subscription[T]) Serial() Serial {
	return s.serial
}

// SizeHint reports (queued, queued) once the subject has closed and
// (queued, unknown) while it remains open.
func (s *Subscription[T]) SizeHint() (lower, upper int) {
	queued, done := s.mb.state()
	if done {
		return queued, queued
	}
	return queued, -1
}
