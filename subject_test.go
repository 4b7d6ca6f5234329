// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rx"
)

func TestPublishSubjectDeliversInOrder(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	sub := s.Subscribe()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	wantValues(t, takeReady(rx.Values[int](sub)), []int{1, 2, 3})
	if _, err := sub.Poll(); !iox.IsWouldBlock(err) {
		t.Fatalf("open subject got %v, want would-block", err)
	}
}

func TestPublishSubjectLateSubscriberMissesPast(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	s.Push(1)
	sub := s.Subscribe()
	s.Push(2)
	wantValues(t, takeReady(rx.Values[int](sub)), []int{2})
}

func TestPublishSubjectPushAfterClose(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	sub := s.Subscribe()
	s.Push(1)
	s.Close()
	s.Push(2)
	got := rx.Collect(rx.Values[int](sub))
	wantValues(t, got, []int{1})
	wantEOF(t, sub)
}

func TestPublishSubjectCloseIdempotent(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	sub := s.Subscribe()
	s.Close()
	s.Close()
	wantEOF(t, sub)
	late := s.Subscribe()
	wantEOF(t, late)
}

func TestSubscriptionCancelStopsDelivery(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	a := s.Subscribe()
	b := s.Subscribe()
	s.Push(1)
	a.Cancel()
	s.Push(2)
	wantEOF(t, a)
	wantValues(t, takeReady(rx.Values[int](b)), []int{1, 2})
}

func TestSubscriptionCancelIdempotent(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	sub := s.Subscribe()
	s.Push(1)
	sub.Cancel()
	sub.Cancel()
	wantEOF(t, sub)
}

func TestSubscriptionSerialsDistinct(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	a := s.Subscribe()
	b := s.Subscribe()
	if a.Serial() == b.Serial() {
		t.Fatalf("serials collide: %d", a.Serial())
	}
}

func TestSubscriptionSizeHint(t *testing.T) {
	s := rx.NewPublishSubject[int]()
	sub := s.Subscribe()
	s.Push(1)
	s.Push(2)
	lower, upper := sub.SizeHint()
	if lower != 2 || upper != -1 {
		t.Fatalf("open hint got (%d, %d), want (2, -1)", lower, upper)
	}
	s.Close()
	lower, upper = sub.SizeHint()
	if lower != 2 || upper != 2 {
		t.Fatalf("closed hint got (%d, %d), want (2, 2)", lower, upper)
	}
}
