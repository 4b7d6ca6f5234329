// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"reflect"
	"testing"
	"testing/quick"

	"code.hybscloud.com/rx"
)

// TestPropertySubjectFIFO proves that for any arbitrarily generated
// sequence of integers, a publish subject delivers to a subscriber in
// strict push order without loss, duplication, or reordering.
func TestPropertySubjectFIFO(t *testing.T) {
	propertyFIFO := func(payload []int) bool {
		s := rx.NewPublishSubject[int]()
		sub := s.Subscribe()
		for _, v := range payload {
			s.Push(v)
		}
		s.Close()
		received := rx.Collect(rx.Values[int](sub))
		if len(payload) == 0 && len(received) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, received)
	}
	if err := quick.Check(propertyFIFO, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyReplayBound proves that a bounded replay subject hands a
// late subscriber exactly the most recent min(len, bound) values.
func TestPropertyReplayBound(t *testing.T) {
	propertyBound := func(payload []int, bound uint8) bool {
		size := int(bound%16) + 1
		s := rx.NewReplaySubjectBuffer[int](size)
		for _, v := range payload {
			s.Push(v)
		}
		s.Close()
		got := rx.Collect(rx.Values[int](s.Subscribe()))

		want := payload
		if len(want) > size {
			want = want[len(want)-size:]
		}
		if len(want) == 0 && len(got) == 0 {
			return true
		}
		return reflect.DeepEqual(want, got)
	}
	if err := quick.Check(propertyBound, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyZipLength proves that zipping two finite streams always
// yields exactly min(len(a), len(b)) tuples, each index-aligned.
func TestPropertyZipLength(t *testing.T) {
	propertyZip := func(a, b []int) bool {
		got := rx.Collect(rx.Zip(rx.From(a...), rx.From(b...)))
		want := min(len(a), len(b))
		if len(got) != want {
			return false
		}
		for i, tuple := range got {
			if tuple[0] != a[i] || tuple[1] != b[i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(propertyZip, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyDistinctIdempotent proves that Distinct applied twice
// yields the same sequence as Distinct applied once.
func TestPropertyDistinctIdempotent(t *testing.T) {
	propertyDistinct := func(payload []int8) bool {
		once := rx.Collect(rx.Distinct(rx.From(payload...)))
		twice := rx.Collect(rx.Distinct(rx.Distinct(rx.From(payload...))))
		if len(once) == 0 && len(twice) == 0 {
			return true
		}
		return reflect.DeepEqual(once, twice)
	}
	if err := quick.Check(propertyDistinct, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMaterializeRoundTrip proves that Dematerialize inverts
// Materialize for any payload.
func TestPropertyMaterializeRoundTrip(t *testing.T) {
	propertyRoundTrip := func(payload []int) bool {
		got := rx.Collect(rx.Dematerialize(rx.Materialize(rx.From(payload...))))
		if len(payload) == 0 && len(got) == 0 {
			return true
		}
		return reflect.DeepEqual(payload, got)
	}
	if err := quick.Check(propertyRoundTrip, nil); err != nil {
		t.Error(err)
	}
}
