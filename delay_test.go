// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rx"
)

func TestDelayHoldsStreamBackOnce(t *testing.T) {
	out := rx.Delay(rx.From(0, 1, 2, 3), func() rx.Timer {
		return rx.Ticks(3)
	})
	for range 2 {
		if _, err := out.Poll(); !iox.IsWouldBlock(err) {
			t.Fatalf("got %v, want would-block", err)
		}
	}
	wantValues(t, rx.Collect(out), []int{0, 1, 2, 3})
}

func TestDelayElapsedIsTransparent(t *testing.T) {
	out := rx.Delay(rx.From(1, 2), rx.Elapsed)
	wantValues(t, rx.Collect(out), []int{1, 2})
}

func TestDelayEveryKeepsOrder(t *testing.T) {
	out := rx.DelayEvery(rx.From(0, 1, 2, 3), func(int) rx.Timer {
		return rx.Ticks(1)
	}, 0)
	wantValues(t, rx.Collect(out), []int{0, 1, 2, 3})
}

func TestDelayEverySpacesEmissions(t *testing.T) {
	out := rx.DelayEvery(rx.From(1, 2), func(int) rx.Timer {
		return rx.Ticks(2)
	}, 0)
	if _, err := out.Poll(); !iox.IsWouldBlock(err) {
		t.Fatalf("got %v, want would-block", err)
	}
	v, err := out.Poll()
	if err != nil || v != 1 {
		t.Fatalf("got (%d, %v), want (1, nil)", v, err)
	}
	if _, err := out.Poll(); !iox.IsWouldBlock(err) {
		t.Fatalf("got %v, want would-block", err)
	}
	v, err = out.Poll()
	if err != nil || v != 2 {
		t.Fatalf("got (%d, %v), want (2, nil)", v, err)
	}
	wantEOF(t, out)
}

func TestDelayEveryBoundedDropsOldestWaiting(t *testing.T) {
	out := rx.DelayEvery(rx.From(0, 1, 2, 3, 4, 5), func(int) rx.Timer {
		return rx.Ticks(1)
	}, 2)
	wantValues(t, rx.Collect(out), []int{4, 5})
}

func TestDelayEveryEndsOnlyWhenDrained(t *testing.T) {
	source := playback(value(9), wait[int]())
	out := rx.DelayEvery(source, func(int) rx.Timer {
		return rx.Ticks(2)
	}, 0)
	got := rx.Collect(out)
	wantValues(t, got, []int{9})
}
