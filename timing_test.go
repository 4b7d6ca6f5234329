// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"testing"

	"code.hybscloud.com/rx"
)

func TestTimingAnnotatesItems(t *testing.T) {
	out := rx.Timing(rx.From(1, 2, 3))
	got := rx.Collect(out)
	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	for i, want := range []int{1, 2, 3} {
		if got[i].Value != want {
			t.Fatalf("item %d got %d, want %d", i, got[i].Value, want)
		}
	}
	if got[0].HasInterval {
		t.Fatal("first item reports an interval")
	}
	for i := 1; i < len(got); i++ {
		if !got[i].HasInterval {
			t.Fatalf("item %d missing interval", i)
		}
		if got[i].Interval < 0 {
			t.Fatalf("item %d interval negative: %v", i, got[i].Interval)
		}
		if got[i].Timestamp.Before(got[i-1].Timestamp) {
			t.Fatalf("timestamps went backwards at %d", i)
		}
	}
}
