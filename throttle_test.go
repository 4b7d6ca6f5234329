// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"testing"

	"code.hybscloud.com/rx"
)

func ticksOf2(int) rx.Timer { return rx.Ticks(2) }

func TestThrottleLeading(t *testing.T) {
	out := rx.Throttle(rx.From(0, 1, 2), rx.ThrottleLeading, ticksOf2)
	wantValues(t, rx.Collect(out), []int{0, 2})
}

func TestThrottleTrailing(t *testing.T) {
	out := rx.Throttle(rx.From(0, 1, 2), rx.ThrottleTrailing, ticksOf2)
	wantValues(t, rx.Collect(out), []int{1, 2})
}

func TestThrottleAll(t *testing.T) {
	out := rx.Throttle(rx.From(0, 1, 2), rx.ThrottleAll, ticksOf2)
	wantValues(t, rx.Collect(out), []int{0, 1, 2})
}

func TestThrottleLeadingSpacedItems(t *testing.T) {
	source := playback(
		value(1),
		wait[int](), wait[int](),
		value(2),
	)
	out := rx.Throttle(source, rx.ThrottleLeading, ticksOf2)
	wantValues(t, rx.Collect(out), []int{1, 2})
}

func TestThrottleEmptySource(t *testing.T) {
	out := rx.Throttle(rx.From[int](), rx.ThrottleAll, ticksOf2)
	wantEOF(t, out)
}
