// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"time"

	"code.hybscloud.com/iox"
)

// Timer is a one-shot interval polled cooperatively alongside the stream
// that armed it: would-block until the interval elapses, nil afterwards.
// Operators re-arm by calling their timer factory again, so a Timer never
// needs to reset itself.
type Timer interface {
	Poll() error
}

// TimerFunc adapts a plain function to the Timer interface.
type TimerFunc func() error

func (f TimerFunc) Poll() error { return f() }

// Elapsed returns a timer that has already fired. Arming an operator with
// it makes the operator act on every item.
func Elapsed() Timer {
	return TimerFunc(func() error { return nil })
}

// NeverElapse returns a timer that never fires.
func NeverElapse() Timer {
	return TimerFunc(func() error { return iox.ErrWouldBlock })
}

// After returns a timer that fires once d has passed on the wall clock,
// measured from the call to After.
func After(d time.Duration) Timer {
	deadline := time.Now().Add(d)
	return TimerFunc(func() error {
		if time.Now().Before(deadline) {
			return iox.ErrWouldBlock
		}
		return nil
	})
}

// Ticks returns a timer that fires on its n-th poll. Ticks(0) fires
// immediately. Poll-count timers keep time-based operators deterministic
// under test and in tick-driven simulations.
func Ticks(n int) Timer {
	remaining := n
	return TimerFunc(func() error {
		if remaining <= 0 {
			return nil
		}
		remaining--
		if remaining == 0 {
			return nil
		}
		return iox.ErrWouldBlock
	})
}
