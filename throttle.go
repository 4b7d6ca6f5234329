// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

// ThrottleMode selects which edge of each rate-limit window is emitted.
type ThrottleMode uint8

const (
	// ThrottleLeading emits the item that opens a window and drops the
	// rest of the window.
	ThrottleLeading ThrottleMode = iota
	// ThrottleTrailing holds the newest item of each window and emits it
	// when the window closes.
	ThrottleTrailing
	// ThrottleAll emits both edges: the opener immediately and the newest
	// later arrival when the window closes.
	ThrottleAll
)

type throttle[T any] struct {
	source   *fused[T]
	factory  func(item T) Timer
	mode     ThrottleMode
	timer    Timer
	trailing T
	held     bool
}

// Throttle rate-limits source: the first item opens a window timed by
// factory and further items inside the window are coalesced according to
// mode. Upstream exhaustion flushes a held trailing item before ending.
func Throttle[T any](source Stream[T], mode ThrottleMode, factory func(item T) Timer) Stream[T] {
	return &throttle[T]{source: fuse(source), factory: factory, mode: mode}
}

func (t *throttle[T]) Poll() (T, error) {
	var zero T
	for {
		if t.timer != nil {
			if err := t.timer.Poll(); err == nil {
				t.timer = nil
				if t.held {
					out := t.trailing
					t.held = false
					t.trailing = zero
					t.timer = t.factory(out)
					return out, nil
				}
			}
		}
		v, err := t.source.Poll()
		if err != nil {
			if t.source.Done() {
				if t.held {
					out := t.trailing
					t.held = false
					t.trailing = zero
					t.timer = nil
					return out, nil
				}
				return zero, io.EOF
			}
			return zero, iox.ErrWouldBlock
		}
		if t.timer != nil {
			if t.mode != ThrottleLeading {
				t.trailing = v
				t.held = true
			}
			continue
		}
		t.timer = t.factory(v)
		if t.mode != ThrottleTrailing {
			return v, nil
		}
		t.trailing = v
		t.held = true
	}
}

// SizeHint keeps the upstream upper bound; which items survive depends on
// window timing.
func (t *throttle[T]) SizeHint() (lower, upper int) {
	l, u := t.source.SizeHint()
	if l > 1 {
		l = 1
	}
	return l, u
}
