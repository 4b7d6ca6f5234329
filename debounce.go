// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type debounce[T any] struct {
	source    *fused[T]
	factory   func(item T) Timer
	timer     Timer
	candidate T
	pending   bool
}

// Debounce emits an item only after its quiet period expires: every
// upstream item replaces the held candidate and re-arms a fresh timer
// from factory, so a burst of items collapses to its last one. Upstream
// exhaustion flushes the held candidate before ending.
func Debounce[T any](source Stream[T], factory func(item T) Timer) Stream[T] {
	return &debounce[T]{source: fuse(source), factory: factory}
}

func (d *debounce[T]) Poll() (T, error) {
	var zero T
	for {
		if !d.source.Done() {
			v, err := d.source.Poll()
			if err == nil {
				d.candidate = v
				d.pending = true
				d.timer = d.factory(v)
				continue
			}
		}
		if d.source.Done() {
			if d.pending {
				d.pending = false
				d.timer = nil
				out := d.candidate
				d.candidate = zero
				return out, nil
			}
			return zero, io.EOF
		}
		if d.pending {
			if err := d.timer.Poll(); err == nil {
				d.pending = false
				d.timer = nil
				out := d.candidate
				d.candidate = zero
				return out, nil
			}
		}
		return zero, iox.ErrWouldBlock
	}
}

// SizeHint keeps the upstream upper bound; only the final item is certain
// to survive the quiet periods.
func (d *debounce[T]) SizeHint() (lower, upper int) {
	l, u := d.source.SizeHint()
	if l > 1 {
		l = 1
	}
	return l, u
}
