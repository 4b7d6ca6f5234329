// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type delayEvery[T any] struct {
	source   *fused[T]
	factory  func(item T) Timer
	queue    []T
	inflight T
	held     bool
	timer    Timer
	bound    int // 0 = unbounded
}

// DelayEvery holds every item back individually: arrivals queue up, and
// the head of the queue is emitted once its own timer from factory
// fires. With maxBuffer > 0 the queue is capped and the oldest waiting
// items are dropped to admit new arrivals; the item already in flight is
// never dropped. The stream ends only when the source is exhausted, the
// queue is drained and no item is in flight.
func DelayEvery[T any](source Stream[T], factory func(item T) Timer, maxBuffer int) Stream[T] {
	return &delayEvery[T]{source: fuse(source), factory: factory, bound: maxBuffer}
}

func (d *delayEvery[T]) Poll() (T, error) {
	var zero T
	for {
		if !d.source.Done() {
			if v, err := d.source.Poll(); err == nil {
				if d.bound > 0 {
					for len(d.queue) >= d.bound {
						d.queue = append(d.queue[:0], d.queue[1:]...)
					}
				}
				d.queue = append(d.queue, v)
				continue
			}
		}
		if d.timer == nil && len(d.queue) > 0 {
			d.inflight = d.queue[0]
			d.queue = append(d.queue[:0], d.queue[1:]...)
			d.held = true
			d.timer = d.factory(d.inflight)
		}
		if d.timer != nil {
			if err := d.timer.Poll(); err == nil {
				d.timer = nil
				d.held = false
				out := d.inflight
				d.inflight = zero
				return out, nil
			}
			return zero, iox.ErrWouldBlock
		}
		if d.source.Done() {
			return zero, io.EOF
		}
		return zero, iox.ErrWouldBlock
	}
}

// SizeHint: queued and in-flight items are certain to emit; the upstream
// part is bounded but not guaranteed under eviction.
func (d *delayEvery[T]) SizeHint() (lower, upper int) {
	held := len(d.queue)
	if d.held {
		held++
	}
	_, u := d.source.SizeHint()
	if u >= 0 {
		u += held
	}
	return held, u
}
