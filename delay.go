// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "code.hybscloud.com/iox"

type delay[T any] struct {
	source  *fused[T]
	factory func() Timer
	timer   Timer
	armed   bool
}

// Delay holds the whole stream back once: the timer from factory is
// armed on the first poll and until it fires nothing is read from
// source. After that the stream passes through untouched.
func Delay[T any](source Stream[T], factory func() Timer) Stream[T] {
	return &delay[T]{source: fuse(source), factory: factory}
}

func (d *delay[T]) Poll() (T, error) {
	if !d.armed {
		d.armed = true
		d.timer = d.factory()
	}
	if d.timer != nil {
		if err := d.timer.Poll(); err != nil {
			var zero T
			return zero, iox.ErrWouldBlock
		}
		d.timer = nil
	}
	return d.source.Poll()
}

func (d *delay[T]) SizeHint() (lower, upper int) {
	return d.source.SizeHint()
}
