// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type buffer[T any] struct {
	source  *fused[T]
	factory func(item T, count int) Timer
	timer   Timer
	buf     []T
	open    bool
}

// Buffer groups source items into slices. Every arriving item joins the
// current group and re-arms the group timer via factory(item, count),
// count being the group size including the item; the group is emitted
// when the armed timer fires. Upstream exhaustion emits the partial
// group. Returning Elapsed from factory at a count bound yields
// fixed-size groups.
func Buffer[T any](source Stream[T], factory func(item T, count int) Timer) Stream[[]T] {
	return &buffer[T]{source: fuse(source), factory: factory}
}

func (b *buffer[T]) Poll() ([]T, error) {
	for {
		if b.timer != nil {
			if err := b.timer.Poll(); err == nil {
				b.timer = nil
				out := b.buf
				b.buf = nil
				b.open = false
				return out, nil
			}
		}
		v, err := b.source.Poll()
		if err == nil {
			b.buf = append(b.buf, v)
			b.open = true
			b.timer = b.factory(v, len(b.buf))
			continue
		}
		if b.source.Done() {
			if b.open {
				out := b.buf
				b.buf = nil
				b.open = false
				b.timer = nil
				return out, nil
			}
			return nil, io.EOF
		}
		return nil, iox.ErrWouldBlock
	}
}

// SizeHint: only the final partial group is certain; everything else
// depends on timer firings.
func (b *buffer[T]) SizeHint() (lower, upper int) {
	l, u := b.source.SizeHint()
	if l > 1 {
		l = 1
	}
	return l, u
}
