// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "time"

// Timed is one stream item annotated with its arrival time. Interval is
// the gap since the previous item; HasInterval is false on the first
// item of a stream.
type Timed[T any] struct {
	Value       T
	Timestamp   time.Time
	Interval    time.Duration
	HasInterval bool
}

type timing[T any] struct {
	source *fused[T]
	last   time.Time
	primed bool
}

// Timing annotates every item with the wall-clock moment it was pulled
// and the interval since the previous one.
func Timing[T any](source Stream[T]) Stream[Timed[T]] {
	return &timing[T]{source: fuse(source)}
}

func (t *timing[T]) Poll() (Timed[T], error) {
	v, err := t.source.Poll()
	if err != nil {
		return Timed[T]{}, err
	}
	now := time.Now()
	out := Timed[T]{Value: v, Timestamp: now}
	if t.primed {
		out.Interval = now.Sub(t.last)
		out.HasInterval = true
	}
	t.last = now
	t.primed = true
	return out, nil
}

func (t *timing[T]) SizeHint() (lower, upper int) {
	return t.source.SizeHint()
}
