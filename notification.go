// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/kont"
)

// Complete marks the end of a materialized sequence.
type Complete struct{}

// Notification reifies one stream signal as a plain value: the right
// side carries an item, the left side carries Complete. Materialized
// streams can then be buffered, multicast or transported like any other
// value stream and turned back with Dematerialize.
type Notification[T any] = kont.Either[Complete, T]

// Next wraps an item signal.
func Next[T any](value T) Notification[T] {
	return kont.Right[Complete, T](value)
}

// Done is the end-of-sequence signal.
func Done[T any]() Notification[T] {
	return kont.Left[Complete, T](Complete{})
}

type materialize[T any] struct {
	source   *fused[T]
	signaled bool
}

// Materialize turns a stream into its notification form: one Next per
// item, then exactly one Done, then the materialized stream itself ends.
func Materialize[T any](source Stream[T]) Stream[Notification[T]] {
	return &materialize[T]{source: fuse(source)}
}

func (m *materialize[T]) Poll() (Notification[T], error) {
	if m.signaled {
		var zero Notification[T]
		return zero, io.EOF
	}
	v, err := m.source.Poll()
	if err == nil {
		return Next(v), nil
	}
	if m.source.Done() {
		m.signaled = true
		return Done[T](), nil
	}
	var zero Notification[T]
	return zero, err
}

func (m *materialize[T]) SizeHint() (lower, upper int) {
	if m.signaled {
		return 0, 0
	}
	lower, upper = m.source.SizeHint()
	lower++
	if upper >= 0 {
		upper++
	}
	return lower, upper
}

type dematerialize[T any] struct {
	source *fused[Notification[T]]
	done   bool
}

// Dematerialize interprets a notification stream back into the signals
// it encodes: Next values become items and the first Done ends the
// stream. Notifications after Done, and an upstream end without Done,
// both just end the stream.
func Dematerialize[T any](source Stream[Notification[T]]) Stream[T] {
	return &dematerialize[T]{source: fuse(source)}
}

func (d *dematerialize[T]) Poll() (T, error) {
	var zero T
	if d.done {
		return zero, io.EOF
	}
	n, err := d.source.Poll()
	if err != nil {
		if d.source.Done() {
			d.done = true
			return zero, io.EOF
		}
		return zero, err
	}
	if v, ok := n.GetRight(); ok {
		return v, nil
	}
	d.done = true
	return zero, io.EOF
}
