// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"
	"iter"

	"code.hybscloud.com/iox"
)

// From returns a stream that yields the given values in order, then ends.
func From[T any](values ...T) Stream[T] {
	return &sliceStream[T]{values: values}
}

type sliceStream[T any] struct {
	values []T
	next   int
}

func (s *sliceStream[T]) Poll() (T, error) {
	if s.next >= len(s.values) {
		var zero T
		return zero, io.EOF
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}

func (s *sliceStream[T]) SizeHint() (lower, upper int) {
	n := len(s.values) - s.next
	return n, n
}

// Never returns a stream that never yields and never ends.
func Never[T any]() Stream[T] {
	return StreamFunc[T](func() (T, error) {
		var zero T
		return zero, iox.ErrWouldBlock
	})
}

// FromSeq adapts a Go iterator to a stream. The iterator is pulled one
// element per Poll; its stop function runs when the sequence ends.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	next, stop := iter.Pull(seq)
	return StreamFunc[T](func() (T, error) {
		v, ok := next()
		if !ok {
			stop()
			var zero T
			return zero, io.EOF
		}
		return v, nil
	})
}
