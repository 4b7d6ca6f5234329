// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "io"

type startWith[T any] struct {
	source *fused[T]
	head   []T
}

// StartWith prepends values, in argument order, ahead of everything the
// source emits.
func StartWith[T any](source Stream[T], values ...T) Stream[T] {
	head := make([]T, len(values))
	copy(head, values)
	return &startWith[T]{source: fuse(source), head: head}
}

func (s *startWith[T]) Poll() (T, error) {
	if len(s.head) > 0 {
		v := s.head[0]
		var zero T
		s.head[0] = zero
		s.head = s.head[1:]
		return v, nil
	}
	return s.source.Poll()
}

func (s *startWith[T]) SizeHint() (lower, upper int) {
	lower, upper = s.source.SizeHint()
	lower += len(s.head)
	if upper >= 0 {
		upper += len(s.head)
	}
	return lower, upper
}

type endWith[T any] struct {
	source *fused[T]
	tail   []T
}

// EndWith appends values, in argument order, after the source has ended.
func EndWith[T any](source Stream[T], values ...T) Stream[T] {
	tail := make([]T, len(values))
	copy(tail, values)
	return &endWith[T]{source: fuse(source), tail: tail}
}

func (e *endWith[T]) Poll() (T, error) {
	if !e.source.Done() {
		v, err := e.source.Poll()
		if err == nil || !e.source.Done() {
			return v, err
		}
	}
	if len(e.tail) > 0 {
		v := e.tail[0]
		var zero T
		e.tail[0] = zero
		e.tail = e.tail[1:]
		return v, nil
	}
	var zero T
	return zero, io.EOF
}

func (e *endWith[T]) SizeHint() (lower, upper int) {
	lower, upper = e.source.SizeHint()
	lower += len(e.tail)
	if upper >= 0 {
		upper += len(e.tail)
	}
	return lower, upper
}
