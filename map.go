// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

type mapped[T, R any] struct {
	source Stream[T]
	f      func(T) R
}

// Map transforms every item through f.
func Map[T, R any](source Stream[T], f func(T) R) Stream[R] {
	return &mapped[T, R]{source: source, f: f}
}

func (m *mapped[T, R]) Poll() (R, error) {
	v, err := m.source.Poll()
	if err != nil {
		var zero R
		return zero, err
	}
	return m.f(v), nil
}

func (m *mapped[T, R]) SizeHint() (lower, upper int) {
	return sizeHintOf(m.source)
}

// Values unwraps a stream of shared payload handles into their values,
// releasing each handle after the copy. It is the usual bridge from a
// Subscription or Shared handle back to a plain value stream.
func Values[T any](source Stream[Event[T]]) Stream[T] {
	return &values[T]{source: source}
}

type values[T any] struct {
	source Stream[Event[T]]
}

func (s *values[T]) Poll() (T, error) {
	ev, err := s.source.Poll()
	if err != nil {
		var zero T
		return zero, err
	}
	v := ev.Value()
	ev.Release()
	return v, nil
}

func (s *values[T]) SizeHint() (lower, upper int) {
	return sizeHintOf(s.source)
}
