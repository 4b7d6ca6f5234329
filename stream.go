// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

// Stream is a lazily evaluated pull sequence of elements of type T.
//
// Poll is non-blocking: it returns the next element, io.EOF once the
// sequence is exhausted, or iox.ErrWouldBlock when no element is ready
// yet and the caller should poll again later. A stream must be polled
// from a single goroutine; operators never spawn background work.
type Stream[T any] interface {
	Poll() (T, error)
}

// SizeHinter reports bounds on the number of elements a stream has left.
// upper < 0 means the bound is unknown or unbounded.
type SizeHinter interface {
	SizeHint() (lower, upper int)
}

// sizeHintOf queries s for a size hint, defaulting to (0, unknown).
func sizeHintOf(s any) (lower, upper int) {
	if h, ok := s.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, -1
}

// StreamFunc adapts a plain function to the Stream interface.
type StreamFunc[T any] func() (T, error)

// Poll implements Stream.
func (f StreamFunc[T]) Poll() (T, error) { return f() }
