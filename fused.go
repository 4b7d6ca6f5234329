// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "io"

// fused wraps an upstream so that io.EOF latches: once the upstream ends,
// every further poll reports io.EOF without touching the upstream again.
// Operators rely on this to keep their completion checks cheap and to
// make poll-after-end well defined internally.
type fused[T any] struct {
	stream Stream[T]
	done   bool
}

func fuse[T any](s Stream[T]) *fused[T] {
	return &fused[T]{stream: s}
}

func (f *fused[T]) Poll() (T, error) {
	if f.done {
		var zero T
		return zero, io.EOF
	}
	v, err := f.stream.Poll()
	if err == io.EOF {
		f.done = true
	}
	return v, err
}

// Done reports whether the upstream has ended.
func (f *fused[T]) Done() bool {
	return f.done
}

func (f *fused[T]) SizeHint() (lower, upper int) {
	if f.done {
		return 0, 0
	}
	return sizeHintOf(f.stream)
}
