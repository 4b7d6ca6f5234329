// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type switchMap[T, R any] struct {
	outer *fused[T]
	f     func(T) Stream[R]
	inner *fused[R]
}

// SwitchMap maps every outer item to an inner stream and emits from the
// most recent inner only: a new outer item abandons the previous inner,
// consumed or not. The result ends once the outer stream and the last
// inner stream are both exhausted; an inner ending early merely goes
// quiet until the next outer item.
func SwitchMap[T, R any](source Stream[T], f func(T) Stream[R]) Stream[R] {
	return &switchMap[T, R]{outer: fuse(source), f: f}
}

func (s *switchMap[T, R]) Poll() (R, error) {
	var zero R
	if !s.outer.Done() {
		if v, err := s.outer.Poll(); err == nil {
			s.inner = fuse(s.f(v))
		}
	}
	if s.inner != nil && !s.inner.Done() {
		v, err := s.inner.Poll()
		if err == nil {
			return v, nil
		}
		if !s.inner.Done() {
			return zero, iox.ErrWouldBlock
		}
	}
	if s.outer.Done() {
		return zero, io.EOF
	}
	return zero, iox.ErrWouldBlock
}

// SizeHint: once the outer stream has ended only the live inner remains.
func (s *switchMap[T, R]) SizeHint() (lower, upper int) {
	if s.outer.Done() {
		if s.inner == nil {
			return 0, 0
		}
		return s.inner.SizeHint()
	}
	return 0, -1
}
