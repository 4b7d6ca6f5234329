// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

// Collect drains s to completion and returns every item in order.
// Blocks past iox.ErrWouldBlock with adaptive backoff (iox.Backoff),
// without spawning goroutines or creating channels.
func Collect[T any](s Stream[T]) []T {
	var out []T
	if lower, _ := sizeHintOf(s); lower > 0 {
		out = make([]T, 0, lower)
	}
	var bo iox.Backoff
	for {
		v, err := s.Poll()
		switch {
		case err == nil:
			out = append(out, v)
			bo.Reset()
		case err == io.EOF:
			return out
		default:
			bo.Wait()
		}
	}
}

// Each drains s to completion, applying f to every item in order.
// Blocks the same way Collect does.
func Each[T any](s Stream[T], f func(T)) {
	var bo iox.Backoff
	for {
		v, err := s.Poll()
		switch {
		case err == nil:
			f(v)
			bo.Reset()
		case err == io.EOF:
			return
		default:
			bo.Wait()
		}
	}
}

// Drain discards s to completion and reports how many items it dropped.
func Drain[T any](s Stream[T]) int {
	n := 0
	Each(s, func(T) { n++ })
	return n
}
