// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type race[T any] struct {
	inputs []*fused[T]
	winner int
}

// Race mirrors whichever source resolves first: the first input to
// produce anything other than would-block, including an immediate end,
// becomes the sole upstream and the rest are never polled again. Inputs
// are probed in argument order, so among simultaneously ready sources
// the earliest wins.
func Race[T any](sources ...Stream[T]) Stream[T] {
	r := &race[T]{inputs: make([]*fused[T], len(sources)), winner: -1}
	for i, s := range sources {
		r.inputs[i] = fuse(s)
	}
	return r
}

func (r *race[T]) Poll() (T, error) {
	if r.winner >= 0 {
		return r.inputs[r.winner].Poll()
	}
	var zero T
	if len(r.inputs) == 0 {
		return zero, io.EOF
	}
	for i, in := range r.inputs {
		v, err := in.Poll()
		if err != nil && iox.IsWouldBlock(err) {
			continue
		}
		r.winner = i
		return v, err
	}
	return zero, iox.ErrWouldBlock
}

func (r *race[T]) SizeHint() (lower, upper int) {
	if r.winner >= 0 {
		return r.inputs[r.winner].SizeHint()
	}
	return 0, -1
}
