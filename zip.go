// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

// zip holds one pending slot per input. A poll round first tries to fill
// every empty slot, then emits exactly when all slots are full.
type zip[T any] struct {
	inputs  []*fused[T]
	pending []T
	filled  []bool
}

// Zip pairs sources index-wise into a stream of tuple slices: the n-th
// emission holds the n-th item of every source. A fresh slice is produced
// per emission.
//
// The zipped stream ends as soon as any source ends while its slot for
// the next tuple is still empty; surplus items of longer sources are
// discarded. With no sources it ends immediately.
func Zip[T any](sources ...Stream[T]) Stream[[]T] {
	z := &zip[T]{
		inputs:  make([]*fused[T], len(sources)),
		pending: make([]T, len(sources)),
		filled:  make([]bool, len(sources)),
	}
	for i, s := range sources {
		z.inputs[i] = fuse(s)
	}
	return z
}

func (z *zip[T]) Poll() ([]T, error) {
	if len(z.inputs) == 0 {
		return nil, io.EOF
	}
	full := true
	for i, in := range z.inputs {
		if z.filled[i] {
			continue
		}
		if in.Done() {
			return nil, io.EOF
		}
		v, err := in.Poll()
		switch {
		case err == nil:
			z.pending[i] = v
			z.filled[i] = true
		case in.Done():
			return nil, io.EOF
		default:
			full = false
		}
	}
	if !full {
		return nil, iox.ErrWouldBlock
	}
	out := make([]T, len(z.pending))
	copy(out, z.pending)
	clear(z.pending)
	for i := range z.filled {
		z.filled[i] = false
	}
	return out, nil
}

// SizeHint intersects the input hints: the zipped length is the minimum
// of the input lengths.
func (z *zip[T]) SizeHint() (lower, upper int) {
	if len(z.inputs) == 0 {
		return 0, 0
	}
	lower, upper = z.inputs[0].SizeHint()
	for _, in := range z.inputs[1:] {
		l, u := in.SizeHint()
		if l < lower {
			lower = l
		}
		if upper < 0 || (u >= 0 && u < upper) {
			upper = u
		}
	}
	return lower, upper
}
