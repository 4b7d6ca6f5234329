// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

// combineLatest tracks one latest-value slot per input. Every poll round
// advances each live input by at most one item; a round that updates any
// slot while all slots hold a value produces a combined emission.
type combineLatest[T any] struct {
	inputs []*fused[T]
	latest []T
	filled []bool
}

// CombineLatest merges sources into a stream of snapshot slices. Each
// emission holds the most recent value of every source, index-aligned
// with the sources argument; a fresh slice is produced per emission.
//
// The combined stream ends when every source has ended, or as soon as any
// source ends before producing a value, since no full snapshot can form.
// With no sources it ends immediately.
func CombineLatest[T any](sources ...Stream[T]) Stream[[]T] {
	c := &combineLatest[T]{
		inputs: make([]*fused[T], len(sources)),
		latest: make([]T, len(sources)),
		filled: make([]bool, len(sources)),
	}
	for i, s := range sources {
		c.inputs[i] = fuse(s)
	}
	return c
}

func (c *combineLatest[T]) Poll() ([]T, error) {
	changed := false
	allDone := true
	for i, in := range c.inputs {
		if in.Done() {
			if !c.filled[i] {
				return nil, io.EOF
			}
			continue
		}
		v, err := in.Poll()
		switch {
		case err == nil:
			c.latest[i] = v
			c.filled[i] = true
			changed = true
			allDone = false
		case in.Done():
			if !c.filled[i] {
				return nil, io.EOF
			}
		default:
			allDone = false
		}
	}
	if changed && c.allFilled() {
		out := make([]T, len(c.latest))
		copy(out, c.latest)
		return out, nil
	}
	if allDone || len(c.inputs) == 0 {
		return nil, io.EOF
	}
	return nil, iox.ErrWouldBlock
}

func (c *combineLatest[T]) allFilled() bool {
	for _, f := range c.filled {
		if !f {
			return false
		}
	}
	return true
}
