// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

type distinct[T comparable] struct {
	source *fused[T]
	seen   map[T]struct{}
}

// Distinct suppresses every item that already occurred anywhere earlier
// in the stream. The set of seen items grows without bound.
func Distinct[T comparable](source Stream[T]) Stream[T] {
	return &distinct[T]{source: fuse(source), seen: make(map[T]struct{})}
}

func (d *distinct[T]) Poll() (T, error) {
	for {
		v, err := d.source.Poll()
		if err != nil {
			return v, err
		}
		if _, dup := d.seen[v]; dup {
			continue
		}
		d.seen[v] = struct{}{}
		return v, nil
	}
}

// DistinctUntilChanged suppresses an item only when it equals its
// immediate predecessor, collapsing runs of repeats to their first item.
func DistinctUntilChanged[T comparable](source Stream[T]) Stream[T] {
	return DistinctUntilChangedFunc(source, func(a, b T) bool { return a == b })
}

type distinctUntilChanged[T any] struct {
	source *fused[T]
	eq     func(a, b T) bool
	prev   T
	primed bool
}

// DistinctUntilChangedFunc is DistinctUntilChanged under a caller
// supplied equivalence.
func DistinctUntilChangedFunc[T any](source Stream[T], eq func(a, b T) bool) Stream[T] {
	return &distinctUntilChanged[T]{source: fuse(source), eq: eq}
}

func (d *distinctUntilChanged[T]) Poll() (T, error) {
	for {
		v, err := d.source.Poll()
		if err != nil {
			return v, err
		}
		if d.primed && d.eq(d.prev, v) {
			continue
		}
		d.prev = v
		d.primed = true
		return v, nil
	}
}
