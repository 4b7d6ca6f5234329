// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

type inspectDone[T any] struct {
	source   *fused[T]
	f        func()
	notified bool
}

// InspectDone passes the source through untouched and invokes f exactly
// once, at the moment the source ends.
func InspectDone[T any](source Stream[T], f func()) Stream[T] {
	return &inspectDone[T]{source: fuse(source), f: f}
}

func (i *inspectDone[T]) Poll() (T, error) {
	v, err := i.source.Poll()
	if i.source.Done() && !i.notified {
		i.notified = true
		i.f()
	}
	return v, err
}

func (i *inspectDone[T]) SizeHint() (lower, upper int) {
	return i.source.SizeHint()
}
