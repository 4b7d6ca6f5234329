// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

// Window is Buffer with each group delivered as a ready child stream
// instead of a slice: the same grouping rules apply and every emitted
// child replays its group to completion.
func Window[T any](source Stream[T], factory func(item T, count int) Timer) Stream[Stream[T]] {
	groups := Buffer(source, factory)
	return StreamFunc[Stream[T]](func() (Stream[T], error) {
		g, err := groups.Poll()
		if err != nil {
			return nil, err
		}
		return From(g...), nil
	})
}
