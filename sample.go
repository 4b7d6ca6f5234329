// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/iox"
)

type sample[T, S any] struct {
	source  *fused[T]
	sampler *fused[S]
	latest  T
	fresh   bool
}

// Sample emits the newest unseen source item each time sampler produces
// one; sampler values themselves are discarded. A sampler tick with
// nothing new emits nothing. When the sampler ends, a held item is
// flushed and the stream ends; it also ends once the source has ended
// with no held item, since nothing can be emitted anymore.
func Sample[T, S any](source Stream[T], sampler Stream[S]) Stream[T] {
	return &sample[T, S]{source: fuse(source), sampler: fuse(sampler)}
}

func (s *sample[T, S]) Poll() (T, error) {
	var zero T
	for {
		if !s.source.Done() {
			if v, err := s.source.Poll(); err == nil {
				s.latest = v
				s.fresh = true
				continue
			}
		}
		_, err := s.sampler.Poll()
		switch {
		case err == nil:
			if s.fresh {
				s.fresh = false
				out := s.latest
				return out, nil
			}
			// the tick found nothing new and is spent
			if s.source.Done() {
				return zero, io.EOF
			}
			return zero, iox.ErrWouldBlock
		case s.sampler.Done():
			if s.fresh {
				s.fresh = false
				out := s.latest
				return out, nil
			}
			return zero, io.EOF
		default:
			if s.source.Done() && !s.fresh {
				return zero, io.EOF
			}
			return zero, iox.ErrWouldBlock
		}
	}
}
