// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

// Pair couples one item with its successor: First is an owned copy of
// the earlier item, Second a shared handle to the later one. The same
// payload backing Second reappears as First of the next pair.
type Pair[T any] struct {
	First  T
	Second Event[T]
}

type pairwise[T any] struct {
	source *fused[T]
	prev   Event[T]
	primed bool
}

// Pairwise emits each item together with its predecessor, starting from
// the second item: a source of n items yields n-1 overlapping pairs.
// The caller owns each emitted Second handle.
func Pairwise[T any](source Stream[T]) Stream[Pair[T]] {
	return &pairwise[T]{source: fuse(source)}
}

func (p *pairwise[T]) Poll() (Pair[T], error) {
	for {
		v, err := p.source.Poll()
		if err != nil {
			if p.source.Done() && p.primed {
				p.primed = false
				p.prev.Release()
			}
			return Pair[T]{}, err
		}
		ev := NewEvent(v)
		if !p.primed {
			p.prev = ev
			p.primed = true
			continue
		}
		pair := Pair[T]{First: p.prev.Value(), Second: ev.Clone()}
		p.prev.Release()
		p.prev = ev
		return pair, nil
	}
}

func (p *pairwise[T]) SizeHint() (lower, upper int) {
	lower, upper = p.source.SizeHint()
	if !p.primed {
		if lower > 0 {
			lower--
		}
		if upper > 0 {
			upper--
		}
	}
	return lower, upper
}
