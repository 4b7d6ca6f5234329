// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

// shareCore is the single upstream-to-subject pump behind every handle of
// one shared stream. Whichever handle polls first drives the upstream one
// step; the emitted value fans out through the subject to all handles.
type shareCore[T any] struct {
	source  *fused[T]
	subject Subject[T]
}

// drive advances the upstream by at most one item and forwards it into
// the subject. Upstream exhaustion closes the subject.
func (c *shareCore[T]) drive() {
	if c.source.Done() {
		return
	}
	v, err := c.source.Poll()
	switch {
	case err == nil:
		c.subject.Push(v)
	case c.source.Done():
		c.subject.Close()
	}
}

// Shared is one consumer handle of a multicast stream. All handles of the
// same Share call observe the same upstream items; the upstream itself is
// polled at most once per handle poll, no matter how many handles exist.
type Shared[T any] struct {
	core *shareCore[T]
	sub  *Subscription[T]
}

func newShared[T any](source Stream[T], subject Subject[T]) *Shared[T] {
	core := &shareCore[T]{source: fuse(source), subject: subject}
	return &Shared[T]{core: core, sub: subject.Subscribe()}
}

// Share multicasts source through a publish subject: handles observe only
// items emitted after they were created.
func Share[T any](source Stream[T]) *Shared[T] {
	return newShared(source, NewPublishSubject[T]())
}

// ShareBehavior multicasts source through a behavior subject seeded with
// initial: every handle first observes the most recent item.
func ShareBehavior[T any](source Stream[T], initial T) *Shared[T] {
	return newShared(source, NewBehaviorSubjectSeeded(initial))
}

// ShareReplay multicasts source through an unbounded replay subject:
// every handle observes the full history from the start.
func ShareReplay[T any](source Stream[T]) *Shared[T] {
	return newShared(source, NewReplaySubject[T]())
}

// ShareReplayBuffer is ShareReplay with the backlog capped at size items,
// oldest first out.
func ShareReplayBuffer[T any](source Stream[T], size int) *Shared[T] {
	return newShared(source, NewReplaySubjectBuffer[T](size))
}

// Clone creates another handle over the same upstream. What the new
// handle observes of past items depends on the subject variant chosen at
// Share time.
func (s *Shared[T]) Clone() *Shared[T] {
	return &Shared[T]{core: s.core, sub: s.core.subject.Subscribe()}
}

// Poll implements Stream. It advances the upstream by at most one item,
// then pops this handle's mailbox.
func (s *Shared[T]) Poll() (Event[T], error) {
	s.core.drive()
	return s.sub.Poll()
}

// Cancel releases this handle. Other handles keep observing the upstream.
func (s *Shared[T]) Cancel() {
	s.sub.Cancel()
}

// SizeHint reports the handle's queued backlog bounds.
func (s *Shared[T]) SizeHint() (lower, upper int) {
	return s.sub.SizeHint()
}
