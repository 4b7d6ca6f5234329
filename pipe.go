// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// pipeCapacity is the bounded capacity for pipe transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const pipeCapacity = 4

// pipePair holds the queue and shared close flag in a single
// allocation; only the ring buffer is a separate heap object.
type pipePair[T any] struct {
	q      lfq.SPSC[T]
	closed atomix.Uint32
}

// Sender is the producer side of a Pipe. Single-producer: exactly one
// goroutine may use it.
type Sender[T any] struct {
	pair *pipePair[T]
	slot T
}

// Receiver is the consumer side of a Pipe, a Stream fed from another
// goroutine. Single-consumer: exactly one goroutine may poll it.
type Receiver[T any] struct {
	pair *pipePair[T]
}

// Pipe creates a connected producer/consumer pair over a bounded
// lock-free SPSC queue, bridging a stream across exactly two
// goroutines. The receiver drains everything sent before Close and then
// ends.
func Pipe[T any]() (*Sender[T], *Receiver[T]) {
	pair := &pipePair[T]{}
	pair.q.Init(pipeCapacity)
	return &Sender[T]{pair: pair}, &Receiver[T]{pair: pair}
}

// Send enqueues value without blocking: it returns iox.ErrWouldBlock
// when the bounded queue is full and io.ErrClosedPipe after Close.
func (s *Sender[T]) Send(value T) error {
	if s.pair.closed.Load() != 0 {
		return io.ErrClosedPipe
	}
	s.slot = value
	return s.pair.q.Enqueue(&s.slot)
}

// SendWait blocks past the full-queue boundary with adaptive backoff.
func (s *Sender[T]) SendWait(value T) error {
	var bo iox.Backoff
	for {
		err := s.Send(value)
		if err == nil || !iox.IsWouldBlock(err) {
			return err
		}
		bo.Wait()
	}
}

// Close ends the stream on the receiver side once the queue drains.
// Idempotent.
func (s *Sender[T]) Close() {
	s.pair.closed.Store(1)
}

// Poll implements Stream. After Close it keeps yielding whatever is
// still queued and only then reports io.EOF.
func (r *Receiver[T]) Poll() (T, error) {
	v, err := r.pair.q.Dequeue()
	if err == nil {
		return v, nil
	}
	if r.pair.closed.Load() != 0 {
		// an enqueue may have landed between Dequeue and the flag read
		v, err = r.pair.q.Dequeue()
		if err == nil {
			return v, nil
		}
		var zero T
		return zero, io.EOF
	}
	var zero T
	return zero, iox.ErrWouldBlock
}
