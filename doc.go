// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rx provides composable, lazily-polled event streams and
// multicast subjects.
//
// Streams are pull sequences evaluated one element per Poll call.
//
// # Architecture
//
//   - Poll contract: non-blocking. Poll returns the next element,
//     [io.EOF] once the sequence is exhausted, or
//     [code.hybscloud.com/iox.ErrWouldBlock] when no element is ready yet.
//   - Payloads: emitted values fan out as ref-counted [Event] handles, so
//     multicast never deep-copies.
//   - Subjects: [PublishSubject], [BehaviorSubject] and [ReplaySubject]
//     broadcast pushed values to per-subscriber mailboxes. Variants differ
//     only in what a new subscriber receives up front.
//   - Sharing: [Share] (and [ShareBehavior], [ShareReplay]) turns a
//     single-consumption stream into a cloneable multicast one, pulling
//     upstream exactly once regardless of the subscriber count.
//   - Cross-goroutine entry: [Pipe] bridges an external producer into the
//     poll world over a lock-free bounded queue from
//     [code.hybscloud.com/lfq].
//
// # API Topologies
//
//   - Sources: [From], [FromSeq], [Never], [Pipe].
//   - Combinators: [CombineLatest], [Zip], [Race], [SwitchMap].
//   - Time shaping: [Debounce], [Throttle], [Sample], [Buffer], [Window],
//     [Delay], [DelayEvery] — driven by caller-supplied [Timer] factories,
//     never by an internal clock.
//   - Transformation: [Map], [Pairwise], [Distinct],
//     [DistinctUntilChanged], [Materialize], [Dematerialize], [StartWith],
//     [EndWith], [InspectDone], [Timing].
//
// # Integration
//
//   - Stepping: call Poll directly to integrate with an external
//     cooperative scheduler; retry on iox.ErrWouldBlock.
//   - Blocking: [Collect], [Each] and [Drain] wait past would-block
//     boundaries using adaptive backoff, without goroutines or channels.
//
// # Example
//
//	subject := rx.NewBehaviorSubjectSeeded(0)
//	sub := subject.Subscribe()
//	subject.Push(1)
//	subject.Close()
//	got := rx.Collect(rx.Values(sub)) // [0 1]
package rx
