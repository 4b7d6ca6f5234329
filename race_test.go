// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"testing"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/rx"
)

func TestRaceFirstReadyWins(t *testing.T) {
	out := rx.Race(rx.Never[int](), rx.From(1, 2, 3))
	wantValues(t, rx.Collect(out), []int{1, 2, 3})
}

func TestRaceOrderBreaksTies(t *testing.T) {
	out := rx.Race(rx.From(1), rx.From(2))
	wantValues(t, rx.Collect(out), []int{1})
}

func TestRaceLoserNeverPolledAgain(t *testing.T) {
	polled := 0
	loser := rx.StreamFunc[int](func() (int, error) {
		polled++
		return 0, iox.ErrWouldBlock
	})
	out := rx.Race[int](loser, rx.From(7))
	wantValues(t, rx.Collect(out), []int{7})
	if polled != 1 {
		t.Fatalf("loser polled %d times, want 1", polled)
	}
}

func TestRaceImmediateEndWins(t *testing.T) {
	out := rx.Race(rx.From[int](), rx.Never[int]())
	wantEOF(t, out)
}

func TestRaceNoSources(t *testing.T) {
	wantEOF(t, rx.Race[int]())
}
