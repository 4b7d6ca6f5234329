// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/rx"
)

func TestZipPairsIndexWise(t *testing.T) {
	zipped := rx.Zip(
		rx.From(1, 2, 3),
		rx.From(6, 7, 8, 9),
		rx.From(10, 11, 12),
	)
	got := rx.Collect(zipped)
	want := [][]int{
		{1, 6, 10},
		{2, 7, 11},
		{3, 8, 12},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestZipShortestInputWins(t *testing.T) {
	zipped := rx.Zip(rx.From(1, 2), rx.From[int]())
	if got := rx.Collect(zipped); len(got) != 0 {
		t.Fatalf("got %v, want no emissions", got)
	}
}

func TestZipHoldsPartialTuples(t *testing.T) {
	slow := playback(wait[int](), value(100), wait[int](), value(200))
	zipped := rx.Zip(rx.From(1, 2), slow)
	got := rx.Collect(zipped)
	want := [][]int{{1, 100}, {2, 200}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestZipSizeHint(t *testing.T) {
	zipped := rx.Zip(rx.From(1, 2, 3), rx.From(4, 5))
	lower, upper := zipped.(rx.SizeHinter).SizeHint()
	if lower != 2 || upper != 2 {
		t.Fatalf("hint got (%d, %d), want (2, 2)", lower, upper)
	}
}
