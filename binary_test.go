package orrery

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func decode(ds []uint8) uint64 {
	n := uint64(0)
	for _, d := range ds {
		n = n<<1 | uint64(d)
	}
	return n
}

func TestDigits(t *testing.T) {
	var tts = []struct {
		n  uint64
		ds []uint8
	}{
		{0, []uint8{0}},
		{1, []uint8{1}},
		{2, []uint8{1, 0}},
		{3, []uint8{1, 1}},
		{7, []uint8{1, 1, 1}},
		{10, []uint8{1, 0, 1, 0}},
		{595, []uint8{1, 0, 0, 1, 0, 1, 0, 0, 1, 1}},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			test.T(t, Digits(tt.n), tt.ds)
		})
	}
}

func TestDigitsRoundtrip(t *testing.T) {
	ns := []uint64{0, 1, 5, 42, 255, 256, 4333, 778547, 1<<32 + 1, math.MaxUint64}
	for n := uint64(0); n < 1024; n++ {
		ns = append(ns, n)
	}
	for _, n := range ns {
		ds := Digits(n)
		test.T(t, decode(ds), n, fmt.Sprint(n))
		test.That(t, ds[0] == 1 || len(ds) == 1 && n == 0, "leading zero", n)
		for _, d := range ds {
			test.That(t, d == 0 || d == 1, "digit", d)
		}
	}
}

func TestReversed(t *testing.T) {
	ds := []uint8{1, 1, 0}
	test.T(t, Reversed(ds), []uint8{0, 1, 1})
	test.T(t, ds, []uint8{1, 1, 0}) // unchanged
	test.T(t, Reversed([]uint8{}), []uint8{})
}
