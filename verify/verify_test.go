package verify

import (
	"context"
	"io"
	"log"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCases(t *testing.T) {
	cs := Cases([]int{8}, 0, []int64{3, -5, 300})

	// unsigned: shifts 1..7, muls {1, 3} (300 doesn't fit, -5 is
	// negative); signed: shifts 1..6, muls {1, 3, -5}.
	require.Len(t, cs, 7*2+6*3)
	for _, c := range cs {
		require.Equal(t, 8, c.Width)
		require.GreaterOrEqual(t, c.Shift, uint(1))
		if c.Signed {
			require.LessOrEqual(t, c.Shift, uint(6))
		} else {
			require.LessOrEqual(t, c.Shift, uint(7))
			require.GreaterOrEqual(t, c.Mul, int64(0))
		}
	}
}

func TestFits(t *testing.T) {
	for _, tc := range []struct {
		mul    int64
		width  int
		signed bool
		want   bool
	}{
		{1, 8, true, true},
		{127, 8, true, true},
		{128, 8, true, false},
		{-128, 8, true, true},
		{-129, 8, true, false},
		{255, 8, false, true},
		{256, 8, false, false},
		{-1, 8, false, false},
		{math.MaxInt64, 64, true, true},
		{math.MinInt64, 64, true, true},
		{math.MaxInt64, 64, false, true},
		{-1, 64, false, false},
	} {
		require.Equal(t, tc.want, fits(tc.mul, tc.width, tc.signed),
			"fits(%d, %d, %v)", tc.mul, tc.width, tc.signed)
	}
}

// TestRunNarrow runs the genuinely exhaustive widths end to end: every
// 8 and 16 bit input for every legal shift and a few multipliers.
func TestRunNarrow(t *testing.T) {
	quiet := log.New(io.Discard, "", 0)
	cases := Cases([]int{8, 16}, 0, []int64{3, -5, 251})
	r := Runner{Workers: 4, Log: quiet}
	rep, err := r.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Equal(t, len(cases), rep.Cases)
	require.NotZero(t, rep.Inputs)
	require.Zero(t, rep.Mismatches)
}

// TestRunWide samples the 32 and 64 bit widths with a short sweep so
// the boundary windows and the LFSR path both get exercised. The full
// shift matrix lives in cmd/verify; a handful of pointed cases keeps
// this test quick.
func TestRunWide(t *testing.T) {
	quiet := log.New(io.Discard, "", 0)
	cases := []Case{
		{Width: 32, Signed: true, Shift: 1, Mul: 1, Sweep: 256},
		{Width: 32, Signed: true, Shift: 7, Mul: -5, Sweep: 256},
		{Width: 32, Signed: false, Shift: 31, Mul: 3, Sweep: 256},
		{Width: 64, Signed: true, Shift: 1, Mul: -5, Sweep: 256},
		{Width: 64, Signed: true, Shift: 62, Mul: 3, Sweep: 256},
		{Width: 64, Signed: false, Shift: 63, Mul: 3, Sweep: 256},
	}
	r := Runner{Workers: 4, Log: quiet}
	rep, err := r.Run(context.Background(), cases)
	require.NoError(t, err)
	require.Equal(t, len(cases), rep.Cases)
	require.NotZero(t, rep.Inputs)
	require.Zero(t, rep.Mismatches)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	quiet := log.New(io.Discard, "", 0)
	r := Runner{Workers: 1, Log: quiet}
	_, err := r.Run(ctx, Cases([]int{8}, 0, nil))
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestLFSR(t *testing.T) {
	l := newLFSR()
	seen := make(map[uint64]bool)
	for i := 0; i < 10000; i++ {
		v := l.next()
		require.NotZero(t, v, "LFSR hit the all-zero state at step %d", i)
		require.False(t, seen[v], "LFSR repeated %#x within %d steps", v, i)
		seen[v] = true
	}
}

// TestSweepCoversExtremes makes sure the sampled widths still always
// see the values most likely to break: both ends of the range and
// everything around zero.
func TestSweepCoversExtremes(t *testing.T) {
	c := Case{Width: 64, Signed: true, Shift: 1, Mul: 1, Sweep: 16}
	seen := make(map[int64]bool)
	signedInputs(c, math.MinInt64, math.MaxInt64, func(num int64) {
		seen[num] = true
	})
	for _, want := range []int64{
		math.MinInt64, math.MinInt64 + 1, -1, 0, 1,
		math.MaxInt64 - 1, math.MaxInt64,
	} {
		require.True(t, seen[want], "sweep never produced %d", want)
	}

	u := Case{Width: 64, Signed: false, Shift: 1, Mul: 1, Sweep: 16}
	seenU := make(map[uint64]bool)
	unsignedInputs(u, math.MaxUint64, func(num uint64) {
		seenU[num] = true
	})
	for _, want := range []uint64{0, 1, math.MaxUint64 - 1, math.MaxUint64} {
		require.True(t, seenU[want], "sweep never produced %d", want)
	}
}
