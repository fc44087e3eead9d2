// package verify brute-forces the arithmetic in the root package
// against the exact oracle: every representable input for the 8 and 16
// bit widths, and windows around the extremes plus a long deterministic
// sweep for 32 and 64 bits. Cases are independent of each other, so a
// Runner just fans them out over a bounded errgroup and joins.
// Mismatches are logged and counted, never fatal: one wrong case
// shouldn't hide the others.
package verify

import (
	"context"
	"fmt"
	"log"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"
	"golang.org/x/sync/errgroup"

	"github.com/pfcm/shiftround"
	"github.com/pfcm/shiftround/internal/oracle"
)

// Error wraps everything that can go wrong in here other than an
// arithmetic mismatch, which is reported, not returned.
var Error = errs.Class("verify")

// maxLogged caps how many individual mismatches a single case will log
// before it goes quiet and just counts. Everything still runs to
// completion either way.
const maxLogged = 10

// A Case checks one (width, signedness, shift, multiplier) combination.
type Case struct {
	// Width is the operand width in bits: 8, 16, 32 or 64.
	Width int
	// Signed selects the signed flavour of the operation.
	Signed bool
	// Shift is the right shift, within the legal range for the
	// width/signedness.
	Shift uint
	// Mul is the multiplier, and must fit in the operand type. 1
	// isolates the shift-and-round path.
	Mul int64
	// Sweep is how many generated inputs to check for the 32 and 64 bit
	// widths (on top of the boundary windows). 0 means exhaustive,
	// which for 64 bits is quietly replaced by a large sweep. Ignored
	// below 32 bits, which are always exhaustive.
	Sweep uint64
}

func (c Case) String() string {
	s := "u"
	if c.Signed {
		s = "s"
	}
	return fmt.Sprintf("%s%d shift=%d mul=%d", s, c.Width, c.Shift, c.Mul)
}

// Cases builds the standard suite for the given widths: every legal
// shift for both signednesses, crossed with mul=1 and every fitting
// entry of muls. Negative multipliers are skipped for the unsigned
// cases.
func Cases(widths []int, sweep uint64, muls []int64) []Case {
	var out []Case
	for _, w := range widths {
		for _, signed := range []bool{false, true} {
			maxShift := uint(w - 1)
			if signed {
				maxShift = uint(w - 2)
			}
			for shift := uint(1); shift <= maxShift; shift++ {
				seen := map[int64]bool{}
				for _, mul := range append([]int64{1}, muls...) {
					if seen[mul] || !fits(mul, w, signed) {
						continue
					}
					seen[mul] = true
					out = append(out, Case{
						Width:  w,
						Signed: signed,
						Shift:  shift,
						Mul:    mul,
						Sweep:  sweep,
					})
				}
			}
		}
	}
	return out
}

func fits(mul int64, width int, signed bool) bool {
	if width == 64 {
		// any int64 fits; the unsigned cases reuse the int64 field so
		// they only get non-negative multipliers.
		return signed || mul >= 0
	}
	if signed {
		lim := int64(1) << (width - 1)
		return mul >= -lim && mul < lim
	}
	return mul >= 0 && mul < int64(1)<<width
}

// A Report summarises a run.
type Report struct {
	Cases      int
	Inputs     uint64
	Mismatches uint64
}

// A Runner drains a queue of cases across a fixed pool of workers.
type Runner struct {
	// Workers bounds the concurrency. <= 0 means one fewer than
	// GOMAXPROCS, minimum one.
	Workers int
	// Log receives progress and ERROR lines; nil means the standard
	// logger.
	Log *log.Logger
}

// Run checks every case and reports. The error return covers the run
// mechanics only (an already-cancelled context, mostly); arithmetic
// mismatches land in the Report and its callers decide how upset to be.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = max(runtime.GOMAXPROCS(0)-1, 1)
	}
	logf := log.Printf
	if r.Log != nil {
		logf = r.Log.Printf
	}

	var inputs, bad atomic.Uint64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, c := range cases {
		c := c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return Error.Wrap(err)
			}
			n, m := c.run(logf)
			inputs.Add(n)
			bad.Add(m)
			if m == 0 {
				logf("PASS %v (%d inputs)", c, n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return Report{
		Cases:      len(cases),
		Inputs:     inputs.Load(),
		Mismatches: bad.Load(),
	}, nil
}

type logFunc func(string, ...any)

func (c Case) run(logf logFunc) (checked, bad uint64) {
	if c.Signed {
		switch c.Width {
		case 8:
			return checkSigned(c, logf, func(num int64) int64 {
				return int64(shiftround.MulShiftS8(int8(num), int8(c.Mul), c.Shift))
			})
		case 16:
			return checkSigned(c, logf, func(num int64) int64 {
				return int64(shiftround.MulShiftS16(int16(num), int16(c.Mul), c.Shift))
			})
		case 32:
			return checkSigned(c, logf, func(num int64) int64 {
				return int64(shiftround.MulShiftS32(int32(num), int32(c.Mul), c.Shift))
			})
		case 64:
			return checkSigned(c, logf, func(num int64) int64 {
				return shiftround.MulShiftS64(num, c.Mul, c.Shift)
			})
		}
	} else {
		switch c.Width {
		case 8:
			return checkUnsigned(c, logf, func(num uint64) uint64 {
				return uint64(shiftround.MulShiftU8(uint8(num), uint8(c.Mul), c.Shift))
			})
		case 16:
			return checkUnsigned(c, logf, func(num uint64) uint64 {
				return uint64(shiftround.MulShiftU16(uint16(num), uint16(c.Mul), c.Shift))
			})
		case 32:
			return checkUnsigned(c, logf, func(num uint64) uint64 {
				return uint64(shiftround.MulShiftU32(uint32(num), uint32(c.Mul), c.Shift))
			})
		case 64:
			return checkUnsigned(c, logf, func(num uint64) uint64 {
				return shiftround.MulShiftU64(num, uint64(c.Mul), c.Shift)
			})
		}
	}
	logf("ERROR skipping unknown width: %s", spew.Sdump(c))
	return 0, 1
}

// checkSigned runs op over every input the case calls for, comparing
// against the oracle. Inputs whose true result doesn't fit back in the
// operand type are outside the contract and skipped.
func checkSigned(c Case, logf logFunc, op func(int64) int64) (checked, bad uint64) {
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	if c.Width < 64 {
		hi = int64(1)<<(c.Width-1) - 1
		lo = -hi - 1
	}
	check := func(num int64) {
		want, ok := oracle.S64(num, c.Mul, c.Shift)
		if !ok || want < lo || want > hi {
			return
		}
		checked++
		if got := op(num); got != want {
			bad++
			if bad <= maxLogged {
				logf("ERROR %v: num=%d got=%d want=%d", c, num, got, want)
			}
			if bad == 1 {
				logf("failing case:\n%s", spew.Sdump(c))
			}
		}
	}
	signedInputs(c, lo, hi, check)
	if bad > maxLogged {
		logf("ERROR %v: %d mismatches in total (only %d logged)", c, bad, maxLogged)
	}
	return checked, bad
}

func checkUnsigned(c Case, logf logFunc, op func(uint64) uint64) (checked, bad uint64) {
	hi := uint64(math.MaxUint64)
	if c.Width < 64 {
		hi = uint64(1)<<c.Width - 1
	}
	check := func(num uint64) {
		want, ok := oracle.U64(num, uint64(c.Mul), c.Shift)
		if !ok || want > hi {
			return
		}
		checked++
		if got := op(num); got != want {
			bad++
			if bad <= maxLogged {
				logf("ERROR %v: num=%d got=%d want=%d", c, num, got, want)
			}
			if bad == 1 {
				logf("failing case:\n%s", spew.Sdump(c))
			}
		}
	}
	unsignedInputs(c, hi, check)
	if bad > maxLogged {
		logf("ERROR %v: %d mismatches in total (only %d logged)", c, bad, maxLogged)
	}
	return checked, bad
}
