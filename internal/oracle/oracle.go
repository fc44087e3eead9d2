// package oracle computes reference results for the rounding
// arithmetic in the root package. It is deliberately independent of the
// bit twiddling it exists to check: everything is multiply, divide and
// compare-the-remainder. math/big makes that exact at any width; for
// operands whose product fits in a single word there's a divmod fast
// path, because the brute-force harness calls this once per input and
// the difference is hours.
package oracle

import (
	"math"
	"math/big"
)

// Round returns round(num * mul / 2^shift) with ties away from zero,
// exactly, for any operands whatsoever.
func Round(num, mul *big.Int, shift uint) *big.Int {
	p := new(big.Int).Mul(num, mul)
	neg := p.Sign() < 0
	p.Abs(p)
	den := new(big.Int).Lsh(one, shift)
	q, r := new(big.Int).QuoRem(p, den, new(big.Int))
	// round the magnitude up when 2r >= den; ties land here, which on
	// the magnitude is exactly away from zero.
	if r.Lsh(r, 1).Cmp(den) >= 0 {
		q.Add(q, one)
	}
	if neg {
		q.Neg(q)
	}
	return q
}

var one = big.NewInt(1)

// S64 returns round(num * mul / 2^shift) for int64 operands and shifts
// up to 62, and whether the result is representable as an int64 at all.
func S64(num, mul int64, shift uint) (int64, bool) {
	if p, ok := mulFits(num, mul); ok {
		return roundQuo(p, shift), true
	}
	r := Round(big.NewInt(num), big.NewInt(mul), shift)
	if !r.IsInt64() {
		return 0, false
	}
	return r.Int64(), true
}

// U64 is S64 for uint64 operands, with shifts up to 63.
func U64(num, mul uint64, shift uint) (uint64, bool) {
	if num == 0 || mul == 0 {
		return 0, true
	}
	if num <= math.MaxUint64/mul {
		return roundQuoU(num*mul, shift), true
	}
	r := Round(new(big.Int).SetUint64(num), new(big.Int).SetUint64(mul), shift)
	if !r.IsUint64() {
		return 0, false
	}
	return r.Uint64(), true
}

// roundQuo is the divmod formulation of round(p / 2^shift), ties away
// from zero, for shift <= 62. Go's / and % truncate towards zero, so
// the remainder has the sign of p and comparing its doubled magnitude
// against the divisor is all there is to it.
func roundQuo(p int64, shift uint) int64 {
	den := int64(1) << shift
	q, r := p/den, p%den
	if r < 0 {
		r = -r
	}
	if 2*r >= den {
		if p < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

func roundQuoU(p uint64, shift uint) uint64 {
	den := uint64(1) << shift
	q, r := p/den, p%den
	if 2*r >= den {
		q++
	}
	return q
}

// mulFits reports whether num * mul is representable as an int64, and
// returns it when it is. The comparisons are against the divided
// limits, so nothing here can itself overflow (notably not
// MinInt64 * -1).
func mulFits(num, mul int64) (int64, bool) {
	if (num > 0 && mul > 0 && num > math.MaxInt64/mul) ||
		(num > 0 && mul <= 0 && mul < math.MinInt64/num) ||
		(num <= 0 && mul > 0 && num < math.MinInt64/mul) ||
		(num < 0 && mul <= 0 && mul < math.MaxInt64/num) {
		return 0, false
	}
	return num * mul, true
}
