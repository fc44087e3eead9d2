package shiftround

import "math/bits"

// wide.go: the 64 bit MulShift functions. There's no int128 to widen
// into, so the product is a hi:lo pair of 64 bit words and the bias add
// and the final shift are done by hand. The shape is otherwise the same
// as mulShiftS32Bias: bias of 2^(shift-1), one less for a negative
// product, then shift. Only the low word of the shifted product is
// returned; by contract the result fits in 64 bits, so the rest is the
// caller's lookout.

// MulShiftU64 returns round(num * mul / 2^shift) for 1 <= shift <= 63.
func MulShiftU64(num, mul uint64, shift uint) uint64 {
	hi, lo := bits.Mul64(num, mul)
	lo, carry := bits.Add64(lo, uint64(1)<<(shift-1), 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return lo>>shift | hi<<(64-shift)
}

// MulShiftS64 returns round(num * mul / 2^shift) with ties away from
// zero, for 1 <= shift <= 62.
func MulShiftS64(num, mul int64, shift uint) int64 {
	hi, lo := bits.Mul64(uint64(num), uint64(mul))
	// bits.Mul64 read each negative operand as its two's complement
	// reinterpretation, i.e. as num + 2^64. That inflates the product
	// by mul<<64 and/or num<<64, so peel those back off the high word.
	hi -= uint64(num>>63) & uint64(mul)
	hi -= uint64(mul>>63) & uint64(num)
	// int64(hi) >> 63 is -1 exactly when the product is negative, which
	// as a uint64 is the same subtract-one-from-the-bias nudge the
	// narrow versions use.
	bias := uint64(1)<<(shift-1) + uint64(int64(hi)>>63)
	lo, carry := bits.Add64(lo, bias, 0)
	hi, _ = bits.Add64(hi, 0, carry)
	return int64(lo>>shift | hi<<(64-shift))
}

// mulHiLo64 multiplies two 64 bit words into a 128 bit hi:lo pair using
// four 32 bit partial products. bits.Mul64 is a single instruction on
// anything current so the exported functions use that; this exists as a
// genuinely independent implementation to hold it against, and because
// doing the carries by hand once keeps them honest.
func mulHiLo64(a, b uint64) (hi, lo uint64) {
	const mask = 1<<32 - 1
	// split a = (a1 << 32 + a0), b = (b1 << 32 + b0)
	a0, a1 := a&mask, a>>32
	b0, b1 := b&mask, b>>32

	w0 := a0 * b0
	t := a1*b0 + w0>>32
	w1 := t & mask
	w2 := t >> 32
	w1 += a0 * b1
	hi = a1*b1 + w2 + w1>>32
	lo = a * b
	return hi, lo
}

// mulShiftU64Halves is MulShiftU64 on top of mulHiLo64, with the carry
// out of the bias add detected the post-hoc way (the sum wrapped iff it
// came out smaller).
func mulShiftU64Halves(num, mul uint64, shift uint) uint64 {
	hi, lo := mulHiLo64(num, mul)
	sum := lo + uint64(1)<<(shift-1)
	if sum < lo {
		hi++
	}
	return sum>>shift | hi<<(64-shift)
}

// mulShiftS64Halves is MulShiftS64 on top of mulHiLo64.
func mulShiftS64Halves(num, mul int64, shift uint) int64 {
	hi, lo := mulHiLo64(uint64(num), uint64(mul))
	hi -= uint64(num>>63) & uint64(mul)
	hi -= uint64(mul>>63) & uint64(num)
	sum := lo + uint64(1)<<(shift-1) + uint64(int64(hi)>>63)
	if sum < lo {
		hi++
	}
	return int64(sum>>shift | hi<<(64-shift))
}
