// package shiftround computes exactly rounded right shifts and scaled
// multiplies on fixed-width integers: round(num / 2^shift) and
// round(num * mul / 2^shift), with ties rounding away from zero, using
// nothing but integer arithmetic. The intermediate product is always
// carried in something wide enough that it can't overflow; whether the
// final result fits back in the operand type is the caller's problem,
// as is keeping the shift in range. Nothing here checks anything or
// returns an error: these are hot-path primitives and the contract is
// "trust the caller".
package shiftround

import "golang.org/x/exp/constraints"

// Shift returns round(num / 2^shift), rounding halves away from zero:
// Shift(int32(5), 1) = 3 and Shift(int32(-5), 1) = -3. A shift of 0 is
// the identity. shift may be at most N-2 for a signed N bit type and
// N-1 for an unsigned one; larger values break the contract and return
// garbage (though they still won't panic).
//
// There's no multiply here so nothing needs widening, at any width: the
// remainder below the shifted-out bits fits in T by construction.
func Shift[T constraints.Integer](num T, shift uint) T {
	if shift == 0 {
		return num
	}
	var (
		half = T(1) << (shift - 1)
		rem  = num & (T(1)<<shift - 1)
		out  = num >> shift
	)
	// out is the floor. A remainder above half always rounds up; a
	// remainder of exactly half rounds up only for a non-negative num,
	// since for a negative one the floor already sits away from zero.
	if rem > half || (rem == half && num >= 0) {
		out++
	}
	return out
}
