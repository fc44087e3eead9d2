package shiftround

// mulshift.go holds the 8, 16 and 32 bit MulShift functions, which all
// work the same way: do the multiply one width up, where it can't
// overflow, then hand the product to Shift. The 64 bit versions have no
// wider type to borrow and live in wide.go.
//
// Each signedness/width also keeps a lowercase variant using the other
// standard formulation (add a bias of 2^(shift-1) before shifting,
// nudged down by one for negative products). The exported functions use
// the Shift formulation, the bias one is what wide.go has to use, and
// the tests hold the two equal so neither can drift.

// MulShiftS8 returns round(num * mul / 2^shift) with ties away from
// zero, for 1 <= shift <= 6.
func MulShiftS8(num, mul int8, shift uint) int8 {
	return int8(Shift(int16(num)*int16(mul), shift))
}

// MulShiftU8 returns round(num * mul / 2^shift) for 1 <= shift <= 7.
func MulShiftU8(num, mul uint8, shift uint) uint8 {
	return uint8(Shift(uint16(num)*uint16(mul), shift))
}

// MulShiftS16 returns round(num * mul / 2^shift) with ties away from
// zero, for 1 <= shift <= 14.
func MulShiftS16(num, mul int16, shift uint) int16 {
	return int16(Shift(int32(num)*int32(mul), shift))
}

// MulShiftU16 returns round(num * mul / 2^shift) for 1 <= shift <= 15.
func MulShiftU16(num, mul uint16, shift uint) uint16 {
	return uint16(Shift(uint32(num)*uint32(mul), shift))
}

// MulShiftS32 returns round(num * mul / 2^shift) with ties away from
// zero, for 1 <= shift <= 30.
func MulShiftS32(num, mul int32, shift uint) int32 {
	return int32(Shift(int64(num)*int64(mul), shift))
}

// MulShiftU32 returns round(num * mul / 2^shift) for 1 <= shift <= 31.
func MulShiftU32(num, mul uint32, shift uint) uint32 {
	return uint32(Shift(uint64(num)*uint64(mul), shift))
}

// mulShiftS32Bias is the bias-add formulation of MulShiftS32. Adding
// 2^(shift-1) and arithmetic-shifting rounds halves up, which for a
// negative product is towards zero; subtracting one from the bias when
// the product is negative (p >> 63 is -1 exactly then) turns that back
// into away-from-zero without disturbing the non-tie cases.
func mulShiftS32Bias(num, mul int32, shift uint) int32 {
	p := int64(num) * int64(mul)
	bias := int64(1)<<(shift-1) + p>>63
	return int32((p + bias) >> shift)
}

// mulShiftU32Bias is the bias-add formulation of MulShiftU32. The
// product is at most (2^32-1)^2 so the bias can never carry out of the
// uint64.
func mulShiftU32Bias(num, mul uint32, shift uint) uint32 {
	p := uint64(num) * uint64(mul)
	return uint32((p + 1<<(shift-1)) >> shift)
}

// mulShiftS8Bias and mulShiftU8Bias exist so the formulations can be
// raced exhaustively over every operand pair; see mulshift_test.go.
func mulShiftS8Bias(num, mul int8, shift uint) int8 {
	p := int16(num) * int16(mul)
	bias := int16(1)<<(shift-1) + p>>15
	return int8((p + bias) >> shift)
}

func mulShiftU8Bias(num, mul uint8, shift uint) uint8 {
	p := uint16(num) * uint16(mul)
	return uint8((p + 1<<(shift-1)) >> shift)
}
