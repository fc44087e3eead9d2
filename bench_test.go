package shiftround

import "testing"

// The exported functions use the Shift formulation where a wider type
// exists and the bias formulation where one doesn't; these races check
// that choice stays the right way round.

var (
	sink32 int32
	sink64 int64
	sinkU  uint64
)

func BenchmarkMulShiftS32(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink32 = MulShiftS32(int32(i), 0x5555555, 13)
	}
}

func BenchmarkMulShiftS32Bias(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink32 = mulShiftS32Bias(int32(i), 0x5555555, 13)
	}
}

func BenchmarkMulShiftS64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink64 = MulShiftS64(int64(i), 0x555555555555555, 29)
	}
}

func BenchmarkMulShiftS64Halves(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink64 = mulShiftS64Halves(int64(i), 0x555555555555555, 29)
	}
}

func BenchmarkMulShiftU64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkU = MulShiftU64(uint64(i), 0x5555555555555555, 29)
	}
}

func BenchmarkMulShiftU64Halves(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sinkU = mulShiftU64Halves(uint64(i), 0x5555555555555555, 29)
	}
}

func BenchmarkShift64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		sink64 = Shift(int64(i)-(1<<40), 17)
	}
}
