package verify

// sweep.go decides which inputs a case actually feeds through the
// arithmetic. 8 and 16 bits are always exhaustive, 32 bits is
// exhaustive when Sweep is 0 and sampled otherwise, and 64 bits is
// always sampled: windows at both extremes and around zero, plus a
// deterministic sweep from a maximal-length 64 bit Galois LFSR, so a
// failure reproduces without anyone having to remember a seed.

// window is how far the boundary scans extend from each extreme (and
// either side of zero) for the sampled widths.
const window = 1 << 12

// defaultSweep is the LFSR sweep length used when a 64 bit case asks
// for Sweep == 0, which would otherwise mean a 2^64 loop.
const defaultSweep = 1 << 22

const taps64 uint64 = 0xd800000000000000 // x^64 + x^63 + x^61 + x^60 + 1

// lfsr is a Galois linear-feedback shift register over the full 64 bit
// word. With taps64 its period is 2^64 - 1; the all-zero word is the
// one state it never visits, and zero is in the boundary windows
// anyway.
type lfsr struct {
	state uint64
}

func newLFSR() *lfsr {
	return &lfsr{state: ^uint64(0)}
}

func (l *lfsr) next() uint64 {
	fb := l.state & 1
	l.state >>= 1
	if fb == 1 {
		l.state ^= taps64
	}
	return l.state
}

func (c Case) exhaustive() bool {
	return c.Width <= 16 || (c.Width == 32 && c.Sweep == 0)
}

func (c Case) sweepLen() uint64 {
	if c.Sweep == 0 {
		return defaultSweep
	}
	return c.Sweep
}

func signedInputs(c Case, lo, hi int64, fn func(int64)) {
	if c.exhaustive() {
		for num := lo; ; num++ {
			fn(num)
			if num == hi {
				return
			}
		}
	}
	for num := lo; num < lo+window; num++ {
		fn(num)
	}
	for num := hi - window + 1; ; num++ {
		fn(num)
		if num == hi {
			break
		}
	}
	for num := int64(-window); num <= window; num++ {
		fn(num)
	}
	l := newLFSR()
	for i := uint64(0); i < c.sweepLen(); i++ {
		v := l.next()
		if c.Width == 32 {
			fn(int64(int32(uint32(v))))
		} else {
			fn(int64(v))
		}
	}
}

func unsignedInputs(c Case, hi uint64, fn func(uint64)) {
	if c.exhaustive() {
		for num := uint64(0); ; num++ {
			fn(num)
			if num == hi {
				return
			}
		}
	}
	for num := uint64(0); num < window; num++ {
		fn(num)
	}
	for num := hi - window + 1; ; num++ {
		fn(num)
		if num == hi {
			break
		}
	}
	l := newLFSR()
	for i := uint64(0); i < c.sweepLen(); i++ {
		v := l.next()
		if c.Width == 32 {
			fn(uint64(uint32(v)))
		} else {
			fn(v)
		}
	}
}
