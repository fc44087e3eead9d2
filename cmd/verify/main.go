// verify brute-forces every width and shift of the rounding arithmetic
// against the exact oracle and exits non-zero if anything disagrees. A
// full run with -sweep 0 checks all four billion 32 bit inputs per case
// and takes a while; the defaults are sized for a coffee break, not an
// overnight soak.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pfcm/shiftround/verify"
)

var (
	widthsFlag  = flag.String("widths", "8,16,32,64", "comma-separated operand widths to check")
	mulsFlag    = flag.String("muls", "1,-1,2,3,-5,113,-113,251", "comma-separated multipliers to spot-check (1 is always included)")
	workersFlag = flag.Int("workers", 0, "worker pool size; 0 means GOMAXPROCS-1")
	sweepFlag   = flag.Uint64("sweep", 1<<22, "LFSR sweep length for the sampled widths; 0 means exhaustive for 32 bits")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("verify: ")

	widths, err := ints(*widthsFlag)
	if err != nil {
		log.Fatalf("bad -widths: %v", err)
	}
	muls, err := int64s(*mulsFlag)
	if err != nil {
		log.Fatalf("bad -muls: %v", err)
	}

	cases := verify.Cases(widths, *sweepFlag, muls)
	log.Printf("running %d cases", len(cases))

	r := verify.Runner{Workers: *workersFlag}
	rep, err := r.Run(context.Background(), cases)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("checked %d inputs across %d cases", rep.Inputs, rep.Cases)
	if rep.Mismatches > 0 {
		log.Printf("FAIL: %d mismatches", rep.Mismatches)
		os.Exit(1)
	}
	log.Println("PASS")
}

func ints(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func int64s(s string) ([]int64, error) {
	var out []int64
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
