// Command bench fans out many independent, separately-seeded
// randomization runs across a worker pool and reports throughput in
// solutions per second, the Go rendering of the Python original's
// benchmark harness (benchmarks/benchmark_utils.go's Hz reporting).
//
// Each worker owns its own *constrainedrandom.Problem and *Source, so
// this does not violate the single-solve determinism contract: it
// measures many fully independent solves running concurrently, not
// concurrency inside one solve.
package main

import (
	"context"
	"flag"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gitrdm/constrainedrandom/internal/parallel"
	"github.com/gitrdm/constrainedrandom/pkg/constrainedrandom"
)

func main() {
	workers := flag.Int("workers", 0, "worker pool size (0 = number of CPUs)")
	duration := flag.Duration("duration", 2*time.Second, "how long to run the benchmark")
	flag.Parse()

	pool := parallel.NewWorkerPool(*workers)
	defer pool.Shutdown()

	var solved int64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	var seed int64
	for ctx.Err() == nil {
		s := atomic.AddInt64(&seed, 1)
		submitErr := pool.Submit(ctx, func() {
			if runOnce(s) {
				atomic.AddInt64(&solved, 1)
			}
		})
		if submitErr != nil {
			break
		}
	}

	<-ctx.Done()
	elapsed := duration.Seconds()
	n := atomic.LoadInt64(&solved)
	fmt.Printf("solved %d load-opcode problems in %.2fs (%.1f solutions/sec)\n", n, elapsed, float64(n)/elapsed)
}

// runOnce builds and solves one independent instance of the load-opcode
// problem, seeded from seed, and returns whether it succeeded.
func runOnce(seed int64) bool {
	src := constrainedrandom.NewSource(seed)
	p := constrainedrandom.NewProblem(src)

	five, one, eleven := 5, 1, 11
	if err := p.AddVar("src0", constrainedrandom.VarSpec{Bits: &five, Order: 0}); err != nil {
		return false
	}
	if err := p.AddVar("src0_value", constrainedrandom.VarSpec{
		Fn:    func(src *constrainedrandom.Source, args []any) any { return 0xfffffbcd },
		Order: 0,
	}); err != nil {
		return false
	}
	if err := p.AddVar("wb", constrainedrandom.VarSpec{Bits: &one, Order: 0}); err != nil {
		return false
	}
	if err := p.AddVar("dst0", constrainedrandom.VarSpec{Bits: &five, Order: 1}); err != nil {
		return false
	}
	if err := p.AddVar("imm0", constrainedrandom.VarSpec{Bits: &eleven, Order: 2}); err != nil {
		return false
	}

	if err := p.AddConstraint(constrainedrandom.MultiConstraint{
		Tag: "wb_dst_src",
		Check: func(values map[string]any) bool {
			if values["wb"].(int) != 0 {
				return values["dst0"].(int) != values["src0"].(int)
			}
			return true
		},
	}, []string{"wb", "dst0", "src0"}); err != nil {
		return false
	}
	if err := p.AddConstraint(constrainedrandom.MultiConstraint{
		Tag: "sum_src0_imm0",
		Check: func(values map[string]any) bool {
			address := values["src0_value"].(int) + values["imm0"].(int)
			return address&3 == 0 && address < 0xffffffff
		},
	}, []string{"src0_value", "imm0"}); err != nil {
		return false
	}

	_, err := p.Randomize(context.Background(), constrainedrandom.RandomizeOptions{})
	return err == nil
}
