// Command tlsfbench drives the allocator with a randomized
// allocate/free workload and reports timing and pool utilization.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"
	"unsafe"

	"github.com/tlsfgo/tlsf/tlsf"
	"github.com/tlsfgo/tlsf/tlsfdebug"
)

func main() {
	poolPower := flag.Uint("pool", 24, "pool size as a power of two (bytes)")
	ops := flag.Int("ops", 200000, "number of allocate/free operations to run")
	maxSize := flag.Int("max-size", 4096, "maximum bytes per allocation")
	seed := flag.Int64("seed", 1, "PRNG seed")
	trace := flag.Bool("trace", false, "log every operation via tlsfdebug")
	flag.Parse()

	var dbg *tlsfdebug.Logger
	if *trace {
		dbg = tlsfdebug.New(nil, 0)
	}

	a, err := tlsf.New(*poolPower)
	if err != nil {
		log.Fatalf("tlsf.New: %v", err)
	}
	defer a.Destroy()
	if dbg != nil {
		a.SetDebugLogger(dbg)
	}

	rng := rand.New(rand.NewSource(*seed))
	var live []unsafe.Pointer

	start := time.Now()
	var allocs, frees, failures int
	for i := 0; i < *ops; i++ {
		if len(live) > 0 && rng.Intn(2) == 0 {
			idx := rng.Intn(len(live))
			a.Free(live[idx])
			live[idx] = live[len(live)-1]
			live = live[:len(live)-1]
			frees++
			continue
		}
		size := 1 + rng.Intn(*maxSize)
		p, err := a.Allocate(size)
		if err != nil {
			failures++
			continue
		}
		live = append(live, p)
		allocs++
	}
	elapsed := time.Since(start)

	for _, p := range live {
		a.Free(p)
	}

	fmt.Printf("pool=2^%d ops=%d allocs=%d frees=%d failures=%d elapsed=%s available=%d\n",
		*poolPower, *ops, allocs, frees, failures, elapsed, a.Available())
}
