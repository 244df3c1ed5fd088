// Package parallel provides fan-out utilities for independent evaluations.
//
// Forward-mode seed directions and independent tensor components share no
// state, so they can be evaluated in any order and on any goroutine. This
// package is the only place the library spawns goroutines; tapes are never
// shared across them.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinUnits   int  // Minimum work units before goroutines pay off.
}

// DefaultConfig returns sensible defaults based on CPU count. A work unit
// here is a whole function evaluation (one seed direction or one tensor
// component), so even a handful of units is worth spreading.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinUnits:   2,
	}
}

// Sequential returns a config that disables goroutine fan-out.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinUnits: 1}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinUnits {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := min(cfg.NumWorkers, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForPairs executes f(i, j) for every unordered pair 0 <= i <= j < n.
// Used to fill the upper triangle of symmetric second-derivative grids,
// one hyper-dual evaluation per pair.
func ForPairs(n int, f func(i, j int), cfg Config) {
	total := n * (n + 1) / 2
	For(total, func(k int) {
		// Recover (i, j) from the row-major upper-triangle ordinal.
		i, rem := 0, k
		for rem >= n-i {
			rem -= n - i
			i++
		}
		f(i, i+rem)
	}, cfg)
}
