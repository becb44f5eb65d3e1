// Package parallel provides the sample-evaluation helpers used by the quadrature engine.
package parallel

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum samples per goroutine to avoid overhead.
}

// DefaultConfig returns a parallel configuration sized to the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256, // Integrands are cheap; smaller chunks lose to goroutine overhead.
	}
}

// Sequential returns a configuration that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false}
}

// For calls f(i) for every i in [0, n).
//
// The range is split into at most cfg.NumWorkers contiguous chunks of at
// least cfg.MinChunkSize indices. Runs inline when cfg is disabled or the
// range is too small to split.
func For(n int, f func(i int), cfg Config) {
	workers := 1
	if cfg.Enabled {
		workers = min(cfg.NumWorkers, n/max(cfg.MinChunkSize, 1))
	}
	if workers < 2 {
		for i := range n {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		lo, hi := w*n/workers, (w+1)*n/workers
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				f(i)
			}
		}()
	}
	wg.Wait()
}

// sumBlock is the number of samples reduced together by Sum.
const sumBlock = 256

// Sum evaluates f at every index in [0, n) and returns the sum of the results.
//
// The range is reduced in fixed blocks of sumBlock samples whose partial sums
// are added in index order, so the result does not depend on cfg. Memory use
// is bounded by the block buffers and does not grow with n.
func Sum(n int, f func(i int) float64, cfg Config) float64 {
	if n <= 0 {
		return 0
	}
	blocks := (n + sumBlock - 1) / sumBlock

	blockSum := func(buf []float64, b int) float64 {
		lo := b * sumBlock
		buf = buf[:min(sumBlock, n-lo)]
		for i := range buf {
			buf[i] = f(lo + i)
		}
		return floats.Sum(buf)
	}

	if !cfg.Enabled || cfg.NumWorkers < 2 || blocks < 2 || n < 2*cfg.MinChunkSize {
		buf := make([]float64, min(sumBlock, n))
		total := 0.0
		for b := range blocks {
			total += blockSum(buf, b)
		}
		return total
	}

	// Blocks are processed in waves so the buffers stay a fixed size.
	wave := min(blocks, 4*cfg.NumWorkers)
	bufs := make([]float64, wave*sumBlock)
	partial := make([]float64, wave)
	waveCfg := Config{Enabled: true, NumWorkers: cfg.NumWorkers, MinChunkSize: 1}

	total := 0.0
	for first := 0; first < blocks; first += wave {
		count := min(wave, blocks-first)
		For(count, func(k int) {
			partial[k] = blockSum(bufs[k*sumBlock:(k+1)*sumBlock], first+k)
		}, waveCfg)
		for _, s := range partial[:count] {
			total += s
		}
	}
	return total
}
