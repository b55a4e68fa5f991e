package pipeline

import "sync"

// Config holds the pipeline's tunables (worker count, batch size, queue
// capacity, flush stride) as plain values threaded through Run rather than
// package-level mutable state.
type Config struct {
	Workers       int // number of worker goroutines (default 8)
	BatchSize     int // puzzles per batch (default 16)
	QueueCapacity int // bounded queue capacity (default 64)
	FlushStride   int // puzzles between async flush hints (default 8192)
}

// DefaultConfig returns the solver's default tuning.
func DefaultConfig() Config {
	return Config{
		Workers:       8,
		BatchSize:     16,
		QueueCapacity: 64,
		FlushStride:   8192,
	}
}

// Run drives one complete solve of numPuzzles puzzles: it starts the
// worker pool, runs the producer on the calling goroutine, and blocks
// until every worker has exited after receiving its shutdown sentinel.
func Run(cfg Config, input, output []byte, numPuzzles int, flush FlushFunc, warn Warner) Stats {
	var stats Stats

	q := NewQueue(cfg.QueueCapacity)

	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for range cfg.Workers {
		go func() {
			defer wg.Done()
			RunWorker(q, &stats)
		}()
	}

	Produce(cfg, input, output, numPuzzles, q, flush, warn)

	wg.Wait()
	return stats
}
