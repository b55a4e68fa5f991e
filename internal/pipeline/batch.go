// Package pipeline drives the producer/worker-pool batch solver: a single
// producer slices memory-mapped input into fixed-size batches and hands
// them to a bounded queue; a pool of workers, each owning one reusable
// dlx.Matrix, drains the queue and writes solutions directly into the
// memory-mapped output.
package pipeline

import "github.com/kpitt/dlxbatch/internal/queue"

// Record layout for the input and output files.
const (
	InputRecordLen  = 82  // 81 puzzle bytes + '\n'
	OutputRecordLen = 164 // 81 puzzle + ',' + 81 solution + '\n'

	outputCommaOffset    = 81
	outputSolutionOffset = 82
	outputNewlineOffset  = 163
)

// Batch is a contiguous range of puzzles together with the memory-mapped
// input and output slices that back them. Count == 0 is the shutdown
// sentinel: a worker that takes one exits immediately.
type Batch struct {
	StartIndex int // index of the first puzzle in this batch
	Count      int
	Input      []byte // Count*InputRecordLen bytes
	Output     []byte // Count*OutputRecordLen bytes
}

// Queue is the bounded FIFO of Batch descriptors shared between the
// producer and the worker pool.
type Queue = queue.Bounded[Batch]

// NewQueue constructs a Batch queue with the given capacity.
func NewQueue(capacity int) *Queue {
	return queue.NewBounded[Batch](capacity)
}
