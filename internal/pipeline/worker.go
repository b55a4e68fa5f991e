package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/kpitt/dlxbatch/internal/dlx"
)

// noSolutionField is the fixed "No solution" field written for unsolvable
// puzzles: the literal string left-justified into 81 bytes.
var noSolutionField = []byte(fmt.Sprintf("%-81s", "No solution"))

// Stats accumulates outcome counts across all workers in a run.
type Stats struct {
	Solved   atomic.Int64
	Unsolved atomic.Int64
}

// RunWorker drains batches from q until it receives the shutdown sentinel
// (a Batch with Count == 0). It owns a single dlx.Matrix for its entire
// lifetime, resetting and rebuilding it for every puzzle.
func RunWorker(q *Queue, stats *Stats) {
	m := dlx.New()
	for {
		b := q.Take()
		if b.Count == 0 {
			return
		}
		for i := 0; i < b.Count; i++ {
			in := b.Input[i*InputRecordLen : (i+1)*InputRecordLen]
			out := b.Output[i*OutputRecordLen : (i+1)*OutputRecordLen]
			solved := solvePuzzle(m, in, out)
			if solved {
				stats.Solved.Add(1)
			} else {
				stats.Unsolved.Add(1)
			}
		}
	}
}

// solvePuzzle transcribes one input record into its output record: copies
// the 81 puzzle bytes, writes the fixed separators, and fills in either the
// 81 solution digits or the "No solution" field.
func solvePuzzle(m *dlx.Matrix, in, out []byte) bool {
	copy(out[:81], in[:81])
	out[outputCommaOffset] = ','
	out[outputNewlineOffset] = '\n'

	m.Build(in[:81])
	if !m.Search() {
		copy(out[outputSolutionOffset:outputNewlineOffset], noSolutionField)
		return false
	}

	for _, a := range m.Solution() {
		out[outputSolutionOffset+a.Cell] = byte('0' + a.Digit)
	}
	return true
}
