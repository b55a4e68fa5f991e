package pipeline

import (
	"errors"
	"fmt"
)

// ErrRecordNotNewlineTerminated is reported (never fatal) when a puzzle
// record's 82nd byte isn't '\n'.
var ErrRecordNotNewlineTerminated = errors.New("record not newline-terminated at position 81")

// FlushFunc issues an asynchronous flush hint for output bytes
// [offset, offset+length). Implementations should treat length <= 0 as a
// no-op.
type FlushFunc func(offset, length int) error

// Warner receives non-fatal diagnostics during production; the caller logs
// and continues.
type Warner func(context string, err error)

// CountPuzzles derives the puzzle count from an input file size and
// reports (without failing) when the size doesn't exactly match
// InputRecordLen*N or InputRecordLen*N-1 (trailing newline optional).
func CountPuzzles(fileSize int64, warn Warner) int {
	n := (fileSize + 1) / InputRecordLen
	if n*InputRecordLen != fileSize+1 && n*InputRecordLen != fileSize {
		extra := fileSize + 1 - n*InputRecordLen
		warn("input file size", fmt.Errorf("found %d puzzles, but the file has %d extra characters", n, extra))
	}
	return int(n)
}

// flushSafetyMarginBytes is subtracted from the computed flush watermark
// as slack against the trailing worker.
const flushSafetyMarginBytes = 0x1000

// Produce partitions input into fixed-size batches, enqueuing one Batch
// descriptor per batch followed by one shutdown sentinel per worker. It
// runs on the caller's goroutine — the producer has no concurrency of its
// own; it's the main thread that drives the worker pool.
func Produce(cfg Config, input, output []byte, numPuzzles int, q *Queue, flush FlushFunc, warn Warner) {
	read := 0
	syncAt := cfg.FlushStride

	for read < numPuzzles {
		count := cfg.BatchSize
		if remaining := numPuzzles - read; count > remaining {
			count = remaining
		}

		if read > syncAt {
			watermark := (syncAt-cfg.QueueCapacity)*OutputRecordLen - flushSafetyMarginBytes
			if flush != nil {
				if err := flush(0, watermark); err != nil {
					warn("flush hint", err)
				}
			}
			syncAt += cfg.FlushStride
		}

		inOff := read * InputRecordLen
		outOff := read * OutputRecordLen
		batch := Batch{
			StartIndex: read,
			Count:      count,
			Input:      input[inOff : inOff+count*InputRecordLen],
			Output:     output[outOff : outOff+count*OutputRecordLen],
		}
		q.Put(batch)

		// Per-batch newline check: also serves as a read-ahead touch of
		// the page holding this batch's first record.
		nlOffset := inOff + 81
		if nlOffset < len(input) && input[nlOffset] != '\n' {
			warn(fmt.Sprintf("puzzle %d", read), ErrRecordNotNewlineTerminated)
		}

		read += count
	}

	for range cfg.Workers {
		q.Put(Batch{})
	}
}
