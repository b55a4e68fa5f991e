// Command solver reads a file of 9x9 Sudoku puzzles, solves each with a
// pool of Dancing Links workers, and writes the solutions to an output
// file. Usage: solver [input-file] [output-file].
package main

import (
	"os"

	"github.com/kpitt/dlxbatch/internal/mmapio"
	"github.com/kpitt/dlxbatch/internal/pipeline"
	"github.com/kpitt/dlxbatch/internal/report"
)

const (
	defaultInputFile  = "puzzles.txt"
	defaultOutputFile = "solutions.txt"
)

func main() {
	inputPath, outputPath := args()

	in, inSize, err := mmapio.OpenInput(inputPath)
	if err != nil {
		report.Fatal("reading input", err)
	}
	defer in.Close()

	numPuzzles := pipeline.CountPuzzles(inSize, func(context string, err error) {
		report.Warn(context, err)
	})

	out, err := mmapio.CreateOutput(outputPath, int64(numPuzzles)*pipeline.OutputRecordLen)
	if err != nil {
		report.Fatal("creating output", err)
	}

	cfg := pipeline.DefaultConfig()
	report.Status("solving %d puzzles with %d workers...", numPuzzles, cfg.Workers)
	stats := pipeline.Run(cfg, in.Data(), out.Data(), numPuzzles,
		func(offset, length int) error {
			return out.FlushAsync(offset, length)
		},
		func(context string, err error) {
			report.Warn(context, err)
		},
	)

	if err := out.Close(); err != nil {
		report.Warn("closing output", err)
	}

	report.Summary("\nSolved %d of %d puzzles (%d unsolvable)",
		stats.Solved.Load(), numPuzzles, stats.Unsolved.Load())
}

// args returns the input and output file paths: two optional positional
// arguments, no flags, each defaulting independently of the other.
func args() (input, output string) {
	input, output = defaultInputFile, defaultOutputFile
	if len(os.Args) > 1 {
		input = os.Args[1]
	}
	if len(os.Args) > 2 {
		output = os.Args[2]
	}
	return input, output
}
