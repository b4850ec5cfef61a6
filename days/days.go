// Package days solves the grid puzzles of Advent of Code 2023.
//
// Each part is a method named D{day}p{part} on Solver. The doc comment of a
// method carries its sample: a "want=" line followed by the sample input. A
// method without input reuses the sample input of the method above it.
package days

import (
	"embed"
	"errors"

	"github.com/maisem/aoc2023"
)

// Sources holds the solver sources so the runner can read the samples.
//
//go:embed day[0-9]*.go
var Sources embed.FS

// Solver implements the puzzles. Its Puzzle is set by the runner.
type Solver struct {
	*aoc.Puzzle
}

func New() *Solver {
	return &Solver{}
}

var errNoStart = errors.New("no start position")
