package rules

import "fmt"

// Outcome is the fate of a live cell in the next generation.
type Outcome int

const (
	// Dies removes the cell from the next generation.
	Dies Outcome = iota
	// Survives carries the cell's position into the next generation.
	Survives
)

// String returns the lowercase name of the outcome.
func (o Outcome) String() string {
	if o == Survives {
		return "survives"
	}
	return "dies"
}

// reproductionCount is the exact live-neighbor count that brings an
// empty position to life.
const reproductionCount = 3

/*
Evaluate applies Conway's survival rule to a live cell.

Fewer than 2 live neighbors is lonely, more than 3 is overcrowded,
exactly 2 or 3 is happy. The three conditions cover every count an
8-cell neighborhood can produce, so there is no fourth branch.
A negative count is a caller bug and panics.
*/
func Evaluate(liveNeighbors int) Outcome {
	if liveNeighbors < 0 {
		panic(fmt.Sprintf("rules: negative live-neighbor count %d", liveNeighbors))
	}
	switch {
	case liveNeighbors < 2:
		return Dies // lonely
	case liveNeighbors > 3:
		return Dies // overcrowded
	default:
		return Survives // happy
	}
}

// Born reports whether an empty position with the given live-neighbor
// count produces a cell in the next generation.
func Born(liveNeighbors int) bool {
	return liveNeighbors == reproductionCount
}
