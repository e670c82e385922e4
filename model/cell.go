package model

import "github.com/sheikhrachel/go-life/rules"

// Cell is one live position inside a specific generation. Coordinates
// are fixed at creation; the generation tag records which generation
// the cell belongs to.
type Cell struct {
	Coordinates Coordinate
	Generation  int
}

// NewCell creates a live cell at the given coordinates, tagged with
// the generation it belongs to.
func NewCell(coordinates Coordinate, generation int) Cell {
	return Cell{Coordinates: coordinates, Generation: generation}
}

// Evaluate applies the survival rule to this cell given its
// live-neighbor count.
func (c Cell) Evaluate(liveNeighbors int) rules.Outcome {
	return rules.Evaluate(liveNeighbors)
}
