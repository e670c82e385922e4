package model

import (
	"crypto/md5"
	"fmt"
	"sort"

	"github.com/sheikhrachel/go-life/rules"
)

// firstGeneration is the number assigned to a freshly seeded generation.
const firstGeneration = 1

// Generation is an ordered collection of live cells tagged with a
// generation number. It is write-once: cells are appended during
// construction and never mutated afterwards, and Advance builds a
// brand-new Generation instead of updating the receiver.
type Generation struct {
	number int
	cells  []Cell
	seen   map[Coordinate]struct{}
}

// NewGeneration builds generation 1 from the given live coordinates.
// Duplicates are dropped: a generation never holds two cells at the
// same coordinate.
func NewGeneration(live []Coordinate) *Generation {
	gen := newGeneration(firstGeneration)
	for _, c := range live {
		gen.append(c)
	}
	return gen
}

func newGeneration(number int) *Generation {
	return &Generation{
		number: number,
		seen:   make(map[Coordinate]struct{}),
	}
}

// append adds a live cell at c, skipping coordinates already present.
func (g *Generation) append(c Coordinate) {
	if _, ok := g.seen[c]; ok {
		return
	}
	g.seen[c] = struct{}{}
	g.cells = append(g.cells, NewCell(c, g.number))
}

// Number returns the generation count, starting at 1.
func (g *Generation) Number() int {
	return g.number
}

// Population returns the number of live cells.
func (g *Generation) Population() int {
	return len(g.cells)
}

// Cells returns the live cells in generation order. The slice is a
// copy; callers cannot reach the internal state through it.
func (g *Generation) Cells() []Cell {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return cells
}

// Coordinates returns the live coordinates in generation order. The
// slice is a copy; callers cannot reach the internal state through it.
func (g *Generation) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(g.cells))
	for i, cell := range g.cells {
		coords[i] = cell.Coordinates
	}
	return coords
}

// Advance derives the next generation from this one. Survivors and
// births are both judged against the same unmodified live set: a cell
// dying here never changes another cell's neighbor count within the
// same step. Survivors carry forward position only, re-anchored as new
// cells of the next generation.
func (g *Generation) Advance(size Size) *Generation {
	next := newGeneration(g.number + 1)
	hood := newNeighborhood(g)

	for _, cell := range g.cells {
		if cell.Evaluate(hood.countAround(cell.Coordinates)) == rules.Survives {
			next.append(cell.Coordinates)
		}
	}

	for _, candidate := range hood.ReproductionCandidates(size) {
		if rules.Born(hood.countAround(candidate)) {
			next.append(candidate)
		}
	}

	return next
}

// Hash returns an MD5 digest of the live coordinate set, independent
// of insertion order. The driver uses it to detect static states and
// short cycles.
func (g *Generation) Hash() string {
	coords := g.Coordinates()
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Less(coords[j])
	})

	h := md5.New()
	for _, c := range coords {
		fmt.Fprintf(h, "%d:%d;", c.Latitude, c.Longitude)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
