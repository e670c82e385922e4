package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Neighborhood answers adjacency queries against one generation's live
// coordinate set. The index is built once per generation, so each
// adjacency check afterwards is a constant-time map probe rather than
// a scan over the live cells. A Neighborhood is never reused across
// generations.
type Neighborhood struct {
	live  map[Coordinate]struct{}
	order []Coordinate // live coordinates in generation order
}

// NewNeighborhood indexes the live coordinates of gen. A nil
// generation is a caller bug and fails with ErrInvalidGeneration.
func NewNeighborhood(gen *Generation) (*Neighborhood, error) {
	if gen == nil {
		return nil, errors.Wrap(ErrInvalidGeneration, "[NewNeighborhood] generation is required")
	}
	return newNeighborhood(gen), nil
}

// newNeighborhood is the non-failing path for callers that hold a
// generation by construction.
func newNeighborhood(gen *Generation) *Neighborhood {
	order := gen.Coordinates()
	live := make(map[Coordinate]struct{}, len(order))
	for _, c := range order {
		live[c] = struct{}{}
	}
	return &Neighborhood{live: live, order: order}
}

// LiveNeighborCount counts live cells among the 8 coordinates adjacent
// to focal. Positions outside any bounding box, negative ones included,
// are probed like any other. A nil focal coordinate fails with
// ErrInvalidCoordinates.
func (n *Neighborhood) LiveNeighborCount(focal *Coordinate) (int, error) {
	if focal == nil {
		return 0, errors.Wrap(ErrInvalidCoordinates, "[LiveNeighborCount] focal coordinate is required")
	}
	return n.countAround(*focal), nil
}

func (n *Neighborhood) countAround(focal Coordinate) (count int) {
	for _, adjacent := range focal.Neighbors() {
		if _, alive := n.live[adjacent]; alive {
			count++
		}
	}
	return count
}

// ReproductionCandidates returns every empty coordinate that is
// adjacent to at least one live cell and inside size. A coordinate
// adjacent to several live cells appears exactly once; results are
// sorted by (longitude, latitude) so advancing is reproducible.
func (n *Neighborhood) ReproductionCandidates(size Size) []Coordinate {
	seen := make(map[Coordinate]struct{})
	candidates := make([]Coordinate, 0, len(n.order))

	for _, c := range n.order {
		for _, adjacent := range c.Neighbors() {
			if !size.Contains(adjacent) {
				continue
			}
			if _, alive := n.live[adjacent]; alive {
				continue
			}
			if _, dup := seen[adjacent]; dup {
				continue
			}
			seen[adjacent] = struct{}{}
			candidates = append(candidates, adjacent)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Less(candidates[j])
	})
	return candidates
}
