package model

// Board is the fixed-size display surface a generation renders onto.
// Rows span latitudes 0..LatitudeMax and columns longitudes
// 0..LongitudeMax, so every coordinate inside the bound has a cell.
// The buffer is reused across frames via Reset.
type Board struct {
	size  Size
	rows  int
	cols  int
	cells [][]bool
}

// NewBoard creates a cleared board sized to the given bound.
func NewBoard(size Size) *Board {
	b := &Board{}
	b.Reset(size)
	return b
}

// Rows returns the number of latitude rows on the board.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of longitude columns on the board.
func (b *Board) Cols() int {
	return b.cols
}

// Reset resizes the board to a new bound, reusing the cell buffer
// when the dimensions already match.
func (b *Board) Reset(size Size) {
	b.size = size
	b.rows = size.LatitudeMax + 1
	b.cols = size.LongitudeMax + 1

	if len(b.cells) != b.rows {
		b.cells = make([][]bool, b.rows)
	}
	for i := range b.cells {
		if len(b.cells[i]) != b.cols {
			b.cells[i] = make([]bool, b.cols)
		} else {
			for j := range b.cells[i] {
				b.cells[i][j] = false
			}
		}
	}
}

// Clear marks every cell empty.
func (b *Board) Clear() {
	for i := range b.cells {
		for j := range b.cells[i] {
			b.cells[i][j] = false
		}
	}
}

// Render clears the board and marks the live coordinates of gen.
// Coordinates outside the board bound are ignored.
func (b *Board) Render(gen *Generation) {
	b.Clear()
	for _, c := range gen.Coordinates() {
		b.set(c)
	}
}

func (b *Board) set(c Coordinate) {
	if b.size.Contains(c) {
		b.cells[c.Latitude][c.Longitude] = true
	}
}

// Get reports whether the cell at (latitude, longitude) is marked
// live. Out-of-range positions read as empty.
func (b *Board) Get(latitude, longitude int) bool {
	if latitude < 0 || latitude >= b.rows || longitude < 0 || longitude >= b.cols {
		return false
	}
	return b.cells[latitude][longitude]
}

// CountMarked returns the number of marked cells, for display.
func (b *Board) CountMarked() (count int) {
	for i := range b.cells {
		for j := range b.cells[i] {
			if b.cells[i][j] {
				count++
			}
		}
	}
	return
}
