package model

// Coordinate is an immutable 2D integer position. Two coordinates with
// equal latitude and longitude are the same position, so Coordinate is
// comparable and safe to use as a map key.
type Coordinate struct {
	Latitude  int
	Longitude int
}

// neighborOffsets spans the 8 positions adjacent to a coordinate,
// diagonals included.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the 8 coordinates adjacent to c. No bounds are
// applied; negative positions are valid neighbor positions.
func (c Coordinate) Neighbors() [8]Coordinate {
	var adjacent [8]Coordinate
	for i, offset := range neighborOffsets {
		adjacent[i] = Coordinate{
			Latitude:  c.Latitude + offset[0],
			Longitude: c.Longitude + offset[1],
		}
	}
	return adjacent
}

// Less orders coordinates by longitude, then latitude, giving every
// coordinate set one reproducible iteration order.
func (c Coordinate) Less(other Coordinate) bool {
	if c.Longitude != other.Longitude {
		return c.Longitude < other.Longitude
	}
	return c.Latitude < other.Latitude
}
