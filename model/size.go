package model

// Size is the rectangular bound on reproduction. Both maxima are
// inclusive: coordinates in [0, LatitudeMax] x [0, LongitudeMax] are
// eligible birth positions. Neighbor counting ignores Size entirely.
type Size struct {
	LatitudeMax  int
	LongitudeMax int
}

// Contains reports whether c falls inside the bound.
func (s Size) Contains(c Coordinate) bool {
	return c.Latitude >= 0 && c.Latitude <= s.LatitudeMax &&
		c.Longitude >= 0 && c.Longitude <= s.LongitudeMax
}
