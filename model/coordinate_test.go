package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-life/model"
)

func TestCoordinate_StructuralEquality(t *testing.T) {
	a := model.Coordinate{Latitude: 3, Longitude: 7}
	b := model.Coordinate{Latitude: 3, Longitude: 7}
	c := model.Coordinate{Latitude: 7, Longitude: 3}

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// Equal coordinates collapse to one map key.
	seen := map[model.Coordinate]int{}
	seen[a]++
	seen[b]++
	seen[c]++
	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[a])
}

func TestCoordinate_Neighbors(t *testing.T) {
	origin := model.Coordinate{Latitude: 0, Longitude: 0}
	neighbors := origin.Neighbors()

	want := []model.Coordinate{
		{Latitude: -1, Longitude: -1}, {Latitude: -1, Longitude: 0}, {Latitude: -1, Longitude: 1},
		{Latitude: 0, Longitude: -1}, {Latitude: 0, Longitude: 1},
		{Latitude: 1, Longitude: -1}, {Latitude: 1, Longitude: 0}, {Latitude: 1, Longitude: 1},
	}
	assert.ElementsMatch(t, want, neighbors[:])
	assert.NotContains(t, neighbors[:], origin)
}

func TestCoordinate_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Coordinate
		want bool
	}{
		{
			name: "longitude orders first",
			a:    model.Coordinate{Latitude: 9, Longitude: 1},
			b:    model.Coordinate{Latitude: 0, Longitude: 2},
			want: true,
		},
		{
			name: "latitude breaks longitude ties",
			a:    model.Coordinate{Latitude: 1, Longitude: 5},
			b:    model.Coordinate{Latitude: 2, Longitude: 5},
			want: true,
		},
		{
			name: "equal coordinates are not less",
			a:    model.Coordinate{Latitude: 4, Longitude: 4},
			b:    model.Coordinate{Latitude: 4, Longitude: 4},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}
