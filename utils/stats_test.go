package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-life/utils"
)

func TestStats_Update(t *testing.T) {
	stats := utils.NewStats()

	stats.Update(1, 100, 100*time.Millisecond)

	assert.Equal(t, 1, stats.TotalGenerations)
	assert.Equal(t, 100, stats.PeakPopulation)
	assert.InDelta(t, 10.0, stats.GenerationsPerSecond, 0.01)
	assert.InDelta(t, 100.0, stats.AveragePopulation, 0.01)
}

func TestStats_MovingAverageAndPeak(t *testing.T) {
	stats := utils.NewStats()

	stats.Update(1, 100, 100*time.Millisecond)
	stats.Update(2, 50, 100*time.Millisecond)

	assert.Equal(t, 2, stats.TotalGenerations)
	assert.Equal(t, 100, stats.PeakPopulation)
	// 100*0.9 + 50*0.1
	assert.InDelta(t, 95.0, stats.AveragePopulation, 0.01)
}

func TestStats_ZeroDurationLeavesRateUntouched(t *testing.T) {
	stats := utils.NewStats()

	stats.Update(1, 10, 0)

	assert.Zero(t, stats.GenerationsPerSecond)
}
