package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	t.Run("identical points have zero distance", func(t *testing.T) {
		d := CalculateHaversineDistance(-6.2088, 106.8456, -6.2088, 106.8456)
		assert.Zero(t, d)
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		d := CalculateHaversineDistance(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 10)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		d1 := CalculateHaversineDistance(-6.2088, 106.8456, -6.1751, 106.8650)
		d2 := CalculateHaversineDistance(-6.1751, 106.8650, -6.2088, 106.8456)
		assert.InDelta(t, d1, d2, 0.0001)
	})

	t.Run("small offsets produce small distances", func(t *testing.T) {
		// Roughly 11 meters per 0.0001 degree of latitude.
		d := CalculateHaversineDistance(-6.2088, 106.8456, -6.2089, 106.8456)
		assert.Greater(t, d, 10.0)
		assert.Less(t, d, 13.0)
	})
}
