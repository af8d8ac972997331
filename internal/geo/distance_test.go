package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_KnownPairs(t *testing.T) {
	// Almaty -> Astana is roughly 970 km.
	d := Distance(43.2389, 76.8897, 51.1282, 71.4307)
	assert.InDelta(t, 970, d, 20)

	// Berlin -> Paris is roughly 878 km.
	d = Distance(52.52, 13.405, 48.8566, 2.3522)
	assert.InDelta(t, 878, d, 10)
}

func TestDistance_SamePointIsZero(t *testing.T) {
	assert.Zero(t, Distance(43.25, 76.9, 43.25, 76.9))
}

func TestDistance_Symmetric(t *testing.T) {
	a := Distance(43.25, 76.9, 51.13, 71.43)
	b := Distance(51.13, 71.43, 43.25, 76.9)
	assert.InDelta(t, a, b, 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(90, 180))
	assert.True(t, ValidCoordinates(-90, -180))

	assert.False(t, ValidCoordinates(90.0001, 0))
	assert.False(t, ValidCoordinates(-90.0001, 0))
	assert.False(t, ValidCoordinates(0, 180.0001))
	assert.False(t, ValidCoordinates(0, -180.0001))
}
