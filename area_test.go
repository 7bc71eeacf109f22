package proj_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelkirk/proj"
)

func TestNewArea(t *testing.T) {
	_, err := proj.NewArea(-118, 32, -115, 34)
	require.NoError(t, err)

	// open-ended sides are allowed
	_, err = proj.NewArea(math.Inf(-1), 32, math.Inf(1), 34)
	require.NoError(t, err)
}

func TestNewAreaInvalid(t *testing.T) {
	cases := []struct {
		name                     string
		west, south, east, north float64
	}{
		{"west east swapped", -115, 32, -118, 34},
		{"west equals east", -115, 32, -115, 34},
		{"south north swapped", -118, 34, -115, 32},
		{"nan bound", math.NaN(), 32, -115, 34},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := proj.NewArea(c.west, c.south, c.east, c.north)
			var ierr *proj.InvalidInputError
			require.True(t, errors.As(err, &ierr), "err = %v", err)
			assert.NotEmpty(t, ierr.Reason)
		})
	}
}

func TestCoordValid(t *testing.T) {
	assert.True(t, proj.XY(1, 2).Valid())
	assert.False(t, proj.Coord{X: math.Inf(1), Y: 2}.Valid())
	assert.False(t, proj.Coord{X: 1, Y: math.Inf(-1)}.Valid())
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, math.Pi, proj.DegToRad(180), 1e-12)
	assert.InDelta(t, 180.0, proj.RadToDeg(math.Pi), 1e-12)
}
