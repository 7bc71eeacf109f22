package proj

import "math"

// A Coord is a single position. What X and Y mean, and in which units,
// depends entirely on the transformation that produced or consumes it:
// longitude/latitude in radians for the geodetic side of a projection,
// easting/northing in linear units for a projected CRS. Z is an optional
// height and T an optional coordinate epoch; leave them zero when unused.
type Coord struct {
	X, Y, Z, T float64
}

// XY is shorthand for a 2D coordinate.
func XY(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// XYZ is shorthand for a 3D coordinate.
func XYZ(x, y, z float64) Coord {
	return Coord{X: x, Y: y, Z: z}
}

// Valid reports whether the coordinate carries real values. PROJ marks
// points it could not transform by setting their components to infinity.
func (c Coord) Valid() bool {
	return !math.IsInf(c.X, 0) && !math.IsInf(c.Y, 0)
}

// Convert degrees to radians
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// Convert radians to degrees
func RadToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}
