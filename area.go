package proj

import (
	"fmt"
	"math"
)

// An Area is the bounding box of an area of use, in degrees. It is an
// optional input to CRS-to-CRS construction, where PROJ uses it to pick the
// most accurate transformation available for the region. An Area is a plain
// value and is never mutated after construction.
type Area struct {
	west, south, east, north float64
}

// NewArea validates the bounds and returns the Area. West must be less than
// east and south less than north; bounds may be infinite to leave a side
// open.
func NewArea(west, south, east, north float64) (Area, error) {
	for _, v := range []float64{west, south, east, north} {
		if math.IsNaN(v) {
			return Area{}, &InvalidInputError{Reason: "area bound is NaN"}
		}
	}
	if !math.IsInf(west, 0) && !math.IsInf(east, 0) && west >= east {
		return Area{}, &InvalidInputError{Reason: fmt.Sprintf("area west %v not less than east %v", west, east)}
	}
	if !math.IsInf(south, 0) && !math.IsInf(north, 0) && south >= north {
		return Area{}, &InvalidInputError{Reason: fmt.Sprintf("area south %v not less than north %v", south, north)}
	}
	return Area{west: west, south: south, east: east, north: north}, nil
}

func (a Area) String() string {
	return fmt.Sprintf("[%v %v %v %v]", a.west, a.south, a.east, a.north)
}
