package proj

/*
#include "proj_go.h"
*/
import "C"

import "math"

// Bulk transforms. The whole batch is handed to PROJ in one native call on
// the success path. proj_trans_array stops at the first point it cannot
// transform, marking it with infinite components, so on a per-point error
// the call is resumed on the untouched remainder until the batch is done;
// points PROJ could not transform come back invalid (check Coord.Valid)
// while every other element is still transformed. If PROJ reports an error
// that is not a per-point one, the batch fails as a whole and no partial
// result is returned.

// ConvertSlice transforms coordinates forward through the operation,
// preserving order. An empty input returns an empty output without calling
// into PROJ.
func (p *Proj) ConvertSlice(coords []Coord) ([]Coord, error) {
	return p.transSlice(coords, C.PJ_FWD)
}

// ProjectSlice is the bulk variant of Project.
func (p *Proj) ProjectSlice(coords []Coord, inverse bool) ([]Coord, error) {
	direction := C.PJ_DIRECTION(C.PJ_FWD)
	if inverse {
		direction = C.PJ_INV
	}
	return p.transSlice(coords, direction)
}

func (p *Proj) transSlice(coords []Coord, direction C.PJ_DIRECTION) ([]Coord, error) {
	if !p.opened {
		return nil, errProjectionClosed
	}
	n := len(coords)
	if n == 0 {
		return []Coord{}, nil
	}

	// PJ_COORD is four doubles; pack the batch into one flat buffer that
	// proj_trans_array transforms in place.
	buf := make([]C.double, 4*n)
	for i, c := range coords {
		buf[4*i] = C.double(c.X)
		buf[4*i+1] = C.double(c.Y)
		buf[4*i+2] = C.double(c.Z)
		buf[4*i+3] = C.double(c.T)
	}

	for offset := 0; offset < n; {
		C.proj_errno_reset(p.pj)
		rv := int(C.trans_array(p.pj, direction, C.size_t(n-offset), &buf[4*offset]))
		if rv == 0 {
			break
		}
		if !isPointErrno(rv) {
			C.proj_errno_reset(p.pj)
			return nil, p.transformError(rv)
		}
		// PROJ stopped at the first point outside the operation's
		// domain and set its components to HUGE_VAL; everything before
		// it is transformed. Skip past it and resume.
		next := offset
		for ; next < n; next++ {
			if math.IsInf(float64(buf[4*next]), 0) {
				break
			}
		}
		offset = next + 1
	}
	C.proj_errno_reset(p.pj)

	out := make([]Coord, n)
	for i := range out {
		out[i] = Coord{
			X: float64(buf[4*i]),
			Y: float64(buf[4*i+1]),
			Z: float64(buf[4*i+2]),
			T: float64(buf[4*i+3]),
		}
	}
	return out, nil
}
