package proj

/*
#include "proj_go.h"
*/
import "C"

// Calculate geodesic distance between two points in geodetic coordinates
//
// The calculated distance is between the two points located on the ellipsoid
func (p *Proj) Dist(x1, y1, x2, y2 float64) (float64, error) {
	if !p.opened {
		return 0, errProjectionClosed
	}
	a := C.xyzt(C.double(x1), C.double(y1), 0, 0)
	b := C.xyzt(C.double(x2), C.double(y2), 0, 0)
	d := C.proj_lp_dist(p.pj, a, b)
	if e := C.proj_errno(p.pj); e != 0 {
		err := p.transformError(int(e))
		C.proj_errno_reset(p.pj)
		return 0, err
	}
	return float64(d), nil
}

// Calculate geodesic distance between two points in geodetic coordinates
//
// Similar to Dist() but also takes the height above the ellipsoid into account
func (p *Proj) Dist3(x1, y1, z1, x2, y2, z2 float64) (float64, error) {
	if !p.opened {
		return 0, errProjectionClosed
	}
	a := C.xyzt(C.double(x1), C.double(y1), C.double(z1), 0)
	b := C.xyzt(C.double(x2), C.double(y2), C.double(z2), 0)
	d := C.proj_lpz_dist(p.pj, a, b)
	if e := C.proj_errno(p.pj); e != 0 {
		err := p.transformError(int(e))
		C.proj_errno_reset(p.pj)
		return 0, err
	}
	return float64(d), nil
}
