package proj

/*
#include "proj_go.h"
*/
import "C"

// A Proj is one transformation: either a CRS-to-CRS operation created with
// Context.CRSToCRS, or a single operation or pipeline created with
// Context.Pipeline. It is immutable after construction and owned by one
// goroutine at a time; wrap it in a SafeProj to share it.
type Proj struct {
	pj      *C.PJ
	context *Context
	index   uint64
	opened  bool
}

// Close releases the native transformation. Calling Close more than once is
// harmless. The owning Context also closes any still-open transformations
// when it is closed.
func (p *Proj) Close() {
	if p.opened {
		C.proj_destroy(p.pj)
		if p.context.opened {
			delete(p.context.handles, p.index)
		}
		p.context = nil
		p.opened = false
	}
}

// Convert transforms a coordinate forward through the operation. For a
// CRS-to-CRS transformation the input is in the source CRS's units with
// lon/lat, east/north axis order, and the output likewise in the target
// CRS.
func (p *Proj) Convert(coord Coord) (Coord, error) {
	return p.trans(coord, C.PJ_FWD)
}

// Project runs a projection with explicit direction control. Forward takes
// geodetic coordinates in radians into the projected system; inverse goes
// the other way. Use it with handles built from a single projection
// definition rather than a CRS pair.
func (p *Proj) Project(coord Coord, inverse bool) (Coord, error) {
	direction := C.PJ_DIRECTION(C.PJ_FWD)
	if inverse {
		direction = C.PJ_INV
	}
	return p.trans(coord, direction)
}

func (p *Proj) trans(coord Coord, direction C.PJ_DIRECTION) (Coord, error) {
	if !p.opened {
		return Coord{}, errProjectionClosed
	}

	// A failure from an earlier call must not bleed into this one.
	C.proj_errno_reset(p.pj)

	var x, y, z, t C.double
	C.trans(p.pj, direction, C.double(coord.X), C.double(coord.Y), C.double(coord.Z), C.double(coord.T), &x, &y, &z, &t)

	if e := C.proj_errno(p.pj); e != 0 {
		err := p.transformError(int(e))
		C.proj_errno_reset(p.pj)
		return Coord{}, err
	}

	return Coord{X: float64(x), Y: float64(y), Z: float64(z), T: float64(t)}, nil
}

func (p *Proj) transformError(code int) error {
	return &TransformError{
		Code:    code,
		Message: C.GoString(C.proj_errno_string(C.int(code))),
	}
}

// Definition returns the expanded definition string PROJ uses for this
// transformation.
func (p *Proj) Definition() (string, error) {
	if !p.opened {
		return "", errProjectionClosed
	}
	info := C.proj_pj_info(p.pj)
	return C.GoString(info.definition), nil
}
