package proj

/*
#include "proj_go.h"
*/
import "C"

type LibInfo struct {
	Major      int    // Major version number.
	Minor      int    // Minor version number.
	Patch      int    // Patch level of release.
	Release    string // Release info. Version number and release date, e.g. “Rel. 7.1.0, June 1st, 2020”.
	Version    string // Text representation of the full version number, e.g. “7.1.0”.
	Searchpath string // Search path for PROJ. List of directories separated by semicolons (Windows) or colons (non-Windows).
}

type ProjInfo struct {
	ID          string  // Short ID of the operation the transformation is based on, that is, what comes after the +proj= in a proj-string, e.g. “merc”.
	Description string  // Long description of the operation, e.g. “Mercator Cyl, Sph&Ell lat_ts=”.
	Definition  string  // The expanded proj-string the transformation was created with.
	HasInverse  bool    // True if an inverse mapping of the defined operation exists.
	Accuracy    float64 // Expected accuracy of the transformation in meters. -1 if unknown.
}

// Get information about the current instance of the PROJ library
func Info() LibInfo {
	info := C.proj_info()
	return LibInfo{
		Major:      int(info.major),
		Minor:      int(info.minor),
		Patch:      int(info.patch),
		Release:    C.GoString(info.release),
		Version:    C.GoString(info.version),
		Searchpath: C.GoString(info.searchpath),
	}
}

// Get information about the transformation
func (p *Proj) Info() (ProjInfo, error) {
	if !p.opened {
		return ProjInfo{}, errProjectionClosed
	}
	info := C.proj_pj_info(p.pj)
	return ProjInfo{
		ID:          C.GoString(info.id),
		Description: C.GoString(info.description),
		Definition:  C.GoString(info.definition),
		HasInverse:  info.has_inverse != 0,
		Accuracy:    float64(info.accuracy),
	}, nil
}
