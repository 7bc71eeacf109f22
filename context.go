package proj

/*
#cgo darwin pkg-config: proj
#cgo !darwin LDFLAGS: -lproj
#include "proj_go.h"
*/
import "C"

import (
	"log/slog"
	"runtime"
	"strings"
	"unsafe"
)

// A Context wraps one PROJ execution context and owns the transformations
// created from it. A Context belongs to one goroutine at a time; it is not
// safe for concurrent use. Create one per goroutine, or share individual
// transformations through SafeProj.
type Context struct {
	pjContext *C.PJ_CONTEXT
	opened    bool
	network   bool
	logger    *slog.Logger
	counter   uint64
	handles   map[uint64]*Proj
}

// NewContext creates a Context with default settings: network access off,
// default grid cache, default search paths. Use a Builder to configure any
// of those.
func NewContext() *Context {
	ctx := Context{
		pjContext: C.proj_context_create(),
		logger:    slog.New(slog.DiscardHandler),
		handles:   make(map[uint64]*Proj),
		opened:    true,
	}
	runtime.SetFinalizer(&ctx, (*Context).Close)
	return &ctx
}

// Close releases the native context and every transformation still created
// from it. Calling Close more than once is harmless.
func (ctx *Context) Close() {
	if ctx.opened {
		indexes := make([]uint64, 0, len(ctx.handles))
		for i := range ctx.handles {
			indexes = append(indexes, i)
		}
		for _, i := range indexes {
			p := ctx.handles[i]
			if p.opened {
				C.proj_destroy(p.pj)
				p.context = nil
				p.opened = false
			}
			delete(ctx.handles, i)
		}

		C.proj_context_destroy(ctx.pjContext)
		ctx.pjContext = nil
		ctx.opened = false
	}
}

// CRSToCRS creates a transformation between two coordinate reference
// systems. src and dst can be an "AUTHORITY:CODE" like "EPSG:2230", a PROJ
// string, or a CRS name from the PROJ database. area optionally narrows the
// area of use so PROJ can pick the most accurate operation for the region;
// pass nil for the whole validity area.
//
// Input and output axis order is normalized to longitude/latitude and
// easting/northing, whatever the axis order of the underlying CRS.
func (ctx *Context) CRSToCRS(src, dst string, area *Area) (*Proj, error) {
	if !ctx.opened {
		return nil, errContextClosed
	}
	if src == "" || dst == "" {
		return nil, &InvalidInputError{Reason: "empty CRS identifier"}
	}

	// The network flag is context state and the context may have been
	// handed around since the last construction, so re-assert it.
	ctx.applyNetwork()

	csrc := C.CString(src)
	defer C.free(unsafe.Pointer(csrc))
	cdst := C.CString(dst)
	defer C.free(unsafe.Pointer(cdst))

	parea := C.proj_area_create()
	defer C.proj_area_destroy(parea)
	if area != nil {
		C.proj_area_set_bbox(parea, C.double(area.west), C.double(area.south), C.double(area.east), C.double(area.north))
	}

	pj := C.proj_create_crs_to_crs(ctx.pjContext, csrc, cdst, parea)
	if C.pjnull(pj) != 0 {
		return nil, ctx.constructionError()
	}

	// Insert an axis swap step where needed so callers always work in
	// lon/lat, east/north order.
	normalized := C.proj_normalize_for_visualization(ctx.pjContext, pj)
	C.proj_destroy(pj)
	if C.pjnull(normalized) != 0 {
		return nil, ctx.constructionError()
	}

	ctx.logger.Debug("created CRS-to-CRS transformation", "source", src, "target", dst)
	return ctx.adopt(normalized), nil
}

// Pipeline creates a transformation from a raw definition: a single
// operation like "+proj=merc +ellps=clrk66", or a "+proj=pipeline +step ..."
// chain. The definition is passed to PROJ exactly as written; in particular
// no axis normalization is applied, so the axis convention is whatever the
// author of the definition chose.
func (ctx *Context) Pipeline(definition string) (*Proj, error) {
	if !ctx.opened {
		return nil, errContextClosed
	}
	if strings.TrimSpace(definition) == "" {
		return nil, &InvalidInputError{Reason: "empty pipeline definition"}
	}

	ctx.applyNetwork()

	cs := C.CString(definition)
	defer C.free(unsafe.Pointer(cs))
	pj := C.proj_create(ctx.pjContext, cs)
	if C.pjnull(pj) != 0 {
		return nil, ctx.constructionError()
	}

	ctx.logger.Debug("created pipeline transformation", "definition", definition)
	return ctx.adopt(pj), nil
}

func (ctx *Context) adopt(pj *C.PJ) *Proj {
	p := Proj{
		opened:  true,
		context: ctx,
		index:   ctx.counter,
		pj:      pj,
	}
	ctx.handles[ctx.counter] = &p
	ctx.counter++

	runtime.SetFinalizer(&p, (*Proj).Close)
	return &p
}

func (ctx *Context) constructionError() error {
	errno := C.proj_context_errno(ctx.pjContext)
	return &ConstructionError{Message: C.GoString(C.proj_errno_string(errno))}
}

func (ctx *Context) applyNetwork() {
	on := C.int(0)
	if ctx.network {
		on = 1
	}
	C.proj_context_set_enable_network(ctx.pjContext, on)
}

// NetworkEnabled reports whether grid download is enabled on this context.
func (ctx *Context) NetworkEnabled() bool {
	if !ctx.opened {
		return false
	}
	return C.proj_context_is_network_enabled(ctx.pjContext) == 1
}

// SetEndpoint changes the URL queried for remote grids. It affects
// transformations created after the call, not existing ones.
func (ctx *Context) SetEndpoint(endpoint string) error {
	if !ctx.opened {
		return errContextClosed
	}
	cs := C.CString(endpoint)
	defer C.free(unsafe.Pointer(cs))
	C.proj_context_set_url_endpoint(ctx.pjContext, cs)
	ctx.logger.Debug("set grid endpoint", "endpoint", endpoint)
	return nil
}

// Endpoint returns the URL queried for remote grids.
func (ctx *Context) Endpoint() (string, error) {
	if !ctx.opened {
		return "", errContextClosed
	}
	return C.GoString(C.proj_context_get_url_endpoint(ctx.pjContext)), nil
}

// GridCacheEnable toggles the local cache of downloaded grid chunks. The
// cache is on by default.
func (ctx *Context) GridCacheEnable(enable bool) {
	if !ctx.opened {
		return
	}
	on := C.int(0)
	if enable {
		on = 1
	}
	C.proj_grid_cache_set_enable(ctx.pjContext, on)
}

// AddSearchPaths appends directories to the list PROJ searches for local
// resource and grid files, keeping the existing entries.
func (ctx *Context) AddSearchPaths(paths ...string) error {
	if !ctx.opened {
		return errContextClosed
	}
	if len(paths) == 0 {
		return nil
	}
	existing := Info().Searchpath
	all := make([]string, 0, len(paths)+8)
	if existing != "" {
		all = append(all, strings.Split(existing, pathListSeparator())...)
	}
	all = append(all, paths...)
	ctx.setSearchPaths(all)
	ctx.logger.Debug("extended search paths", "added", paths)
	return nil
}

func (ctx *Context) setSearchPaths(paths []string) {
	cpaths := make([]*C.char, len(paths))
	for i, p := range paths {
		cpaths[i] = C.CString(p)
	}
	defer func() {
		for _, cp := range cpaths {
			C.free(unsafe.Pointer(cp))
		}
	}()
	C.proj_context_set_search_paths(ctx.pjContext, C.int(len(paths)), &cpaths[0])
}

func pathListSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}
