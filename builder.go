package proj

/*
#include "proj_go.h"
*/
import "C"

import (
	"log/slog"
	"unsafe"
)

// A Builder accumulates configuration for a Context before anything touches
// the native library. All options are optional; the zero configuration is
// the same as NewContext. A Builder is single-use: Finalize consumes it, and
// using it again is a bug in the caller and panics.
type Builder struct {
	network     bool
	cachePath   string
	endpoint    string
	searchPaths []string
	logger      *slog.Logger
	finalized   bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// EnableNetwork toggles downloading of accuracy grids that are not present
// locally. Off by default. Grid downloads happen synchronously inside
// transform calls and cannot be cancelled from this layer.
func (b *Builder) EnableNetwork(on bool) *Builder {
	b.network = on
	return b
}

// GridCachePath sets the file used as the local cache of downloaded grid
// chunks. Empty means PROJ's default location.
func (b *Builder) GridCachePath(path string) *Builder {
	b.cachePath = path
	return b
}

// SearchPaths appends directories PROJ should search for local resource and
// grid files, in order, after the built-in locations.
func (b *Builder) SearchPaths(paths ...string) *Builder {
	b.searchPaths = append(b.searchPaths, paths...)
	return b
}

// Endpoint overrides the URL queried for remote grids.
func (b *Builder) Endpoint(url string) *Builder {
	b.endpoint = url
	return b
}

// Logger sets the logger the Context reports construction and network
// events to, at debug level. Nil means silent.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Finalize creates the native context and applies the accumulated
// configuration to it. The Builder is spent afterwards.
func (b *Builder) Finalize() (*Context, error) {
	if b.finalized {
		panic("proj: Builder reused after Finalize")
	}
	b.finalized = true

	ctx := NewContext()
	ctx.network = b.network
	if b.logger != nil {
		ctx.logger = b.logger
	}

	if b.cachePath != "" {
		cs := C.CString(b.cachePath)
		C.proj_grid_cache_set_filename(ctx.pjContext, cs)
		C.free(unsafe.Pointer(cs))
	}
	if b.endpoint != "" {
		if err := ctx.SetEndpoint(b.endpoint); err != nil {
			ctx.Close()
			return nil, err
		}
	}
	if len(b.searchPaths) > 0 {
		if err := ctx.AddSearchPaths(b.searchPaths...); err != nil {
			ctx.Close()
			return nil, err
		}
	}
	if b.network {
		if C.proj_context_set_enable_network(ctx.pjContext, 1) != 1 {
			ctx.Close()
			return nil, &NetworkError{Message: "grid download support could not be enabled"}
		}
		ctx.logger.Debug("network grid download enabled")
	}

	return ctx, nil
}
