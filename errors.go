package proj

import "fmt"

// Every failure reported by PROJ is translated into one of the error types
// below at the cgo boundary. Raw PROJ error codes do not escape this
// package, except as the Code field of a TransformError.

// A ConstructionError means PROJ could not build a transformation: the CRS
// identifiers could not be resolved, or the pipeline definition did not
// parse. The message is PROJ's own diagnostic, verbatim. Retrying with the
// same input cannot succeed.
type ConstructionError struct {
	Message string
}

func (e *ConstructionError) Error() string {
	return "proj: construction failed: " + e.Message
}

// A TransformError is a failed coordinate operation. Code is the PROJ error
// number for programmatic matching; Message is PROJ's description of it.
type TransformError struct {
	Code    int
	Message string
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("proj: transform failed: %s (code %d)", e.Message, e.Code)
}

// A NetworkError means grid download support could not be enabled or a grid
// fetch failed. The operation is not retried here; the caller decides.
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return "proj: network: " + e.Message
}

// An InvalidInputError is a malformed argument caught before any native
// call: bad Area bounds, an empty pipeline string, or use of a closed
// handle.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "proj: invalid input: " + e.Reason
}

var (
	errContextClosed    = &InvalidInputError{Reason: "context is closed"}
	errProjectionClosed = &InvalidInputError{Reason: "transformation is closed"}
)

// PROJ error numbers for points that merely fall outside the domain of the
// operation. These do not poison the transformation: bulk calls continue
// past them and mark the failed elements. Anything else reported during a
// bulk call is treated as fatal for the whole batch.
//
// The set matches the PROJ 7.1 pj_errno values; it must be revisited when
// targeting another PROJ major version.
var pointErrnos = map[int]bool{
	-14: true, // latitude or longitude exceeded limits
	-15: true, // invalid x or y
	-20: true, // tolerance condition error
}

func isPointErrno(code int) bool {
	return pointErrnos[code]
}
