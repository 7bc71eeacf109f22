/*
Package proj provides an interface to the Cartographic Projections Library PROJ [cartography].

See: https://proj.org/

This package targets the PROJ 7 C API. Transformations are built either from
two CRS identifiers (with input and output axis order normalized to
longitude/latitude, easting/northing) or from a raw pipeline definition,
which is passed to PROJ exactly as written.

A Context and the transformations created from it belong to one goroutine at
a time. Either create one Context per goroutine, or wrap a transformation in
a SafeProj to share it.
*/
package proj
