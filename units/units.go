// Package units provides base-1024 byte-count constants for memory-region
// and image sizes, usable as untyped compile-time values.
package units

const (
	KB = 1 << 10
	MB = KB << 10
	GB = MB << 10
)
