// Package bitops implements the numeric primitives shared by the
// instruction decoders: arbitrary-width sign extension, bit-field masking
// and extraction, circular rotation, BCD increment, and same-size bit
// reinterpretation.
//
// Every function is pure and stateless. Field offsets and widths are
// validated against the operand's bit width; an out-of-range parameter is
// a programming error and panics. Decoder tables are generated once at
// startup, so a bad constant surfaces on the first run rather than
// corrupting a lookup silently.
package bitops
