package bitops

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Unsigned is the constraint for mask, extraction, and rotation operands.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// width returns the bit width of T.
func width[T Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

// SignExtend32 treats the low sourceWidth bits of value as a two's-complement
// signed integer and widens it to 32 bits, preserving sign.
//
// The caller must ensure 0 < sourceWidth <= 32; results outside that range
// are unspecified.
func SignExtend32(value uint32, sourceWidth uint) uint32 {
	shift := 32 - sourceWidth
	return uint32(int32(value<<shift) >> shift)
}

// SignExtend16 treats the low sourceWidth bits of value as a two's-complement
// signed integer and widens it to 16 bits, preserving sign.
//
// The caller must ensure 0 < sourceWidth <= 16; results outside that range
// are unspecified.
func SignExtend16(value uint16, sourceWidth uint) uint16 {
	shift := 16 - sourceWidth
	return uint16(int16(value<<shift) >> shift)
}

// Ones returns a value with the low count bits set and the rest clear.
// Ones[T](0) is zero and Ones[T](width of T) is all-ones.
// Panics if count exceeds the bit width of T.
func Ones[T Unsigned](count uint) T {
	w := width[T]()
	if count > w {
		panic(fmt.Sprintf("bitops: ones count %d exceeds %d-bit operand", count, w))
	}
	if count == 0 {
		return 0
	}
	return ^T(0) >> (w - count)
}

// GetBit extracts the single bit at offset, right-justified.
// Panics if offset is outside the operand.
func GetBit[T Unsigned](value T, offset uint) T {
	if offset >= width[T]() {
		panic(fmt.Sprintf("bitops: bit offset %d exceeds %d-bit operand", offset, width[T]()))
	}
	return (value >> offset) & 1
}

// GetBits extracts the width-bit field starting at offset, right-justified.
// Panics if offset+width does not fit the operand.
func GetBits[T Unsigned](value T, offset, fieldWidth uint) T {
	if offset+fieldWidth > width[T]() {
		panic(fmt.Sprintf("bitops: field %d+%d exceeds %d-bit operand", offset, fieldWidth, width[T]()))
	}
	return (value >> offset) & Ones[T](fieldWidth)
}

// IsBitSet reports whether the bit at index bit of value is set. This is
// the runtime-indexed counterpart of GetBit: bit is masked to the low five
// bits before shifting, so any index is well-defined.
func IsBitSet(value uint32, bit int) bool {
	return (value>>(uint(bit)&31))&1 == 1
}

// Rotl rotates value left by n bits. n is reduced modulo the operand's bit
// width before use, so rotation by zero, by the full width, or by a
// negative amount is always defined.
func Rotl[T Unsigned](value T, n int) T {
	w := width[T]()
	r := uint(n) & (w - 1)
	return value<<r | value>>(w-r)
}

// Rotr rotates value right by n bits, with the same modulo reduction as
// Rotl.
func Rotr[T Unsigned](value T, n int) T {
	w := width[T]()
	r := uint(n) & (w - 1)
	return value>>r | value<<(w-r)
}

// IncBCDByte increments a packed-BCD byte, carrying a low digit of 9 into
// the tens nibble. Only defined for values below 0x99.
func IncBCDByte(value uint8) uint8 {
	if value&0xf == 0x9 {
		return value + 7
	}
	return value + 1
}

// BitCast reinterprets the bit pattern of value as To without numeric
// conversion. The two types must have the same size; mismatched sizes
// panic. The copy-then-reinterpret form gives identical results on every
// toolchain.
func BitCast[To, From any](value From) To {
	var out To
	if unsafe.Sizeof(out) != unsafe.Sizeof(value) {
		panic(fmt.Sprintf("bitops: bit cast between %d-byte and %d-byte types",
			unsafe.Sizeof(value), unsafe.Sizeof(out)))
	}
	return *(*To)(unsafe.Pointer(&value))
}
