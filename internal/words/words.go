// Copyright (c) 2025, The Garble Authors.

// Package words provides the fixed-width word arithmetic RC5 is built from.
//
// Native words are the unsigned integer types uint8 through uint64, where
// addition and subtraction wrap on their own. Widths that have no native type
// are carried as little-endian byte arrays, see [Wide].
package words

import "math/bits"

// Word is the set of native word types.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the width of T in bits.
func Bits[T Word]() uint {
	var zero T
	return uint(bits.OnesCount64(uint64(^zero)))
}

// Size returns the width of T in bytes.
func Size[T Word]() int {
	return int(Bits[T]() / 8)
}

// Amount reduces x to a rotation amount for a word of type T.
func Amount[T Word](x T) uint {
	return uint(x) & (Bits[T]() - 1)
}

// RotateLeft rotates x left by s bits, s taken modulo the width of T.
func RotateLeft[T Word](x T, s uint) T {
	n := Bits[T]()
	s &= n - 1
	return x<<s | x>>(n-s)
}

// RotateRight rotates x right by s bits, s taken modulo the width of T.
func RotateRight[T Word](x T, s uint) T {
	n := Bits[T]()
	s &= n - 1
	return x>>s | x<<(n-s)
}

// Get reads a little-endian word from b. Missing high bytes read as zero and
// bytes beyond the width of T are ignored.
func Get[T Word](b []byte) T {
	n := min(len(b), Size[T]())
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return T(v)
}

// Put writes x to b in little-endian order. b must hold at least Size[T]() bytes.
func Put[T Word](b []byte, x T) {
	n := Size[T]()
	_ = b[n-1]
	v := uint64(x)
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
