// Copyright (c) 2025, The Garble Authors.

package words

import "math/bits"

// MaxWideBytes is the largest word a Wide can hold.
const MaxWideBytes = 32

// Wide is a little-endian word of up to MaxWideBytes bytes. Operations take
// the active width n in bytes and leave the bytes above n zero.
type Wide [MaxWideBytes]byte

// RotationModulus returns the modulus applied to rotation amounts for a word
// of w bits: w itself when it is a power of two, otherwise the largest power
// of two below it.
func RotationModulus(w uint) uint {
	return 1 << (bits.Len(w) - 1)
}

// GetWide reads an n-byte little-endian word from b, zero-padding short input.
func GetWide(b []byte, n int) Wide {
	var x Wide
	copy(x[:n], b)
	return x
}

// PutWide writes the low n bytes of x to b.
func PutWide(b []byte, x Wide, n int) {
	copy(b[:n], x[:n])
}

// AddWide returns x + y mod 2^(8n).
func AddWide(x, y Wide, n int) Wide {
	var z Wide
	var carry uint16
	for i := 0; i < n; i++ {
		sum := uint16(x[i]) + uint16(y[i]) + carry
		z[i] = byte(sum)
		carry = sum >> 8
	}
	return z
}

// SubWide returns x - y mod 2^(8n).
func SubWide(x, y Wide, n int) Wide {
	var z Wide
	var borrow uint16
	for i := 0; i < n; i++ {
		diff := uint16(x[i]) - uint16(y[i]) - borrow
		z[i] = byte(diff)
		borrow = (diff >> 8) & 1
	}
	return z
}

// XorWide returns x ^ y.
func XorWide(x, y Wide, n int) Wide {
	var z Wide
	for i := 0; i < n; i++ {
		z[i] = x[i] ^ y[i]
	}
	return z
}

// WideAmount reduces x to a rotation amount for an n-byte word.
// The modulus never exceeds 256, so the low byte is enough.
func WideAmount(x Wide, n int) uint {
	return uint(x[0]) & (RotationModulus(uint(n)*8) - 1)
}

// RotateLeftWide rotates the n-byte word x left by s bits, s taken modulo
// the rotation modulus of the width.
func RotateLeftWide(x Wide, s uint, n int) Wide {
	s &= RotationModulus(uint(n)*8) - 1
	return rotateWide(x, s, n)
}

// RotateRightWide rotates the n-byte word x right by s bits, s taken modulo
// the rotation modulus of the width.
func RotateRightWide(x Wide, s uint, n int) Wide {
	s &= RotationModulus(uint(n)*8) - 1
	w := uint(n) * 8
	return rotateWide(x, (w-s)%w, n)
}

// rotateWide rotates left by s < 8n bits.
func rotateWide(x Wide, s uint, n int) Wide {
	if s == 0 {
		return x
	}
	q, r := int(s/8), s%8
	var z Wide
	for i := 0; i < n; i++ {
		lo := x[(i-q+n)%n]
		if r == 0 {
			z[i] = lo
			continue
		}
		carry := x[(i-q-1+2*n)%n]
		z[i] = lo<<r | carry>>(8-r)
	}
	return z
}
