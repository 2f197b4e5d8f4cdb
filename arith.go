// Copyright (c) 2025, The Garble Authors.

package rc5

import "github.com/AeonDave/rc5/internal/words"

// arith is the word arithmetic the key schedule and the rounds are written
// against. W is the in-register word representation.
type arith[W any] interface {
	add(x, y W) W
	sub(x, y W) W
	xor(x, y W) W
	// amount reduces x to a rotation count.
	amount(x W) uint
	rotl(x W, s uint) W
	rotr(x W, s uint) W
	get(b []byte) W
	put(b []byte, x W)
	size() int
}

// native is the arithmetic of a machine word type; wrapping is free.
type native[T words.Word] struct{}

func (native[T]) add(x, y T) T       { return x + y }
func (native[T]) sub(x, y T) T       { return x - y }
func (native[T]) xor(x, y T) T       { return x ^ y }
func (native[T]) amount(x T) uint    { return words.Amount(x) }
func (native[T]) rotl(x T, s uint) T { return words.RotateLeft(x, s) }
func (native[T]) rotr(x T, s uint) T { return words.RotateRight(x, s) }
func (native[T]) get(b []byte) T     { return words.Get[T](b) }
func (native[T]) put(b []byte, x T)  { words.Put(b, x) }
func (native[T]) size() int          { return words.Size[T]() }

// wide is the arithmetic of an n-byte word with no machine type.
type wide struct {
	n int
}

func (a wide) add(x, y words.Wide) words.Wide       { return words.AddWide(x, y, a.n) }
func (a wide) sub(x, y words.Wide) words.Wide       { return words.SubWide(x, y, a.n) }
func (a wide) xor(x, y words.Wide) words.Wide       { return words.XorWide(x, y, a.n) }
func (a wide) amount(x words.Wide) uint             { return words.WideAmount(x, a.n) }
func (a wide) rotl(x words.Wide, s uint) words.Wide { return words.RotateLeftWide(x, s, a.n) }
func (a wide) rotr(x words.Wide, s uint) words.Wide { return words.RotateRightWide(x, s, a.n) }
func (a wide) get(b []byte) words.Wide              { return words.GetWide(b, a.n) }
func (a wide) put(b []byte, x words.Wide)           { words.PutWide(b, x, a.n) }
func (a wide) size() int                            { return a.n }
