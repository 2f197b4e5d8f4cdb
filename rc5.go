// Copyright (c) 2025, The Garble Authors.

// Package rc5 implements Rivest's RC5 block cipher for any word width that is
// a multiple of 8 bits, up to 256, with 0 to 255 rounds and 0 to 255 key bytes.
//
// A variant is named RC5-w/r/b: w bits per word, r rounds, b key bytes.
// Blocks are two words, packed little-endian. Widths of 8, 16, 32 and 64 bits
// run on machine words; other widths use fixed-size byte arrays.
//
// RC5 is a bare block primitive. Modes of operation, padding and
// authentication are left to the caller, as with any [cipher.Block].
package rc5

import (
	"crypto/cipher"

	"github.com/AeonDave/rc5/internal/consts"
	"github.com/AeonDave/rc5/internal/words"
)

// Word is the set of machine word types a [WordCipher] can run on.
type Word = words.Word

type blockEngine interface {
	encrypt(dst, src []byte)
	decrypt(dst, src []byte)
	subkeys() [][]byte
}

// Cipher is an RC5 instance with an expanded key. It is safe for concurrent use.
// A Cipher must be built with [New] or [NewCipher]; the zero value is unusable.
type Cipher struct {
	params Params
	engine blockEngine
}

var _ cipher.Block = (*Cipher)(nil)

// New expands key for the variant p. The key must be exactly p.KeyLen bytes.
func New(key []byte, p Params) (*Cipher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(key) != p.KeyLen {
		return nil, KeySizeError(len(key))
	}
	pw, qw := consts.Magic(p.WordBits)
	var e blockEngine
	switch p.WordBits {
	case 8:
		e = expandKey[uint8](native[uint8]{}, key, p.Rounds, pw, qw)
	case 16:
		e = expandKey[uint16](native[uint16]{}, key, p.Rounds, pw, qw)
	case 32:
		e = expandKey[uint32](native[uint32]{}, key, p.Rounds, pw, qw)
	case 64:
		e = expandKey[uint64](native[uint64]{}, key, p.Rounds, pw, qw)
	default:
		e = expandKey[words.Wide](wide{n: p.WordSize()}, key, p.Rounds, pw, qw)
	}
	return &Cipher{params: p, engine: e}, nil
}

// NewCipher returns RC5-wordBits/rounds/len(key) as a [cipher.Block].
func NewCipher(key []byte, wordBits, rounds int) (cipher.Block, error) {
	c, err := New(key, Params{WordBits: wordBits, Rounds: rounds, KeyLen: len(key)})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Params returns the variant c was built for.
func (c *Cipher) Params() Params { return c.params }

// BlockSize returns the block size in bytes, twice the word size.
func (c *Cipher) BlockSize() int { return c.params.BlockSize() }

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely. It panics if either is shorter than a block.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.checkFull(dst, src)
	c.engine.encrypt(dst, src)
}

// Decrypt decrypts the first block of src into dst. dst and src may overlap
// entirely. It panics if either is shorter than a block.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.checkFull(dst, src)
	c.engine.decrypt(dst, src)
}

func (c *Cipher) checkInit() {
	if c.engine == nil {
		panic("rc5: cipher not initialized")
	}
}

func (c *Cipher) checkFull(dst, src []byte) {
	c.checkInit()
	bs := c.BlockSize()
	if len(src) < bs {
		panic("rc5: input not full block")
	}
	if len(dst) < bs {
		panic("rc5: output not full block")
	}
}

// EncryptBlock returns the encryption of src, which must be exactly one block.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	c.checkInit()
	if len(src) != c.BlockSize() {
		return nil, &BlockSizeError{Op: "encrypt", Got: len(src), Want: c.BlockSize()}
	}
	dst := make([]byte, len(src))
	c.engine.encrypt(dst, src)
	return dst, nil
}

// DecryptBlock returns the decryption of src, which must be exactly one block.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	c.checkInit()
	if len(src) != c.BlockSize() {
		return nil, &BlockSizeError{Op: "decrypt", Got: len(src), Want: c.BlockSize()}
	}
	dst := make([]byte, len(src))
	c.engine.decrypt(dst, src)
	return dst, nil
}

// Subkeys returns a copy of the expanded key table, one little-endian byte
// slice per word.
func (c *Cipher) Subkeys() [][]byte {
	c.checkInit()
	return c.engine.subkeys()
}

// WordCipher is RC5 specialised to the machine word type T, with w equal to
// the width of T. Blocks are passed as word pairs, so they cannot be the
// wrong size. It is safe for concurrent use.
type WordCipher[T Word] struct {
	e *engine[T, native[T]]
}

// NewWordCipher expands key for RC5 over T with the given number of rounds.
func NewWordCipher[T Word](key []byte, rounds int) (*WordCipher[T], error) {
	p := Params{WordBits: int(words.Bits[T]()), Rounds: rounds, KeyLen: len(key)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	pw, qw := consts.Magic(p.WordBits)
	return &WordCipher[T]{e: expandKey[T](native[T]{}, key, rounds, pw, qw)}, nil
}

// EncryptWords encrypts the block (a, b).
func (c *WordCipher[T]) EncryptWords(a, b T) (T, T) { return c.e.encryptWords(a, b) }

// DecryptWords decrypts the block (a, b).
func (c *WordCipher[T]) DecryptWords(a, b T) (T, T) { return c.e.decryptWords(a, b) }

// Subkeys returns a copy of the expanded key table.
func (c *WordCipher[T]) Subkeys() []T {
	return append([]T(nil), c.e.s...)
}
