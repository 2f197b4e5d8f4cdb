// Copyright (c) 2025, The Garble Authors.

package rc5

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxRounds is the largest round count RC5 defines.
	MaxRounds = 255
	// MaxKeyLen is the largest key length in bytes RC5 defines.
	MaxKeyLen = 255
	// MaxWordBits is the widest word supported.
	MaxWordBits = 256
)

// Default is RC5-32/12/16, the parameter set Rivest suggests as nominal.
var Default = Params{WordBits: 32, Rounds: 12, KeyLen: 16}

// Params selects an RC5 variant, written RC5-w/r/b.
type Params struct {
	WordBits int // w: bits per word, a multiple of 8
	Rounds   int // r
	KeyLen   int // b: key length in bytes
}

// Validate reports whether p describes a supported variant.
func (p Params) Validate() error {
	if p.WordBits < 8 || p.WordBits > MaxWordBits || p.WordBits%8 != 0 {
		return WordSizeError(p.WordBits)
	}
	if p.Rounds < 0 || p.Rounds > MaxRounds {
		return RoundsError(p.Rounds)
	}
	if p.KeyLen < 0 || p.KeyLen > MaxKeyLen {
		return KeySizeError(p.KeyLen)
	}
	return nil
}

// WordSize returns the word size in bytes.
func (p Params) WordSize() int { return p.WordBits / 8 }

// BlockSize returns the block size in bytes.
func (p Params) BlockSize() int { return 2 * p.WordSize() }

// TableLen returns the number of subkeys, 2(r+1).
func (p Params) TableLen() int { return 2 * (p.Rounds + 1) }

// KeyWords returns the number of words the key is packed into, at least one.
func (p Params) KeyWords() int {
	u := p.WordSize()
	return max(1, (p.KeyLen+u-1)/u)
}

func (p Params) String() string {
	return fmt.Sprintf("RC5-%d/%d/%d", p.WordBits, p.Rounds, p.KeyLen)
}

// ParseParams parses a variant written as "RC5-w/r/b" or "w/r/b".
func ParseParams(value string) (Params, error) {
	s := strings.TrimSpace(value)
	if len(s) >= 4 && strings.EqualFold(s[:4], "rc5-") {
		s = s[4:]
	}
	fields := strings.Split(s, "/")
	if len(fields) != 3 {
		return Params{}, fmt.Errorf("invalid rc5 parameters %q: want RC5-w/r/b", value)
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Params{}, fmt.Errorf("invalid rc5 parameters %q: %w", value, err)
		}
		nums[i] = n
	}
	p := Params{WordBits: nums[0], Rounds: nums[1], KeyLen: nums[2]}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
