// Copyright (c) 2025, The Garble Authors.

package rc5

import "strconv"

// WordSizeError reports an unsupported word width in bits.
type WordSizeError int

func (e WordSizeError) Error() string {
	return "rc5: invalid word size " + strconv.Itoa(int(e)) + " bits"
}

// RoundsError reports a round count outside 0..MaxRounds.
type RoundsError int

func (e RoundsError) Error() string {
	return "rc5: invalid round count " + strconv.Itoa(int(e))
}

// KeySizeError reports a key length that is out of range or does not match
// the requested parameters.
type KeySizeError int

func (e KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(e))
}

// BlockSizeError reports a buffer that is not exactly one block.
type BlockSizeError struct {
	Op   string // "encrypt" or "decrypt"
	Got  int
	Want int
}

func (e *BlockSizeError) Error() string {
	return "rc5: " + e.Op + ": block is " + strconv.Itoa(e.Got) + " bytes, want " + strconv.Itoa(e.Want)
}
