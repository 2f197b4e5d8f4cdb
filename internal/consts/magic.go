// Copyright (c) 2025, The Garble Authors.

// Package consts holds the RC5 magic constants P_w and Q_w.
//
// P_w is Odd((e-2) * 2^w) and Q_w is Odd((phi-1) * 2^w), where Odd rounds an
// even integer up to the next odd one. Native word widths come from a
// precomputed table; any other width is derived once and memoized.
package consts

import (
	"fmt"
	"math/big"
	"sync"
)

// Pair is a magic constant pair for a word width up to 64 bits.
type Pair struct {
	P, Q uint64
}

// Table holds the precomputed pairs for the native word widths.
// scripts/magicgen regenerates it from Derive.
var Table = map[int]Pair{
	8:  {P: 0xb7, Q: 0x9f},
	16: {P: 0xb7e1, Q: 0x9e37},
	32: {P: 0xb7e15163, Q: 0x9e3779b9},
	64: {P: 0xb7e151628aed2a6b, Q: 0x9e3779b97f4a7c15},
}

type derived struct {
	p, q []byte
}

var memo sync.Map // int -> derived

// Magic returns P_w and Q_w as little-endian byte words of w/8 bytes.
// w must be a positive multiple of 8. The returned slices are fresh copies.
func Magic(w int) (p, q []byte) {
	if w <= 0 || w%8 != 0 {
		panic(fmt.Sprintf("consts: invalid word width %d", w))
	}
	n := w / 8
	if pair, ok := Table[w]; ok {
		p, q = make([]byte, n), make([]byte, n)
		for i := 0; i < n; i++ {
			p[i] = byte(pair.P >> (8 * i))
			q[i] = byte(pair.Q >> (8 * i))
		}
		return p, q
	}
	v, ok := memo.Load(w)
	if !ok {
		dp, dq := Derive(w)
		v, _ = memo.LoadOrStore(w, derived{p: leBytes(dp, n), q: leBytes(dq, n)})
	}
	d := v.(derived)
	return append([]byte(nil), d.p...), append([]byte(nil), d.q...)
}

// Derive computes P_w and Q_w from e and the golden ratio.
func Derive(w int) (p, q *big.Int) {
	prec := uint(w) + 64
	one := new(big.Float).SetPrec(prec).SetInt64(1)

	// e - 2 = sum over k >= 2 of 1/k!
	e := new(big.Float).SetPrec(prec)
	term := new(big.Float).SetPrec(prec).SetInt64(1)
	for k := int64(2); ; k++ {
		term.Quo(term, new(big.Float).SetPrec(prec).SetInt64(k))
		if term.Sign() == 0 || term.MantExp(nil) < -int(prec) {
			break
		}
		e.Add(e, term)
	}

	// phi - 1 = (sqrt(5) - 1) / 2
	five := new(big.Float).SetPrec(prec).SetInt64(5)
	phi := new(big.Float).SetPrec(prec).Sqrt(five)
	phi.Sub(phi, one)
	phi.Quo(phi, new(big.Float).SetPrec(prec).SetInt64(2))

	return odd(scale(e, w)), odd(scale(phi, w))
}

// scale returns the integer part of x * 2^w.
func scale(x *big.Float, w int) *big.Int {
	scaled := new(big.Float).SetPrec(x.Prec()).SetMantExp(x, w)
	n, _ := scaled.Int(nil)
	return n
}

func odd(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		n.Add(n, big.NewInt(1))
	}
	return n
}

func leBytes(n *big.Int, size int) []byte {
	b := n.FillBytes(make([]byte, size))
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
