// Copyright (c) 2025, The Garble Authors.

package rc5

// engine holds an expanded key table and runs the RC5 rounds over it.
// It is immutable once expandKey returns.
type engine[W any, A arith[W]] struct {
	ar A
	s  []W // 2(r+1) subkeys
}

// expandKey builds the subkey table for key with the given number of rounds.
// p and q are the little-endian magic constants for the word width.
func expandKey[W any, A arith[W]](ar A, key []byte, rounds int, p, q []byte) *engine[W, A] {
	u := ar.size()

	// Load the key as little-endian words, at least one.
	l := make([]W, max(1, (len(key)+u-1)/u))
	for j := range l {
		lo := min(j*u, len(key))
		l[j] = ar.get(key[lo:min(lo+u, len(key))])
	}

	s := make([]W, 2*(rounds+1))
	s[0] = ar.get(p)
	qw := ar.get(q)
	for i := 1; i < len(s); i++ {
		s[i] = ar.add(s[i-1], qw)
	}

	var a, b W
	i, j := 0, 0
	for k := 0; k < 3*max(len(s), len(l)); k++ {
		a = ar.rotl(ar.add(ar.add(s[i], a), b), 3)
		s[i] = a
		ab := ar.add(a, b)
		b = ar.rotl(ar.add(l[j], ab), ar.amount(ab))
		l[j] = b
		i = (i + 1) % len(s)
		j = (j + 1) % len(l)
	}
	return &engine[W, A]{ar: ar, s: s}
}

func (e *engine[W, A]) encryptWords(a, b W) (W, W) {
	ar, s := e.ar, e.s
	a = ar.add(a, s[0])
	b = ar.add(b, s[1])
	for i := 2; i < len(s); i += 2 {
		a = ar.add(ar.rotl(ar.xor(a, b), ar.amount(b)), s[i])
		b = ar.add(ar.rotl(ar.xor(b, a), ar.amount(a)), s[i+1])
	}
	return a, b
}

func (e *engine[W, A]) decryptWords(a, b W) (W, W) {
	ar, s := e.ar, e.s
	for i := len(s) - 2; i >= 2; i -= 2 {
		b = ar.xor(ar.rotr(ar.sub(b, s[i+1]), ar.amount(a)), a)
		a = ar.xor(ar.rotr(ar.sub(a, s[i]), ar.amount(b)), b)
	}
	b = ar.sub(b, s[1])
	a = ar.sub(a, s[0])
	return a, b
}

// encrypt and decrypt read src fully before writing dst, so the two may alias.

func (e *engine[W, A]) encrypt(dst, src []byte) {
	u := e.ar.size()
	a, b := e.encryptWords(e.ar.get(src[:u]), e.ar.get(src[u:2*u]))
	e.ar.put(dst[:u], a)
	e.ar.put(dst[u:2*u], b)
}

func (e *engine[W, A]) decrypt(dst, src []byte) {
	u := e.ar.size()
	a, b := e.decryptWords(e.ar.get(src[:u]), e.ar.get(src[u:2*u]))
	e.ar.put(dst[:u], a)
	e.ar.put(dst[u:2*u], b)
}

// subkeys returns a copy of the table as little-endian byte words.
func (e *engine[W, A]) subkeys() [][]byte {
	u := e.ar.size()
	out := make([][]byte, len(e.s))
	for i, w := range e.s {
		out[i] = make([]byte, u)
		e.ar.put(out[i], w)
	}
	return out
}
