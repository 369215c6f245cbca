// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package perm implements Kensler's hashed permutation, a bijection over [0, n) that
// looks like a random shuffle without storing one.
//
// See A. Kensler, "Correlated Multi-Jittered Sampling", Pixar Technical Memo 13-01, 2013.
package perm

import "fmt"

// Source supplies random words for picking a seed.
// *rand.Rand, *rand.PCG and *rand.ChaCha8 from math/rand/v2 satisfy it.
type Source interface {
	Uint64() uint64
}

// Permutation is one member of the hashed permutation family over [0, length).
// It is an immutable value and safe for concurrent use.
type Permutation struct {
	length uint32
	seed   uint32
	mask   uint32
}

// New creates the permutation over [0, length) selected by seed.
func New(length, seed uint32) (Permutation, error) {
	if length == 0 {
		return Permutation{}, invalidDomain()
	}
	return Permutation{
		length: length,
		seed:   seed,
		mask:   maskOf(length),
	}, nil
}

// NewFromSource creates a permutation over [0, length) with a seed drawn from src.
// The source is consulted once and never by Shuffle.
func NewFromSource(length uint32, src Source) (Permutation, error) {
	if length == 0 {
		return Permutation{}, invalidDomain()
	}
	if src == nil {
		return Permutation{}, ErrNilSource
	}
	return New(length, uint32(src.Uint64()))
}

// maskOf returns the smallest 2^k-1 that covers length-1.
func maskOf(length uint32) uint32 {
	w := length - 1
	w |= w >> 1
	w |= w >> 2
	w |= w >> 4
	w |= w >> 8
	w |= w >> 16
	return w
}

// Len returns the domain size.
func (p Permutation) Len() uint32 { return p.length }

// Seed returns the seed selecting this permutation.
func (p Permutation) Seed() uint32 { return p.seed }

// Mask returns the all-ones bit pattern the hash rounds are confined to.
func (p Permutation) Mask() uint32 { return p.mask }

// WithSeed returns a copy of p using another seed.
func (p Permutation) WithSeed(seed uint32) Permutation {
	p.seed = seed
	return p
}

// WithLength returns a copy of p over [0, length). p is left unchanged on error.
func (p Permutation) WithLength(length uint32) (Permutation, error) {
	if length == 0 {
		return p, invalidDomain()
	}
	p.length = length
	p.mask = maskOf(length)
	return p, nil
}

// Shuffle maps index to its position in the permutation.
func (p Permutation) Shuffle(index uint32) (uint32, error) {
	if index >= p.length {
		return 0, indexOutOfBounds(index, p.length)
	}
	v, _ := p.shuffle(index)
	return v, nil
}

// shuffle expects index < p.length and also reports how many hash rounds were
// needed before the value fell back into the domain.
func (p Permutation) shuffle(index uint32) (uint32, int) {
	var (
		i      = index
		seed   = p.seed
		w      = p.mask
		rounds = 0
	)

	// every step is invertible on the low bits selected by w, so walking the
	// cycle until it re-enters [0, length) keeps the whole mapping bijective.
	for {
		i ^= seed
		i *= 0xe170893d
		i ^= seed >> 16
		i ^= (i & w) >> 4
		i ^= seed >> 9
		i *= 0x0929eb3f
		i ^= seed >> 14
		i ^= (i & w) >> 6
		i ^= seed >> 5
		i *= seed | 1
		i ^= seed >> 12
		i &= w
		i ^= i >> 15
		rounds++

		if i < p.length {
			break
		}
	}

	// rotate by seed; 64 bits so that i+seed cannot wrap before the modulo.
	out := uint32((uint64(i) + uint64(seed)) % uint64(p.length))
	if out >= p.length {
		panic(fmt.Sprintf("perm: shuffle(%d) = %d escaped domain %d", index, out, p.length))
	}
	return out, rounds
}

// String implements fmt.Stringer.
func (p Permutation) String() string {
	return fmt.Sprintf("Permutation(length=%d seed=%#x)", p.length, p.seed)
}
