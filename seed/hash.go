// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package seed provides deterministic seed material for permutations.
package seed

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Hash is a hash based random generator. Round r yields the eight big endian
// words of blake2b-256(r || data). The same data always yields the same stream.
//
// Hash is not safe for concurrent use.
type Hash struct {
	input  []byte
	round  uint32
	digest [blake2b.Size256]byte
	seq    uint32
}

// NewHash returns a generator keyed by data.
func NewHash(data []byte) *Hash {
	input := make([]byte, len(data)+4)
	copy(input[4:], data)
	return &Hash{input: input}
}

func (h *Hash) nextRound() {
	binary.BigEndian.PutUint32(h.input, h.round)
	h.digest = blake2b.Sum256(h.input)
	h.round++
}

// Uint32 returns the next word of the stream.
func (h *Hash) Uint32() uint32 {
	i := h.seq % 8
	if i == 0 {
		h.nextRound()
	}
	h.seq++
	return binary.BigEndian.Uint32(h.digest[i*4:])
}

// Uint64 returns the next two words, high word first.
func (h *Hash) Uint64() uint64 {
	hi := h.Uint32()
	return uint64(hi)<<32 | uint64(h.Uint32())
}
