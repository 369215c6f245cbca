// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package seed

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Derive folds data into a 32 bit seed: the leading word of blake2b-256 over the
// length prefixed concatenation of data. Length prefixes keep ("ab", "c") and
// ("a", "bc") apart.
func Derive(data ...[]byte) uint32 {
	h, _ := blake2b.New256(nil)
	var n [4]byte
	for _, b := range data {
		binary.BigEndian.PutUint32(n[:], uint32(len(b)))
		h.Write(n[:])
		h.Write(b)
	}
	var sum [blake2b.Size256]byte
	return binary.BigEndian.Uint32(h.Sum(sum[:0]))
}
