// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package perm

import (
	"iter"

	"github.com/vechain/hashperm/log"
)

var logger = log.WithContext("pkg", "perm")

// Iter walks a Permutation in index order, yielding Shuffle(0), Shuffle(1), ...
// A pass ends after Len() values; Reset starts the next one.
//
// Iter is not safe for concurrent use.
type Iter struct {
	perm    Permutation
	current uint32
}

// NewIter returns an iterator positioned at the start of p.
func NewIter(p Permutation) *Iter {
	return &Iter{perm: p}
}

// NewIterAt returns an iterator over p that starts at index current.
func NewIterAt(p Permutation, current uint32) *Iter {
	return &Iter{perm: p, current: current}
}

// Permutation returns the permutation being iterated.
func (it *Iter) Permutation() Permutation { return it.perm }

// Current returns the next index to be permuted.
func (it *Iter) Current() uint32 { return it.current }

// Remaining returns how many values are left in the current pass.
func (it *Iter) Remaining() uint32 {
	if it.current >= it.perm.length {
		return 0
	}
	return it.perm.length - it.current
}

// Next returns the next permuted value. ok is false once the pass is exhausted.
func (it *Iter) Next() (v uint32, ok bool) {
	if it.current >= it.perm.length {
		return 0, false
	}
	v, rounds := it.perm.shuffle(it.current)
	metricCycleWalkRounds().Observe(int64(rounds))

	it.current++
	if it.current == it.perm.length {
		metricPasses().Add(1)
		logger.Debug("permutation pass completed", "length", it.perm.length, "seed", it.perm.seed)
	}
	return v, true
}

// Values ranges over what is left of the current pass.
func (it *Iter) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Reset rewinds to the start of a new pass.
func (it *Iter) Reset() {
	logger.Debug("permutation reset", "length", it.perm.length, "from", it.current)
	it.current = 0
}

// SetCurrent moves the cursor. Values >= Len() leave the iterator exhausted.
func (it *Iter) SetCurrent(current uint32) {
	it.current = current
}

// SetSeed switches to another permutation of the same length.
func (it *Iter) SetSeed(seed uint32) {
	it.perm = it.perm.WithSeed(seed)
}

// SetLength resizes the domain. On error the iterator is unchanged.
func (it *Iter) SetLength(length uint32) error {
	p, err := it.perm.WithLength(length)
	if err != nil {
		return err
	}
	it.perm = p
	return nil
}
