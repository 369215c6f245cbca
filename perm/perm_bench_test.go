// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package perm

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

var benchSizes = []uint32{100, 1000, 10_000, 100_000}

const benchSeed = 1209

func BenchmarkShuffle(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(int(n)), func(b *testing.B) {
			p, err := New(n, benchSeed)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			for b.Loop() {
				for i := range n {
					p.Shuffle(i)
				}
			}
		})
	}
}

func BenchmarkIter(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(int(n)), func(b *testing.B) {
			p, err := New(n, benchSeed)
			if err != nil {
				b.Fatal(err)
			}
			it := NewIter(p)
			b.ReportAllocs()
			for b.Loop() {
				it.Reset()
				for range it.Values() {
				}
			}
		})
	}
}

// BenchmarkNaiveShuffle materializes and shuffles the whole domain, for comparison.
func BenchmarkNaiveShuffle(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(strconv.Itoa(int(n)), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(benchSeed, 0)) //#nosec G404
			v := make([]uint32, n)
			for i := range v {
				v[i] = uint32(i)
			}
			b.ReportAllocs()
			for b.Loop() {
				rng.Shuffle(len(v), func(i, j int) { v[i], v[j] = v[j], v[i] })
			}
		})
	}
}
