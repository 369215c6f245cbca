// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package perm_test

import (
	"fmt"
	"slices"

	"github.com/vechain/hashperm/perm"
	"github.com/vechain/hashperm/seed"
)

func ExamplePermutation_Shuffle() {
	p, err := perm.New(10, 1234)
	if err != nil {
		panic(err)
	}
	for i := range p.Len() {
		v, _ := p.Shuffle(i)
		fmt.Printf("%d -> %d\n", i, v)
	}
	_, err = p.Shuffle(10)
	fmt.Println(perm.IsErrIndexOutOfBounds(err))
	// Output:
	// 0 -> 4
	// 1 -> 1
	// 2 -> 2
	// 3 -> 9
	// 4 -> 0
	// 5 -> 7
	// 6 -> 8
	// 7 -> 5
	// 8 -> 6
	// 9 -> 3
	// true
}

func ExampleIter() {
	p, err := perm.New(8, 2025)
	if err != nil {
		panic(err)
	}
	it := perm.NewIter(p)
	fmt.Println(slices.Collect(it.Values()))

	_, ok := it.Next()
	fmt.Println(ok)
	// Output:
	// [6 3 4 1 2 7 0 5]
	// false
}

func ExampleNewFromSource() {
	p, err := perm.NewFromSource(100, seed.NewHash([]byte("round 7")))
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Len(), p.Mask())
	// Output: 100 127
}
