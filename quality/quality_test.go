// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package quality

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/hashperm/perm"
)

func newPerm(t *testing.T, length, seed uint32) perm.Permutation {
	p, err := perm.New(length, seed)
	require.NoError(t, err)
	return p
}

func TestCoincidence(t *testing.T) {
	a := newPerm(t, 1000, 12345)

	self, err := Coincidence(a, a)
	require.NoError(t, err)
	assert.Equal(t, 1.0, self)

	other, err := Coincidence(a, newPerm(t, 1000, 67890))
	require.NoError(t, err)
	assert.Less(t, other, 0.1)

	_, err = Coincidence(a, newPerm(t, 999, 12345))
	assert.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestCoincidenceRandomSeeds(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7)) //#nosec G404
	for range 20 {
		s1, s2 := rng.Uint32(), rng.Uint32()
		if s1 == s2 {
			continue
		}
		c, err := Coincidence(newPerm(t, 1000, s1), newPerm(t, 1000, s2))
		require.NoError(t, err)
		assert.Less(t, c, 0.1, "seeds %#x %#x", s1, s2)
	}
}

func TestFixedPoints(t *testing.T) {
	assert.Equal(t, uint32(1), FixedPoints(newPerm(t, 1, 99)))
	assert.Less(t, FixedPoints(newPerm(t, 1000, 12345)), uint32(50))
}

func TestDisplacement(t *testing.T) {
	s, err := Displacement(newPerm(t, 1000, 12345))
	require.NoError(t, err)

	// uniform shuffles average n/3
	assert.InDelta(t, 1000.0/3, s.Mean, 60)
	assert.Greater(t, s.Median, 200.0)
	assert.Greater(t, s.StdDev, 0.0)
	assert.LessOrEqual(t, s.Max, 999.0)

	s, err = Displacement(newPerm(t, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, Summary{}, s)
}

func TestRankCorrelation(t *testing.T) {
	for _, seed := range []uint32{0, 1, 12345, 67890, 0xdeadbeef} {
		rho := RankCorrelation(newPerm(t, 1000, seed))
		assert.False(t, math.IsNaN(rho))
		assert.Less(t, math.Abs(rho), 0.1, "seed %#x", seed)
	}
	assert.Equal(t, 0.0, RankCorrelation(newPerm(t, 1, 0)))
}
