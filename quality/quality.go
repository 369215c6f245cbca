// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package quality measures how shuffled a permutation looks. Every measure walks the
// whole domain, so it is meant for tests and offline checks, not hot paths.
package quality

import (
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/vechain/hashperm/perm"
)

// ErrLengthMismatch is returned when two permutations over different domains are compared.
var ErrLengthMismatch = errors.New("permutations have different lengths")

// Summary describes the distribution of |π(i) - i|.
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Max    float64
}

// Coincidence returns the fraction of indexes a and b map to the same value.
// Two unrelated permutations score about 1/n.
func Coincidence(a, b perm.Permutation) (float64, error) {
	if a.Len() != b.Len() {
		return 0, errors.Wrapf(ErrLengthMismatch, "%d != %d", a.Len(), b.Len())
	}
	var same uint32
	for i := range a.Len() {
		if must(a, i) == must(b, i) {
			same++
		}
	}
	return float64(same) / float64(a.Len()), nil
}

// FixedPoints counts the indexes p leaves in place.
func FixedPoints(p perm.Permutation) uint32 {
	var n uint32
	for i := range p.Len() {
		if must(p, i) == i {
			n++
		}
	}
	return n
}

// Displacement summarizes how far p moves each index. For a uniform random
// permutation the mean is about n/3.
func Displacement(p perm.Permutation) (Summary, error) {
	d := make(stats.Float64Data, 0, p.Len())
	for i := range p.Len() {
		v := must(p, i)
		if v > i {
			d = append(d, float64(v-i))
		} else {
			d = append(d, float64(i-v))
		}
	}

	var (
		s   Summary
		err error
	)
	if s.Mean, err = d.Mean(); err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	if s.Median, err = d.Median(); err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	if s.StdDev, err = d.StandardDeviation(); err != nil {
		return Summary{}, errors.Wrap(err, "stddev")
	}
	if s.Max, err = d.Max(); err != nil {
		return Summary{}, errors.Wrap(err, "max")
	}
	return s, nil
}

// RankCorrelation returns the correlation between i and π(i). Both sequences are
// ranks already, so this is Spearman's rho; values near 0 mean no monotone trend.
// A singleton domain has no defined correlation and yields 0.
func RankCorrelation(p perm.Permutation) float64 {
	if p.Len() < 2 {
		return 0
	}
	x := make([]float64, p.Len())
	y := make([]float64, p.Len())
	for i := range p.Len() {
		x[i] = float64(i)
		y[i] = float64(must(p, i))
	}
	return stat.Correlation(x, y, nil)
}

// must shuffles an index known to be in range.
func must(p perm.Permutation, i uint32) uint32 {
	v, err := p.Shuffle(i)
	if err != nil {
		panic(err)
	}
	return v
}
