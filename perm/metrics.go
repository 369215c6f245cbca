// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package perm

import "github.com/vechain/hashperm/metrics"

var (
	metricPasses          = metrics.LazyLoadCounter("perm_passes_total")
	metricErrors          = metrics.LazyLoadCounterVec("perm_errors_total", []string{"kind"})
	metricCycleWalkRounds = metrics.LazyLoadHistogram("perm_cycle_walk_rounds", []int64{1, 2, 3, 4, 6, 8, 16})
)
