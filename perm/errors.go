// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package perm

import "github.com/pkg/errors"

var (
	// ErrInvalidDomain is returned when a permutation is built or resized with length 0.
	ErrInvalidDomain = errors.New("permutation length must be greater than zero")
	// ErrIndexOutOfBounds is returned when Shuffle is called with index >= length.
	ErrIndexOutOfBounds = errors.New("index out of permutation domain")
	// ErrNilSource is returned by NewFromSource when no source is given.
	ErrNilSource = errors.New("nil seed source")
)

func IsErrInvalidDomain(err error) bool {
	return errors.Cause(err) == ErrInvalidDomain
}

func IsErrIndexOutOfBounds(err error) bool {
	return errors.Cause(err) == ErrIndexOutOfBounds
}

func invalidDomain() error {
	metricErrors().AddWithLabel(1, map[string]string{"kind": "invalid_domain"})
	return errors.WithStack(ErrInvalidDomain)
}

func indexOutOfBounds(index, length uint32) error {
	metricErrors().AddWithLabel(1, map[string]string{"kind": "index_out_of_bounds"})
	return errors.Wrapf(ErrIndexOutOfBounds, "shuffle %d, length %d", index, length)
}
