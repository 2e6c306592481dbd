// Copyright 2017 The Gosoil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package num implements basic numerical routines for 1D finite-difference grids
package num

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// PivotTol is the smallest pivot magnitude tolerated during Thomas elimination.
// A pivot below this value indicates loss of diagonal dominance.
const PivotTol = 1e-18

// SingularError indicates a degenerated pivot during tridiagonal elimination
type SingularError struct {
	Row int // row at which the pivot degenerated
}

// Error returns the error message
func (o *SingularError) Error() string {
	return io.Sf("tridiagonal system is singular: pivot at row %d is smaller than %g", o.Row, PivotTol)
}

// IsSingular tells whether err corresponds to a singular tridiagonal system
func IsSingular(err error) bool {
	_, ok := err.(*SingularError)
	return ok
}

// SolveTridiag solves the linear system A・x = d where A is tridiagonal with
// sub-diagonal a, diagonal b and super-diagonal c, using the Thomas algorithm.
//  Input:
//   a -- sub-diagonal   [n]  (a[0] is ignored)
//   b -- diagonal       [n]
//   c -- super-diagonal [n]  (c[n-1] is ignored)
//   d -- right-hand side [n]
//  Output:
//   x -- solution [n]
//  Notes:
//   the input slices are not modified; internal scratch copies are used.
//   A *SingularError is returned whenever a pivot magnitude falls below PivotTol.
func SolveTridiag(a, b, c, d []float64) (x []float64, err error) {

	// check
	n := len(b)
	if n < 2 {
		return nil, chk.Err("tridiagonal system needs at least 2 equations. n=%d is invalid", n)
	}
	if len(a) != n || len(c) != n || len(d) != n {
		return nil, chk.Err("all four arrays must have the same length. %d, %d, %d, %d is invalid", len(a), n, len(c), len(d))
	}

	// scratch copies of modified arrays
	cp := make([]float64, n)
	dp := make([]float64, n)

	// forward elimination, normalising by the pivot
	if math.Abs(b[0]) < PivotTol {
		return nil, &SingularError{0}
	}
	cp[0] = c[0] / b[0]
	dp[0] = d[0] / b[0]
	for i := 1; i < n; i++ {
		den := b[i] - a[i]*cp[i-1]
		if math.Abs(den) < PivotTol {
			return nil, &SingularError{i}
		}
		if i < n-1 {
			cp[i] = c[i] / den
		}
		dp[i] = (d[i] - a[i]*dp[i-1]) / den
	}

	// back substitution
	x = make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return
}
