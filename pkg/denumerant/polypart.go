// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package denumerant

import (
	"math/big"

	"github.com/consensys/go-denumerant/pkg/util/math"
	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// basisCoefficients re-expresses the pole numerator f in the basis
// {(1-x)^j}, returning coefficients c_0..c_{m-1} such that f is the sum of
// the c_j*(1-x)^j.  Each step divides the running dividend by (1-x); the
// scalar remainder is the next basis coefficient.
func basisCoefficients(f poly.RatPoly) []big.Rat {
	var coeffs []big.Rat
	//
	dividend := f
	//
	for dividend.Degree() > 0 {
		var c big.Rat
		//
		quotient, rem := dividend.DivLinear()
		c.Set(rem)
		coeffs = append(coeffs, c)
		dividend = quotient
	}
	// Final scalar quotient is the last coefficient.
	var last big.Rat
	//
	last.Set(dividend.Coefficient(0))
	coeffs = append(coeffs, last)
	//
	return coeffs
}

// polySum evaluates the polynomial (non-periodic) part of the denumerant at
// t, namely the sum of c_j * C(t+m-1-j, t) over the basis coefficients.
func polySum(coeffs []big.Rat, m uint, t uint) *big.Rat {
	var (
		sum big.Rat
		tmp big.Rat
	)
	//
	for j := range coeffs {
		b := math.Binomial(int64(t)+int64(m)-1-int64(j), int64(t))
		tmp.Mul(&coeffs[j], b)
		sum.Add(&sum, &tmp)
	}
	//
	return &sum
}
