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

// strideDerivative applies the generalized derivative operator D_b, the
// formal derivative with respect to the substitution y = 1-x^b.  A monomial
// of exponent k contributes floor(k/b) * x^{k-b} when k >= b and vanishes
// otherwise.
func strideDerivative(f poly.RatPoly, b uint) poly.RatPoly {
	d := f.Degree()
	//
	if d < int(b) {
		return poly.Zero()
	}
	//
	result := poly.Zero()
	//
	for k := int(b); k <= d; k++ {
		var c big.Rat
		//
		c.SetInt64(int64(k / int(b)))
		c.Mul(&c, f.Coefficient(uint(k)))
		//
		if c.Sign() != 0 {
			result = result.Add(poly.Monomial(&c, uint(k-int(b))))
		}
	}
	//
	return result
}

// taylorRows computes the generalized Taylor expansion of a numerator f
// around the substitution y = 1-x^b.  Row s holds the residue of the s-fold
// stride derivative of f modulo (1-x^b), scaled by (-1)^s/s!, laid out as b
// rational values indexed by residue class.  The expansion has
// 1+floor(deg(f)/b) rows.
func taylorRows(f poly.RatPoly, b uint) [][]big.Rat {
	var (
		rows    [][]big.Rat
		modulus = oneMinusXPow(b)
		scale   = big.NewRat(1, 1)
	)
	//
	if f.IsZero() {
		return nil
	}
	//
	dividend := f
	//
	for s := 0; s <= f.Degree()/int(b); s++ {
		if s > 0 {
			// Next term of the expansion in y = 1-x^b.
			dividend = strideDerivative(dividend, b)
			scale.Mul(scale, big.NewRat(-1, int64(s)))
		}
		//
		residue := polyMod(dividend, modulus)
		row := make([]big.Rat, b)
		//
		for r := uint(0); r < b; r++ {
			row[r].Mul(residue.Coefficient(r), scale)
		}
		//
		rows = append(rows, row)
	}
	//
	return rows
}

// periodicSum evaluates the contribution of one periodic factor at t, given
// its Taylor rows, stride n and multiplicity r.  This is the sum over rows i
// of L_i[t mod n] * C(floor(t/n)+r-1-i, floor(t/n)).
func periodicSum(rows [][]big.Rat, n uint, r uint, t uint) *big.Rat {
	var (
		sum big.Rat
		tmp big.Rat
		q   = int64(t / n)
		res = t % n
	)
	//
	for i := range rows {
		b := math.Binomial(q+int64(r)-1-int64(i), q)
		tmp.Mul(&rows[i][res], b)
		sum.Add(&sum, &tmp)
	}
	//
	return &sum
}
