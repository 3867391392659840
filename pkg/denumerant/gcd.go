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

	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// divmod performs polynomial long division over the rationals, returning the
// quotient and remainder such that num = q*den + rem with deg(rem) < deg(den).
// The divisor must be non-zero.
func divmod(num poly.RatPoly, den poly.RatPoly) (poly.RatPoly, poly.RatPoly) {
	var (
		dd = den.Degree()
		q  = poly.Zero()
	)
	//
	if dd < 0 {
		panic("division by zero polynomial")
	}
	//
	lead := den.Coefficient(uint(dd))
	rem := num
	//
	for rem.Degree() >= dd {
		var (
			dr = rem.Degree()
			c  big.Rat
		)
		// Eliminate the leading term of the remainder.
		c.Quo(rem.Coefficient(uint(dr)), lead)
		term := poly.Monomial(&c, uint(dr-dd))
		//
		q = q.Add(term)
		rem = rem.Sub(den.Mul(term))
	}
	//
	return q, rem
}

// polyMod returns the remainder of p on division by a.
func polyMod(p poly.RatPoly, a poly.RatPoly) poly.RatPoly {
	_, rem := divmod(p, a)
	//
	return rem
}

// modInverseProduct computes the unique representative of r * s^{-1} mod a
// with degree below deg(a), where s^{-1} is the Bezout coefficient of s
// modulo a.  This is the "eval" primitive of the extended cover-up method.
// The caller must have established that gcd(s,a) is a non-zero scalar;
// anything else is a programming error and panics.
func modInverseProduct(r poly.RatPoly, s poly.RatPoly, a poly.RatPoly) poly.RatPoly {
	var (
		r0, r1 = a, polyMod(s, a)
		u0, u1 = poly.Zero(), poly.One()
	)
	// Euclidean algorithm with back-substitution of the Bezout coefficient of
	// s, maintaining u_i*s = r_i (mod a).
	for r1.Degree() > 0 {
		q, rem := divmod(r0, r1)
		//
		r0, r1 = r1, rem
		u0, u1 = u1, u0.Sub(q.Mul(u1))
	}
	//
	if r1.IsZero() {
		panic("polynomials are not coprime")
	}
	// r1 is a non-zero scalar g with u1*s = g (mod a); normalise to 1.
	var g big.Rat
	//
	g.Inv(r1.Coefficient(0))
	u := u1.Scale(&g)
	//
	return polyMod(r.Mul(u), a)
}
