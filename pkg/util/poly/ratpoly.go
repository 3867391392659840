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
package poly

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrNegativeExponent signals that polynomial exponentiation was requested
// with a negative exponent, which has no meaning in this ring.
var ErrNegativeExponent = errors.New("negative exponent")

// RatPoly is a dense univariate polynomial with exact rational coefficients,
// where the ith coefficient gives the coefficient of x^i.  RatPoly values are
// immutable: every arithmetic operation returns a fresh polynomial, and
// coefficients are always copied on the way in and out.  Trailing zero
// coefficients are permitted in the representation; Degree always reports the
// highest genuinely non-zero term.
type RatPoly struct {
	coeffs []big.Rat
}

// New constructs a polynomial from the given coefficients, where the ith
// coefficient gives the coefficient of x^i.  The coefficients are copied.
func New(coeffs ...*big.Rat) RatPoly {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].Set(c)
	}
	//
	return RatPoly{ncoeffs}
}

// Constant constructs the degree-zero polynomial with the given value.
func Constant(c *big.Rat) RatPoly {
	return New(c)
}

// Monomial constructs the polynomial c * x^k.
func Monomial(c *big.Rat, k uint) RatPoly {
	ncoeffs := make([]big.Rat, k+1)
	ncoeffs[k].Set(c)
	//
	return RatPoly{ncoeffs}
}

// FromInt64s constructs a polynomial from integer coefficients, where the ith
// value gives the coefficient of x^i.
func FromInt64s(coeffs ...int64) RatPoly {
	ncoeffs := make([]big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i].SetInt64(c)
	}
	//
	return RatPoly{ncoeffs}
}

// Zero constructs the zero polynomial.
func Zero() RatPoly {
	return RatPoly{nil}
}

// One constructs the constant polynomial 1.
func One() RatPoly {
	return FromInt64s(1)
}

// Degree returns the exponent of the highest non-zero term, or -1 for the
// zero polynomial.
func (p RatPoly) Degree() int {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i].Sign() != 0 {
			return i
		}
	}
	//
	return -1
}

// IsZero checks whether this is the zero polynomial.
func (p RatPoly) IsZero() bool {
	return p.Degree() < 0
}

// Coefficient returns a copy of the coefficient of x^k, which is zero for any
// k beyond the representation.
func (p RatPoly) Coefficient(k uint) *big.Rat {
	var c big.Rat
	//
	if int(k) < len(p.coeffs) {
		c.Set(&p.coeffs[k])
	}
	//
	return &c
}

// Add returns the sum of this polynomial and another.
func (p RatPoly) Add(other RatPoly) RatPoly {
	ncoeffs := make([]big.Rat, max(len(p.coeffs), len(other.coeffs)))
	//
	for i := range ncoeffs {
		if i < len(p.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &p.coeffs[i])
		}
		//
		if i < len(other.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &other.coeffs[i])
		}
	}
	//
	return RatPoly{ncoeffs}
}

// Sub returns the difference of this polynomial and another.
func (p RatPoly) Sub(other RatPoly) RatPoly {
	ncoeffs := make([]big.Rat, max(len(p.coeffs), len(other.coeffs)))
	//
	for i := range ncoeffs {
		if i < len(p.coeffs) {
			ncoeffs[i].Add(&ncoeffs[i], &p.coeffs[i])
		}
		//
		if i < len(other.coeffs) {
			ncoeffs[i].Sub(&ncoeffs[i], &other.coeffs[i])
		}
	}
	//
	return RatPoly{ncoeffs}
}

// Mul returns the product of this polynomial and another, using the naive
// convolution (degrees in this pipeline are small).
func (p RatPoly) Mul(other RatPoly) RatPoly {
	var (
		dp = p.Degree()
		dq = other.Degree()
	)
	// Product with zero is zero.
	if dp < 0 || dq < 0 {
		return Zero()
	}
	//
	var (
		ncoeffs = make([]big.Rat, dp+dq+1)
		tmp     big.Rat
	)
	//
	for i := 0; i <= dp; i++ {
		if p.coeffs[i].Sign() == 0 {
			continue
		}
		//
		for j := 0; j <= dq; j++ {
			tmp.Mul(&p.coeffs[i], &other.coeffs[j])
			ncoeffs[i+j].Add(&ncoeffs[i+j], &tmp)
		}
	}
	//
	return RatPoly{ncoeffs}
}

// Scale returns this polynomial with every coefficient multiplied by a scalar.
func (p RatPoly) Scale(c *big.Rat) RatPoly {
	ncoeffs := make([]big.Rat, len(p.coeffs))
	//
	for i := range p.coeffs {
		ncoeffs[i].Mul(&p.coeffs[i], c)
	}
	//
	return RatPoly{ncoeffs}
}

// Pow returns this polynomial raised to the given exponent, or
// ErrNegativeExponent when the exponent is negative.
func (p RatPoly) Pow(exp int) (RatPoly, error) {
	if exp < 0 {
		return Zero(), ErrNegativeExponent
	}
	//
	result := One()
	//
	for i := 0; i < exp; i++ {
		result = result.Mul(p)
	}
	//
	return result, nil
}

// Eval evaluates this polynomial at the given point using Horner's scheme.
func (p RatPoly) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, &p.coeffs[i])
	}
	//
	return acc
}

// DivLinear divides this polynomial exactly by (1-x), returning the quotient
// and the (scalar) remainder.  That is, p = q*(1-x) + rem where rem has
// degree zero.  This is the only division the extraction of basis
// coefficients requires.
func (p RatPoly) DivLinear() (RatPoly, *big.Rat) {
	var (
		d   = p.Degree()
		rem big.Rat
	)
	//
	if d <= 0 {
		// Scalar dividend is its own remainder.
		rem.Set(p.Coefficient(0))
		return Zero(), &rem
	}
	// Coefficients of q satisfy a_k = q_k - q_{k-1}, hence q_{d-1} = -a_d and
	// q_{k-1} = q_k - a_k working downwards; the remainder is a_0 - q_0.
	ncoeffs := make([]big.Rat, d)
	ncoeffs[d-1].Neg(&p.coeffs[d])
	//
	for k := d - 1; k >= 1; k-- {
		ncoeffs[k-1].Sub(&ncoeffs[k], &p.coeffs[k])
	}
	//
	rem.Sub(&p.coeffs[0], &ncoeffs[0])
	//
	return RatPoly{ncoeffs}, &rem
}

// Equal checks whether two polynomials have identical coefficients, ignoring
// any trailing zeros in either representation.
func (p RatPoly) Equal(other RatPoly) bool {
	if p.Degree() != other.Degree() {
		return false
	}
	//
	for i := 0; i <= p.Degree(); i++ {
		if p.coeffs[i].Cmp(&other.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// String constructs a human-readable rendition of this polynomial, listing
// terms from the constant upwards (e.g. "2/3 - 1/3*x + x^2").
func (p RatPoly) String() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	if p.IsZero() {
		return "0"
	}
	//
	for k := 0; k <= p.Degree(); k++ {
		c := &p.coeffs[k]
		if c.Sign() == 0 {
			continue
		}
		// Separator and sign
		switch {
		case first && c.Sign() < 0:
			builder.WriteString("-")
		case !first && c.Sign() < 0:
			builder.WriteString(" - ")
		case !first:
			builder.WriteString(" + ")
		}
		//
		first = false
		//
		var abs big.Rat
		//
		abs.Abs(c)
		// Omit unit coefficients on non-constant terms.
		if k == 0 || abs.Cmp(big.NewRat(1, 1)) != 0 {
			builder.WriteString(abs.RatString())
			//
			if k > 0 {
				builder.WriteString("*")
			}
		}
		//
		switch {
		case k == 1:
			builder.WriteString("x")
		case k > 1:
			builder.WriteString("x^")
			builder.WriteString(strconv.Itoa(k))
		}
	}
	//
	return builder.String()
}
