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
	"fmt"

	"github.com/consensys/go-denumerant/pkg/util/math"
	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// Element describes one periodic entry of the denominator, contributing the
// factor (1-x^n)^r to the generating function.  Valid elements have n >= 2;
// across all elements of one query the n values must be pairwise coprime.
type Element struct {
	// N is the stride of this factor.
	N uint
	// R is the multiplicity of this factor.
	R uint
}

// Factor is one polynomial appearing as a power in the denominator of the
// generating function.  Exactly one pole factor (1-x)^m is always present;
// each Element contributes a periodic factor (1+x+...+x^{n-1})^r.
type Factor struct {
	// base polynomial of this factor.
	base poly.RatPoly
	// mult is the power to which the base is raised.
	mult uint
	// stride of a periodic factor, or zero for the pole factor.
	stride uint
}

// NewPoleFactor constructs the pole factor (1-x)^m.
func NewPoleFactor(m uint) Factor {
	return Factor{oneMinusX(), m, 0}
}

// NewPeriodicFactor constructs the periodic factor (1+x+...+x^{n-1})^r.
func NewPeriodicFactor(n uint, r uint) Factor {
	return Factor{geometric(n), r, n}
}

// IsPole checks whether this is the pole factor (1-x)^m.
func (f Factor) IsPole() bool {
	return f.stride == 0
}

// Multiplicity returns the power to which this factor's base is raised.
func (f Factor) Multiplicity() uint {
	return f.mult
}

// Base returns the base polynomial of this factor.
func (f Factor) Base() poly.RatPoly {
	return f.base
}

// Expand computes the full power base^mult of this factor.
func (f Factor) Expand() poly.RatPoly {
	p, err := f.base.Pow(int(f.mult))
	// Unreachable since mult is unsigned.
	if err != nil {
		panic(err)
	}
	//
	return p
}

// String constructs a human-readable rendition of this factor, e.g.
// "(1 - x)^3" or "(1 + x + x^2)^2".
func (f Factor) String() string {
	return fmt.Sprintf("(%s)^%d", f.base.String(), f.mult)
}

// validateElements rejects any element with a stride below two, and any pair
// of elements whose strides share a common factor.  This runs before any
// decomposition work, so a failing query produces no partial result.
func validateElements(elems []Element) error {
	for i, e := range elems {
		if e.N < 2 {
			return errInvalidFactor(e.N)
		}
		//
		for _, f := range elems[:i] {
			if !math.Coprime(e.N, f.N) {
				return errNonCoprime(f.N, e.N)
			}
		}
	}
	//
	return nil
}

// uniformMultiplicities checks whether all elements carry the same
// multiplicity, as the generalized FDS output requires.
func uniformMultiplicities(elems []Element) bool {
	if len(elems) == 0 {
		return true
	}
	//
	for _, e := range elems[1:] {
		if e.R != elems[0].R {
			return false
		}
	}
	//
	return true
}

// oneMinusX constructs the linear polynomial 1-x.
func oneMinusX() poly.RatPoly {
	return poly.FromInt64s(1, -1)
}

// oneMinusXPow constructs the polynomial 1-x^b.
func oneMinusXPow(b uint) poly.RatPoly {
	coeffs := make([]int64, b+1)
	coeffs[0] = 1
	coeffs[b] = -1
	//
	return poly.FromInt64s(coeffs...)
}

// geometric constructs the polynomial 1+x+...+x^{n-1}.
func geometric(n uint) poly.RatPoly {
	coeffs := make([]int64, n)
	//
	for i := range coeffs {
		coeffs[i] = 1
	}
	//
	return poly.FromInt64s(coeffs...)
}
