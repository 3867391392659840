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
	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// Term pairs a numerator polynomial with the denominator factor underneath
// it.  The decomposition of a rational generating function is an ordered
// sequence of terms, one per factor, whose sum over the common denominator
// reconstructs the original numerator exactly.
type Term struct {
	// Numerator of this term.
	Numerator poly.RatPoly
	// Denominator factor of this term.
	Denominator Factor
}

// Decompose applies the extended cover-up method: given a numerator p and
// pairwise-coprime denominator factors d_0..d_k, it computes numerators
// f_0..f_k with deg(f_i) < deg(d_i) such that p/(d_0*...*d_k) is the sum of
// the f_i/d_i.  Each f_i is the unique residue of p * P_i^{-1} mod d_i,
// where P_i is the product of all other factors.  Coprimality of the factors
// must have been validated by the caller.
func Decompose(p poly.RatPoly, factors []Factor) []Term {
	terms := make([]Term, len(factors))
	//
	for i, f := range factors {
		cofactor := poly.One()
		//
		for j, g := range factors {
			if j != i {
				cofactor = cofactor.Mul(g.Expand())
			}
		}
		//
		terms[i] = Term{modInverseProduct(p, cofactor, f.Expand()), f}
	}
	//
	return terms
}

// CoverUpDecompose validates the denominator elements, builds the factor
// list for p(x) / [(1-x)^m * product of (1+x+...+x^{n_i-1})^{r_i}] with
// m = m1 + sum of the r_i, and returns its raw cover-up decomposition.  This
// is the programmatic face of the decompose diagnostic; the engine applies
// its own rescaling on top of it.
func CoverUpDecompose(p poly.RatPoly, elems []Element, m1 uint) ([]Term, error) {
	if err := validateElements(elems); err != nil {
		return nil, err
	}
	//
	m := m1
	for _, e := range elems {
		m += e.R
	}
	// Trivial denominator, nothing to decompose.
	if m == 0 {
		return []Term{{p, NewPoleFactor(0)}}, nil
	}
	//
	factors := make([]Factor, len(elems)+1)
	factors[0] = NewPoleFactor(m)
	//
	for i, e := range elems {
		factors[i+1] = NewPeriodicFactor(e.N, e.R)
	}
	//
	return Decompose(p, factors), nil
}

// Recombine sums a sequence of partial fraction terms back over their common
// denominator, returning the resulting numerator.  For a decomposition
// produced by Decompose this returns the original numerator, which makes it
// the round-trip oracle for the whole method.
func Recombine(terms []Term) poly.RatPoly {
	sum := poly.Zero()
	//
	for i, t := range terms {
		product := t.Numerator
		//
		for j, u := range terms {
			if j != i {
				product = product.Mul(u.Denominator.Expand())
			}
		}
		//
		sum = sum.Add(product)
	}
	//
	return sum
}
