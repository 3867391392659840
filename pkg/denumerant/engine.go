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
	"errors"
	"fmt"
	"math/big"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-denumerant/pkg/util"
	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// Part selects which portion of the quasi-polynomial closed form an
// evaluation returns.
type Part int

const (
	// PartFull selects the complete denumerant value, the sum of the
	// polynomial and periodic parts.
	PartFull Part = iota
	// PartPolynomial selects the polynomial (non-periodic) part only.
	PartPolynomial
	// PartPeriodic selects the sum of all periodic contributions.
	PartPeriodic
	// PartPeriodicList selects the per-factor periodic contributions as a
	// sequence; scalar evaluation rejects it, use EvaluateList.
	PartPeriodicList
	// PartGeneralizedFDS selects a derived output: the sum over periodic
	// factors of the leading Taylor coefficient at t's residue class.  It is
	// only defined when all multiplicities are equal.
	PartGeneralizedFDS
)

// String implementation for the Stringer interface.
func (p Part) String() string {
	switch p {
	case PartFull:
		return "full"
	case PartPolynomial:
		return "polynomial"
	case PartPeriodic:
		return "periodic"
	case PartPeriodicList:
		return "periodic-list"
	case PartGeneralizedFDS:
		return "generalized-fds"
	}
	//
	return "unknown"
}

// ParsePart converts a part name into the corresponding Part, accepting
// either hyphens or spaces as word separators.
func ParsePart(name string) (Part, error) {
	switch strings.ReplaceAll(strings.ToLower(name), " ", "-") {
	case "full":
		return PartFull, nil
	case "polynomial":
		return PartPolynomial, nil
	case "periodic":
		return PartPeriodic, nil
	case "periodic-list":
		return PartPeriodicList, nil
	case "generalized-fds":
		return PartGeneralizedFDS, nil
	}
	//
	return PartFull, fmt.Errorf("unknown part \"%s\"", name)
}

// periodicTable holds the precomputed Taylor expansion of one periodic
// factor: the stride n, the multiplicity r and the rows of residue-indexed
// coefficients.
type periodicTable struct {
	n    uint
	r    uint
	rows [][]big.Rat
}

// Query is the reusable precomputed form of a denumerant computation for a
// fixed numerator and denominator.  Construction performs validation, the
// cover-up decomposition and the Taylor expansions; evaluation at any t then
// only reads the precomputed tables.  A Query is immutable after
// construction and safe for concurrent evaluation.
type Query struct {
	// numerator of the generating function.
	numerator poly.RatPoly
	// m is the total pole multiplicity m1 + sum of element multiplicities.
	m uint
	// terms of the partial fraction decomposition, with periodic numerators
	// rescaled by (1-x)^r.
	terms []Term
	// basis coefficients of the pole numerator in the {(1-x)^j} basis.
	basis []big.Rat
	// periodics holds one Taylor table per periodic factor.
	periodics []periodicTable
}

// NewQuery validates the input and precomputes the partial fraction
// decomposition and Taylor tables for the generating function
// p(x) / [(1-x)^m * product of (1+x+...+x^{n_i-1})^{r_i}], where
// m = m1 + sum of the r_i.  A validation failure aborts before any
// decomposition work and yields no partial result.
func NewQuery(p poly.RatPoly, elems []Element, m1 uint) (*Query, error) {
	if err := validateElements(elems); err != nil {
		return nil, err
	}
	//
	stats := util.NewPerfStats()
	//
	m := m1
	for _, e := range elems {
		m += e.R
	}
	// With no factors at all the denominator is 1 and evaluation reads
	// coefficients of p directly.
	if m == 0 {
		return &Query{numerator: p}, nil
	}
	//
	terms, err := CoverUpDecompose(p, elems, m1)
	if err != nil {
		return nil, err
	}
	//
	basis := basisCoefficients(terms[0].Numerator)
	periodics := make([]periodicTable, len(elems))
	//
	for i, e := range elems {
		// Rescale numerator and denominator by (1-x)^r, normalising the
		// denominator to (1-x^n)^r.
		scale, err := oneMinusX().Pow(int(e.R))
		if err != nil {
			return nil, err
		}
		//
		rescaled := terms[i+1].Numerator.Mul(scale)
		terms[i+1] = Term{rescaled, terms[i+1].Denominator}
		periodics[i] = periodicTable{e.N, e.R, taylorRows(rescaled, e.N)}
	}
	//
	stats.Log(fmt.Sprintf("decomposition of %d factors", len(terms)))
	log.Debugf("pole multiplicity %d, %d basis coefficients", m, len(basis))
	//
	return &Query{p, m, terms, basis, periodics}, nil
}

// Evaluate computes the requested part of the denumerant at t.  The periodic
// list output is a sequence rather than a scalar and must be requested via
// EvaluateList.
func (q *Query) Evaluate(t uint, part Part) (*big.Rat, error) {
	switch part {
	case PartFull:
		var sum big.Rat
		//
		sum.Add(q.polynomialPart(t), q.periodicPart(t))
		//
		return &sum, nil
	case PartPolynomial:
		return q.polynomialPart(t), nil
	case PartPeriodic:
		return q.periodicPart(t), nil
	case PartGeneralizedFDS:
		return q.generalizedFDS(t)
	case PartPeriodicList:
		return nil, errors.New("periodic list output is a sequence, use EvaluateList")
	}
	//
	return nil, fmt.Errorf("unknown part %d", part)
}

// EvaluateList computes the periodic list output at t: element 0 is always
// zero, followed by the periodic contribution of each factor in order.
func (q *Query) EvaluateList(t uint) []*big.Rat {
	list := make([]*big.Rat, len(q.periodics)+1)
	list[0] = new(big.Rat)
	//
	for i, p := range q.periodics {
		list[i+1] = periodicSum(p.rows, p.n, p.r, t)
	}
	//
	return list
}

// Decomposition returns the partial fraction terms of this query, with
// periodic numerators in their rescaled (1-x^n)^r form.
func (q *Query) Decomposition() []Term {
	return q.terms
}

// polynomialPart evaluates the non-periodic part of the denumerant at t.
func (q *Query) polynomialPart(t uint) *big.Rat {
	// Trivial denominator, read the coefficient off directly.
	if q.m == 0 {
		return q.numerator.Coefficient(t)
	}
	//
	return polySum(q.basis, q.m, t)
}

// periodicPart evaluates the sum of all periodic contributions at t.
func (q *Query) periodicPart(t uint) *big.Rat {
	var sum big.Rat
	//
	for _, p := range q.periodics {
		sum.Add(&sum, periodicSum(p.rows, p.n, p.r, t))
	}
	//
	return &sum
}

// generalizedFDS evaluates the derived output formed by summing the leading
// Taylor coefficient of every periodic factor at t's residue class.  It
// requires all multiplicities to be equal.
func (q *Query) generalizedFDS(t uint) (*big.Rat, error) {
	var sum big.Rat
	//
	for _, p := range q.periodics {
		if p.r != q.periodics[0].r {
			return nil, errInconsistentMultiplicities()
		}
	}
	//
	for _, p := range q.periodics {
		if len(p.rows) > 0 {
			sum.Add(&sum, &p.rows[0][t%p.n])
		}
	}
	//
	return &sum, nil
}

// Compute is the one-shot entry point: it validates, decomposes and
// evaluates the requested part of the denumerant at t.  Callers evaluating
// many values of t should construct a Query once instead.
func Compute(t uint, p poly.RatPoly, elems []Element, m1 uint, part Part) (*big.Rat, error) {
	if part == PartGeneralizedFDS && !uniformMultiplicities(elems) {
		return nil, errInconsistentMultiplicities()
	}
	//
	query, err := NewQuery(p, elems, m1)
	if err != nil {
		return nil, err
	}
	//
	return query.Evaluate(t, part)
}

// ComputeList is the one-shot entry point for the periodic list output.
func ComputeList(t uint, p poly.RatPoly, elems []Element, m1 uint) ([]*big.Rat, error) {
	query, err := NewQuery(p, elems, m1)
	if err != nil {
		return nil, err
	}
	//
	return query.EvaluateList(t), nil
}
