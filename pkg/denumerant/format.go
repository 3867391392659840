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
	"strings"

	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// FormatDecomposition renders a partial fraction decomposition as
// human-readable text, one fraction per term joined by " + ".  This is a
// pure display aid with no bearing on any computed value.
func FormatDecomposition(p poly.RatPoly, terms []Term) string {
	var (
		builder strings.Builder
		denom   strings.Builder
	)
	//
	for _, t := range terms {
		denom.WriteString(t.Denominator.String())
	}
	//
	fmt.Fprintf(&builder, "[%s] / %s =\n", p.String(), denom.String())
	//
	for i, t := range terms {
		if i != 0 {
			builder.WriteString(" + ")
		}
		//
		fmt.Fprintf(&builder, "[%s] / %s", t.Numerator.String(), t.Denominator.String())
	}
	//
	return builder.String()
}

// FormatDecomposition renders this query's decomposition with periodic
// denominators in their rescaled (1-x^n)^r form.
func (q *Query) FormatDecomposition() string {
	var builder strings.Builder
	//
	if q.m == 0 {
		return fmt.Sprintf("[%s] / 1", q.numerator.String())
	}
	//
	fmt.Fprintf(&builder, "[%s] / (1-x)^%d", q.numerator.String(), q.m)
	//
	for _, p := range q.periodics {
		fmt.Fprintf(&builder, "(1-x^%d)^%d", p.n, p.r)
	}
	//
	builder.WriteString(" =\n")
	//
	for i, t := range q.terms {
		if i != 0 {
			builder.WriteString(" + ")
		}
		//
		if i == 0 {
			fmt.Fprintf(&builder, "[%s] / (1-x)^%d", t.Numerator.String(), q.m)
		} else {
			p := q.periodics[i-1]
			fmt.Fprintf(&builder, "[%s] / (1-x^%d)^%d", t.Numerator.String(), p.n, p.r)
		}
	}
	//
	return builder.String()
}

// FormatBasis renders the pole numerator's expansion in the {(1-x)^j} basis,
// e.g. "1/3 + 1/3*(1-x)".
func (q *Query) FormatBasis() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	if len(q.basis) == 0 {
		return "0"
	}
	//
	for j := range q.basis {
		c := &q.basis[j]
		if c.Sign() == 0 {
			continue
		}
		//
		if !first {
			builder.WriteString(" + ")
		}
		//
		first = false
		//
		switch j {
		case 0:
			builder.WriteString(c.RatString())
		case 1:
			fmt.Fprintf(&builder, "%s*(1-x)", c.RatString())
		default:
			fmt.Fprintf(&builder, "%s*(1-x)^%d", c.RatString(), j)
		}
	}
	//
	if first {
		return "0"
	}
	//
	return builder.String()
}
