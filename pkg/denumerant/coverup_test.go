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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-denumerant/pkg/util/poly"
)

func Test_CoverUp_01(t *testing.T) {
	// 1 / [(1-x)^2 (1+x+x^2)] splits into (2-x)/3 and (1+x)/3.
	terms, err := CoverUpDecompose(poly.One(), []Element{{3, 1}}, 1)
	require.NoError(t, err)
	require.Len(t, terms, 2)
	//
	assert.True(t, terms[0].Numerator.Equal(poly.New(big.NewRat(2, 3), big.NewRat(-1, 3))),
		"pole numerator %s", terms[0].Numerator.String())
	assert.True(t, terms[1].Numerator.Equal(poly.New(big.NewRat(1, 3), big.NewRat(1, 3))),
		"periodic numerator %s", terms[1].Numerator.String())
}

func Test_CoverUp_Degrees(t *testing.T) {
	p := poly.FromInt64s(1, 2, 1)
	terms, err := CoverUpDecompose(p, []Element{{3, 2}, {5, 1}}, 1)
	require.NoError(t, err)
	//
	for _, term := range terms {
		assert.Less(t, term.Numerator.Degree(), term.Denominator.Expand().Degree())
	}
}

func Test_CoverUp_RoundTrip(t *testing.T) {
	// Summing the terms back over the common denominator reconstructs the
	// numerator exactly.
	inputs := []struct {
		p     poly.RatPoly
		elems []Element
		m1    uint
	}{
		{poly.One(), []Element{{3, 1}}, 1},
		{poly.FromInt64s(1, 1), []Element{{3, 1}, {5, 1}}, 0},
		{poly.FromInt64s(2, 0, -1), []Element{{3, 2}}, 2},
		{poly.New(big.NewRat(1, 2), big.NewRat(1, 3)), []Element{{4, 1}, {9, 1}}, 1},
	}
	//
	for _, input := range inputs {
		terms, err := CoverUpDecompose(input.p, input.elems, input.m1)
		require.NoError(t, err)
		//
		assert.True(t, Recombine(terms).Equal(input.p),
			"round trip failed for %s", input.p.String())
	}
}

func Test_CoverUp_InvalidFactor(t *testing.T) {
	_, err := CoverUpDecompose(poly.One(), []Element{{1, 1}}, 0)
	//
	var verr *ValidationError
	//
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidFactor, verr.Kind)
}

func Test_CoverUp_NonCoprime(t *testing.T) {
	_, err := CoverUpDecompose(poly.One(), []Element{{4, 1}, {6, 1}}, 0)
	//
	var verr *ValidationError
	//
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, NonCoprimeFactors, verr.Kind)
}
