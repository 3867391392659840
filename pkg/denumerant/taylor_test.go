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

func Test_StrideDerivative_01(t *testing.T) {
	// D_3 maps x^5 + x^3 + x^2 + 1 to x^2 + 1: the monomials below the
	// stride vanish, x^3 contributes 1 and x^5 contributes 1*x^2.
	f := poly.FromInt64s(1, 0, 1, 1, 0, 1)
	d := strideDerivative(f, 3)
	//
	assert.True(t, d.Equal(poly.FromInt64s(1, 0, 1)), "got %s", d.String())
}

func Test_StrideDerivative_02(t *testing.T) {
	// x^7 with stride 3 contributes floor(7/3)*x^4.
	d := strideDerivative(poly.Monomial(big.NewRat(1, 1), 7), 3)
	//
	assert.True(t, d.Equal(poly.FromInt64s(0, 0, 0, 0, 2)), "got %s", d.String())
}

func Test_StrideDerivative_03(t *testing.T) {
	// Polynomials below the stride vanish entirely.
	assert.True(t, strideDerivative(poly.FromInt64s(1, 2), 3).IsZero())
}

func Test_TaylorRows_01(t *testing.T) {
	// (1-x^2)/3 with stride 3 has a single row of residue coefficients.
	f := poly.New(big.NewRat(1, 3), big.NewRat(0, 1), big.NewRat(-1, 3))
	rows := taylorRows(f, 3)
	//
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0][0].Cmp(big.NewRat(1, 3)))
	assert.Zero(t, rows[0][1].Cmp(big.NewRat(0, 1)))
	assert.Zero(t, rows[0][2].Cmp(big.NewRat(-1, 3)))
}

func Test_TaylorRows_02(t *testing.T) {
	// Degree five with stride three yields two rows, and the second row
	// carries the (-1)^1/1! scale of the expansion.
	f := poly.FromInt64s(0, 0, 0, 0, 0, 6)
	rows := taylorRows(f, 3)
	//
	require.Len(t, rows, 2)
	// x^5 == x^2 (mod 1-x^3)
	assert.Zero(t, rows[0][2].Cmp(big.NewRat(6, 1)))
	// D_3(6x^5) == 6*floor(5/3)*x^2, scaled by -1
	assert.Zero(t, rows[1][2].Cmp(big.NewRat(-6, 1)))
}

func Test_TaylorRows_03(t *testing.T) {
	// The zero numerator has no rows and contributes nothing.
	assert.Empty(t, taylorRows(poly.Zero(), 3))
	//
	sum := periodicSum(nil, 3, 1, 7)
	assert.Zero(t, sum.Sign())
}

func Test_PeriodicSum_01(t *testing.T) {
	// A single row with multiplicity one reduces to a lookup by residue.
	rows := [][]big.Rat{{*big.NewRat(1, 3), *big.NewRat(0, 1), *big.NewRat(-1, 3)}}
	//
	for i := uint(0); i < 9; i++ {
		expected := &rows[0][i%3]
		assert.Zero(t, periodicSum(rows, 3, 1, i).Cmp(expected), "t=%d", i)
	}
}
