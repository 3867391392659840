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

func Test_BasisCoefficients_01(t *testing.T) {
	// (2-x)/3 == 1/3 + 1/3*(1-x)
	coeffs := basisCoefficients(poly.New(big.NewRat(2, 3), big.NewRat(-1, 3)))
	//
	require.Len(t, coeffs, 2)
	assert.Zero(t, coeffs[0].Cmp(big.NewRat(1, 3)))
	assert.Zero(t, coeffs[1].Cmp(big.NewRat(1, 3)))
}

func Test_BasisCoefficients_02(t *testing.T) {
	// Reconstruct f from its basis coefficients.
	f := poly.FromInt64s(3, -2, 5, 1)
	coeffs := basisCoefficients(f)
	sum := poly.Zero()
	//
	for j := range coeffs {
		basis, err := poly.FromInt64s(1, -1).Pow(j)
		require.NoError(t, err)
		//
		sum = sum.Add(basis.Scale(&coeffs[j]))
	}
	//
	assert.True(t, sum.Equal(f), "got %s, expected %s", sum.String(), f.String())
}

func Test_PolySum_01(t *testing.T) {
	// Basis {1} with m == 1 gives the constant 1 at every t.
	coeffs := basisCoefficients(poly.One())
	//
	for i := uint(0); i < 5; i++ {
		assert.Zero(t, polySum(coeffs, 1, i).Cmp(big.NewRat(1, 1)))
	}
}

func Test_PolySum_02(t *testing.T) {
	// Basis {0,1} with m == 2: the coefficient of (1-x) contributes
	// C(t, t) == 1 at every t.
	coeffs := []big.Rat{*big.NewRat(0, 1), *big.NewRat(1, 1)}
	//
	for i := uint(0); i < 5; i++ {
		assert.Zero(t, polySum(coeffs, 2, i).Cmp(big.NewRat(1, 1)))
	}
}
