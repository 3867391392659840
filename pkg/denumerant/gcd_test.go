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

	"github.com/consensys/go-denumerant/pkg/util/poly"
)

func Test_DivMod_01(t *testing.T) {
	// x^2+x+1 == x*(x+1) + 1
	q, rem := divmod(poly.FromInt64s(1, 1, 1), poly.FromInt64s(1, 1))
	//
	assert.True(t, q.Equal(poly.FromInt64s(0, 1)), "quotient %s", q.String())
	assert.True(t, rem.Equal(poly.One()), "remainder %s", rem.String())
}

func Test_DivMod_02(t *testing.T) {
	// Round trip with rational coefficients.
	num := poly.New(big.NewRat(1, 2), big.NewRat(3, 4), big.NewRat(0, 1), big.NewRat(-2, 5))
	den := poly.FromInt64s(1, 0, -1)
	q, rem := divmod(num, den)
	//
	assert.True(t, rem.Degree() < den.Degree())
	assert.True(t, q.Mul(den).Add(rem).Equal(num))
}

func Test_DivMod_03(t *testing.T) {
	// Dividend of smaller degree is its own remainder.
	q, rem := divmod(poly.FromInt64s(1, 1), poly.FromInt64s(1, 1, 1))
	//
	assert.True(t, q.IsZero())
	assert.True(t, rem.Equal(poly.FromInt64s(1, 1)))
}

func Test_ModInverseProduct_01(t *testing.T) {
	// Inverse of (1-x) modulo 1+x+x^2 is (2+x)/3.
	u := modInverseProduct(poly.One(), poly.FromInt64s(1, -1), poly.FromInt64s(1, 1, 1))
	expected := poly.New(big.NewRat(2, 3), big.NewRat(1, 3))
	//
	assert.True(t, u.Equal(expected), "got %s", u.String())
}

func Test_ModInverseProduct_02(t *testing.T) {
	// Inverse of 1+x+x^2 modulo (1-x)^2 is (2-x)/3.
	u := modInverseProduct(poly.One(), poly.FromInt64s(1, 1, 1), poly.FromInt64s(1, -2, 1))
	expected := poly.New(big.NewRat(2, 3), big.NewRat(-1, 3))
	//
	assert.True(t, u.Equal(expected), "got %s", u.String())
}

func Test_ModInverseProduct_03(t *testing.T) {
	// The result is a genuine modular inverse: u*s == 1 (mod a).
	var (
		s = poly.FromInt64s(1, -2, 1)
		a = poly.FromInt64s(1, 1, 1, 1, 1)
	)
	//
	u := modInverseProduct(poly.One(), s, a)
	//
	assert.True(t, polyMod(u.Mul(s), a).Equal(poly.One()))
}

func Test_ModInverseProduct_04(t *testing.T) {
	// Non-coprime arguments are a programming error.
	assert.Panics(t, func() {
		modInverseProduct(poly.One(), poly.FromInt64s(1, -1), poly.FromInt64s(1, -2, 1))
	})
}
