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
package math

import (
	"math/big"
)

// Binomial computes the binomial coefficient C(n,k) exactly, following the
// standard combinatorial convention that C(n,k) = 0 whenever n < 0, k < 0 or
// k > n.
func Binomial(n int64, k int64) *big.Rat {
	var (
		num big.Int
		res big.Rat
	)
	//
	if n < 0 || k < 0 || k > n {
		return &res
	}
	//
	num.Binomial(n, k)
	//
	return res.SetInt(&num)
}
