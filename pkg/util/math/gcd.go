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

// Gcd computes the greatest common divisor of two unsigned integers using the
// Euclidean algorithm, with Gcd(a,0) = a.
func Gcd(a uint, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// Coprime checks whether two unsigned integers share no common factor greater
// than one.
func Coprime(a uint, b uint) bool {
	return Gcd(a, b) == 1
}
