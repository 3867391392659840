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
)

// ErrorKind distinguishes the kinds of input validation failure which can
// arise before any decomposition work begins.
type ErrorKind int

const (
	// NonCoprimeFactors indicates two periodic factor strides share a common
	// factor greater than one.
	NonCoprimeFactors ErrorKind = iota
	// InvalidFactor indicates a periodic factor stride below two.
	InvalidFactor
	// InconsistentMultiplicities indicates the generalized FDS output was
	// requested with unequal factor multiplicities.
	InconsistentMultiplicities
)

// ValidationError reports a rejected input.  Validation happens before any
// partial fraction work, so a failed call produces no partial result.
type ValidationError struct {
	// Kind of validation failure.
	Kind ErrorKind
	// Human-readable diagnostic.
	Msg string
}

// Error implementation for the error interface.
func (e *ValidationError) Error() string {
	return e.Msg
}

func errNonCoprime(n1 uint, n2 uint) error {
	return &ValidationError{NonCoprimeFactors,
		fmt.Sprintf("factor strides %d and %d are not coprime", n1, n2)}
}

func errInvalidFactor(n uint) error {
	return &ValidationError{InvalidFactor,
		fmt.Sprintf("factor stride %d is below the minimum of 2", n)}
}

func errInconsistentMultiplicities() error {
	return &ValidationError{InconsistentMultiplicities,
		"generalized FDS output requires all multiplicities to be equal"}
}
