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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/consensys/go-denumerant/pkg/denumerant"
	"github.com/consensys/go-denumerant/pkg/util/poly"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array flag, or panic if an error
// arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parseNumerator parses a comma-separated list of rational coefficients
// (constant term first) into a polynomial, e.g. "1,0,-1/2".
func parseNumerator(input string) (poly.RatPoly, error) {
	var coeffs []*big.Rat
	//
	for _, item := range strings.Split(input, ",") {
		var c big.Rat
		//
		if _, ok := c.SetString(strings.TrimSpace(item)); !ok {
			return poly.Zero(), fmt.Errorf("malformed coefficient \"%s\"", item)
		}
		//
		coeffs = append(coeffs, &c)
	}
	//
	return poly.New(coeffs...), nil
}

// parseElements parses factor descriptors of the form "n:r" (or "n" with an
// implied multiplicity of one) into denominator elements.
func parseElements(items []string) ([]denumerant.Element, error) {
	elems := make([]denumerant.Element, len(items))
	//
	for i, item := range items {
		var (
			n, r uint64 = 0, 1
			err  error
		)
		//
		split := strings.Split(item, ":")
		if len(split) > 2 {
			return nil, fmt.Errorf("malformed factor \"%s\"", item)
		}
		//
		if n, err = strconv.ParseUint(split[0], 10, 32); err != nil {
			return nil, fmt.Errorf("malformed factor \"%s\"", item)
		}
		//
		if len(split) == 2 {
			if r, err = strconv.ParseUint(split[1], 10, 32); err != nil || r == 0 {
				return nil, fmt.Errorf("malformed factor \"%s\"", item)
			}
		}
		//
		elems[i] = denumerant.Element{N: uint(n), R: uint(r)}
	}
	//
	return elems, nil
}
