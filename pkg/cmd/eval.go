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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-denumerant/pkg/denumerant"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags]",
	Short: "evaluate a Sylvester denumerant exactly.",
	Long: `Evaluate the number of representations of t as a non-negative integer
	 combination of the given denominator elements, weighted by the numerator
	 polynomial, by decomposing the generating function into partial fractions
	 and reading off the quasi-polynomial closed form.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		t := GetUint(cmd, "t")
		m1 := GetUint(cmd, "m1")
		trace := GetFlag(cmd, "trace")
		//
		numerator, err := parseNumerator(GetString(cmd, "num"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		//
		elems, err := parseElements(GetStringArray(cmd, "factor"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		//
		part, err := denumerant.ParsePart(GetString(cmd, "part"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		//
		query, err := denumerant.NewQuery(numerator, elems, m1)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		if part == denumerant.PartPeriodicList {
			printTrace(query, trace)
			//
			for i, value := range query.EvaluateList(t) {
				fmt.Printf("%d: %s\n", i, value.RatString())
			}
			//
			return
		}
		//
		value, err := query.Evaluate(t, part)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		printTrace(query, trace)
		fmt.Println(value.RatString())
	},
}

// printTrace renders the decomposition and basis expansion when tracing is
// enabled.  This is a pure side effect on top of the computed value.
func printTrace(query *denumerant.Query, trace bool) {
	if trace {
		fmt.Println(query.FormatDecomposition())
		fmt.Printf("polynomial part basis: %s\n", query.FormatBasis())
	}
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Uint("t", 0, "target value to evaluate at")
	evalCmd.Flags().String("num", "1", "numerator coefficients, constant first (e.g. \"1,0,-1/2\")")
	evalCmd.Flags().StringArrayP("factor", "f", []string{}, "denominator element n:r for the factor (1-x^n)^r")
	evalCmd.Flags().Uint("m1", 0, "additional multiplicity of the pole at x=1")
	evalCmd.Flags().String("part", "full", "output part: full, polynomial, periodic, periodic-list or generalized-fds")
	evalCmd.Flags().Bool("trace", false, "print the partial fraction decomposition")
}
