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
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-denumerant/pkg/denumerant"
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose [flags]",
	Short: "print the q-partial fraction decomposition of a generating function.",
	Long: `Decompose the generating function determined by the numerator and the
	 denominator elements into partial fractions via the extended cover-up
	 method, and print the result.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
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
		terms, err := denumerant.CoverUpDecompose(numerator, elems, GetUint(cmd, "m1"))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		//
		printWrapped(denumerant.FormatDecomposition(numerator, terms))
		//
		if GetFlag(cmd, "check") {
			if denumerant.Recombine(terms).Equal(numerator) {
				fmt.Println("reconstruction: ok")
			} else {
				fmt.Fprintln(os.Stderr, "reconstruction: FAILED")
				os.Exit(1)
			}
		}
	},
}

// printWrapped prints text wrapped to the terminal width, breaking long
// lines at spaces.  When stdout is not a terminal the text is printed as is.
func printWrapped(text string) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		fmt.Println(text)
		return
	}
	//
	for _, line := range strings.Split(text, "\n") {
		for len(line) > width {
			cut := strings.LastIndex(line[:width], " ")
			if cut <= 0 {
				break
			}
			//
			fmt.Println(line[:cut])
			line = "  " + line[cut+1:]
		}
		//
		fmt.Println(line)
	}
}

func init() {
	rootCmd.AddCommand(decomposeCmd)
	decomposeCmd.Flags().String("num", "1", "numerator coefficients, constant first (e.g. \"1,0,-1/2\")")
	decomposeCmd.Flags().StringArrayP("factor", "f", []string{}, "denominator element n:r for the factor (1-x^n)^r")
	decomposeCmd.Flags().Uint("m1", 0, "additional multiplicity of the pole at x=1")
	decomposeCmd.Flags().Bool("check", false, "verify the decomposition reconstructs the numerator")
}
