// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package trio

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/grailbio/denovo/genotype"
)

// GenoVector is a distribution (or marginal) over the 16 genotypes.
type GenoVector [genotype.NumGenotype]float64

// PairTensor is a 16x16 tensor over two genotype axes.  Depending on the
// layer it holds linear probabilities or log-probabilities; see the
// producing function.
type PairTensor [genotype.NumGenotype][genotype.NumGenotype]float64

// TrioTensor is a 16x16x16 tensor over (mother, father, child) genotypes.
type TrioTensor [genotype.NumGenotype][genotype.NumGenotype][genotype.NumGenotype]float64

// Sum returns the sum of all entries.
func (v *GenoVector) Sum() float64 {
	return floats.Sum(v[:])
}

// Sum returns the sum of all entries.
func (t *PairTensor) Sum() (s float64) {
	for i := range t {
		s += floats.Sum(t[i][:])
	}
	return s
}

// ExpSum exponentiates a log-domain tensor entrywise and returns the sum.
func (t *PairTensor) ExpSum() (s float64) {
	for i := range t {
		for _, v := range t[i] {
			s += math.Exp(v)
		}
	}
	return s
}

// Sum returns the sum of all entries.
func (t *TrioTensor) Sum() (s float64) {
	for i := range t {
		for j := range t[i] {
			s += floats.Sum(t[i][j][:])
		}
	}
	return s
}

// String renders the tensor as a fixed-width grid with genotype row and
// column order, for diagnosing modeling bugs.
func (t *PairTensor) String() (r string) {
	maxLength := 0
	for i := range t {
		for _, v := range t[i] {
			if l := len(strconv.FormatFloat(v, 'g', 6, 64)); l > maxLength {
				maxLength = l
			}
		}
	}

	lines := []string{"\n"}
	for i := range t {
		var parts []string
		for _, v := range t[i] {
			parts = append(parts, pad(strconv.FormatFloat(v, 'g', 6, 64), maxLength))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
