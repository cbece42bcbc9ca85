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
	"github.com/grailbio/denovo/genotype"
)

// This file contains the single-chromosome mutation kernel shared by the
// population, germline and somatic layers.

// MutateProb returns P(to | from) for one chromosome under a symmetric
// mutation kernel: the nucleotide is kept with probability 1-rate and moves
// to each of the other three symbols with probability rate/3.  (We assume
// substitutions are evenly distributed among the three alternatives; a
// transition/transversion-weighted kernel would slot in here.)  For every
// from, the four values sum to 1.
func MutateProb(to, from genotype.Nt, rate float64) float64 {
	if to == from {
		return 1 - rate
	}
	return rate / 3
}

// mutationKernel precomputes MutateProb as a table, kernel[to][from].
func mutationKernel(rate float64) (kernel [genotype.NumNt][genotype.NumNt]float64) {
	for to := range kernel {
		for from := range kernel[to] {
			kernel[to][from] = MutateProb(genotype.Nt(to), genotype.Nt(from), rate)
		}
	}
	return kernel
}

func validRate(rate float64) bool {
	return rate >= 0 && rate <= 1
}
