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

	"github.com/grailbio/denovo/genotype"
)

// SomaticProb returns P(soma | truth) for one chromosome: the probability
// that a chromosome whose true nucleotide is truth is observed in the
// somatic state soma.  For every truth the four values sum to 1.
func SomaticProb(soma, truth genotype.Nt, rate float64) float64 {
	return MutateProb(soma, truth, rate)
}

// SomaGivenGeno returns the 16x16 linear-domain conditional
// P(somatic genotype | true genotype), the outer product of the
// per-chromosome somatic kernel across both chromosome positions.  Every
// column (fixed true genotype) sums to 1 over the somatic axis.
func SomaGivenGeno(rate float64) (cond PairTensor) {
	kernel := mutationKernel(rate)
	for s := range cond {
		soma := genotype.Genotype(s)
		for g := range cond[s] {
			truth := genotype.Genotype(g)
			cond[s][g] = kernel[soma.First()][truth.First()] *
				kernel[soma.Second()][truth.Second()]
		}
	}
	return cond
}

// GenoMarginal collapses the log-domain parent-pair prior to a single
// parent's genotype distribution by summing out the mother axis in linear
// domain.
func GenoMarginal(prior *PairTensor) (geno GenoVector) {
	for m := range prior {
		for f, lp := range prior[m] {
			geno[f] += math.Exp(lp)
		}
	}
	return geno
}

// SomaAndGeno forms the linear-domain joint P(somatic, true genotype) by
// scaling each column of the somatic conditional by the genotype marginal.
// All 256 entries sum to 1.
func SomaAndGeno(geno GenoVector, somaGivenGeno *PairTensor) (joint PairTensor) {
	for s := range joint {
		for g := range joint[s] {
			joint[s][g] = geno[g] * somaGivenGeno[s][g]
		}
	}
	return joint
}

// SomaMarginal sums the soma-and-genotype joint over the true-genotype
// axis, leaving the marginal distribution of the somatic genotype.
func SomaMarginal(joint *PairTensor) (soma GenoVector) {
	for s := range joint {
		for _, v := range joint[s] {
			soma[s] += v
		}
	}
	return soma
}
