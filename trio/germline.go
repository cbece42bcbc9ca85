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

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"

	"github.com/grailbio/denovo/genotype"
)

// transmitProb returns the probability that a parent transmits the given
// allele: either of the parent's two chromosome copies is picked with
// probability 1/2 (the two terms collapse into a factor of 2 when the
// parent is homozygous), and the picked copy passes through the mutation
// kernel.  For every parent genotype the four allele probabilities sum
// to 1.
func transmitProb(allele genotype.Nt, parent genotype.Genotype, rate float64) float64 {
	return 0.5*MutateProb(allele, parent.First(), rate) +
		0.5*MutateProb(allele, parent.Second(), rate)
}

// GermlineProb returns P(child | mother, father) for one germline
// transmission: the child's first chromosome is inherited from the mother
// and its second from the father, independently.  For every fixed parent
// pair the 16 child probabilities sum to 1; with rate 0 the distribution is
// a point mass on the purely Mendelian outcomes.
func GermlineProb(child, mother, father genotype.Genotype, rate float64) float64 {
	return transmitProb(child.First(), mother, rate) *
		transmitProb(child.Second(), father, rate)
}

// JointGermline contracts the log-domain parent-pair prior with the
// germline conditional, producing the linear-domain joint
// P(mother, father, child).  All 4096 entries sum to 1.  Rows are
// independent, so the mother axis is filled in parallel.
func JointGermline(prior *PairTensor, rate float64) *TrioTensor {
	joint := new(TrioTensor)
	err := traverse.Each(genotype.NumGenotype, func(m int) error {
		for f := 0; f < genotype.NumGenotype; f++ {
			parent := math.Exp(prior[m][f])
			for c := 0; c < genotype.NumGenotype; c++ {
				joint[m][f][c] = parent * GermlineProb(
					genotype.Genotype(c), genotype.Genotype(m), genotype.Genotype(f), rate)
			}
		}
		return nil
	})
	if err != nil {
		// The closure never fails, so traverse cannot either.
		log.Panicf("germline joint: %v", err)
	}
	return joint
}
