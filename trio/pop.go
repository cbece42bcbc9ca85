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

	"github.com/pkg/errors"

	"github.com/grailbio/denovo/genotype"
	"github.com/grailbio/denovo/pdf"
)

// GenotypePrior returns the population distribution over a single
// individual's genotype.  An ancestral allele is drawn from freq, and each
// of the individual's two chromosome copies descends from it through the
// mutation kernel independently.  For rate < 3/4 homozygous genotypes
// carry strictly more mass than heterozygous ones.  The 16 entries sum
// to 1.
func GenotypePrior(rate float64, freq []float64) (GenoVector, error) {
	var p GenoVector
	if !validRate(rate) {
		return p, errors.Errorf("trio: mutation rate %v outside [0, 1]", rate)
	}
	if len(freq) != genotype.NumNt {
		return p, errors.Wrapf(pdf.ErrInvalidDistribution,
			"trio: want %d nucleotide frequencies, got %d", genotype.NumNt, len(freq))
	}
	if err := pdf.CheckFreq(freq); err != nil {
		return p, errors.Wrap(err, "trio: population layer")
	}
	kernel := mutationKernel(rate)
	for g := range p {
		gt := genotype.Genotype(g)
		first, second := int(gt.First()), int(gt.Second())
		for a := 0; a < genotype.NumNt; a++ {
			p[g] += freq[a] * kernel[first][a] * kernel[second][a]
		}
	}
	return p, nil
}

// PopulationPrior returns the 16x16 log-probability tensor over
// (mother genotype, father genotype).  The two parents are drawn
// independently from GenotypePrior, so the tensor is symmetric under
// swapping the mother and father axes and its 256 exponentiated entries
// sum to 1.
func PopulationPrior(rate float64, freq []float64) (PairTensor, error) {
	var prior PairTensor
	p, err := GenotypePrior(rate, freq)
	if err != nil {
		return prior, err
	}
	for m := range prior {
		for f := range prior[m] {
			prior[m][f] = math.Log(p[m]) + math.Log(p[f])
		}
	}
	return prior, nil
}
