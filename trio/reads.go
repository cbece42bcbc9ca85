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

// AlphaTensor holds one Dirichlet concentration vector per somatic genotype.
type AlphaTensor [genotype.NumGenotype][genotype.NumNt]float64

// ReadAlphas returns the Dirichlet concentration parameters of the
// sequencing-error layer.  Each of the genotype's two chromosomes
// contributes half the total concentration, sending weight 1-errRate to its
// own base and errRate/3 to each of the other three; dispersion scales the
// total concentration (smaller values model noisier, more overdispersed
// read counts).  errRate must lie strictly inside (0, 1) so that every
// concentration stays positive.
func ReadAlphas(errRate, dispersion float64) (AlphaTensor, error) {
	var alphas AlphaTensor
	if !(errRate > 0 && errRate < 1) {
		return alphas, errors.Wrapf(pdf.ErrInvalidDistribution,
			"trio: sequencing error rate %v outside (0, 1)", errRate)
	}
	if !(dispersion > 0) || math.IsInf(dispersion, 0) {
		return alphas, errors.Wrapf(pdf.ErrInvalidDistribution,
			"trio: dispersion %v, want a positive finite value", dispersion)
	}
	kernel := mutationKernel(errRate)
	for g := range alphas {
		gt := genotype.Genotype(g)
		for k := 0; k < genotype.NumNt; k++ {
			alphas[g][k] = 0.5 * dispersion *
				(kernel[k][gt.First()] + kernel[k][gt.Second()])
		}
	}
	return alphas, nil
}

// ReadsGivenSoma builds the linear-domain conditional
// P(read counts | somatic genotype) for read strings of the given length,
// one row per count vector in genotype.EnumCounts order.  Every column
// (fixed somatic genotype) sums to 1 over the rows.
func ReadsGivenSoma(length int, alphas *AlphaTensor) ([][genotype.NumGenotype]float64, []genotype.Counts, error) {
	countsList, err := genotype.EnumCounts(length)
	if err != nil {
		return nil, nil, err
	}
	cond := make([][genotype.NumGenotype]float64, len(countsList))
	for i, counts := range countsList {
		for g := 0; g < genotype.NumGenotype; g++ {
			lp, err := pdf.DirichletMultinomial(alphas[g][:], counts)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "trio: read layer, genotype %v, counts %v",
					genotype.Genotype(g), counts)
			}
			cond[i][g] = math.Exp(lp)
		}
	}
	return cond, countsList, nil
}

// ReadProbs contracts the read conditional with the somatic genotype
// marginal, producing the unconditional probability of each count vector.
// The entries sum to 1.
func ReadProbs(soma GenoVector, cond [][genotype.NumGenotype]float64) []float64 {
	probs := make([]float64, len(cond))
	for i := range cond {
		for g, v := range cond[i] {
			probs[i] += soma[g] * v
		}
	}
	return probs
}
