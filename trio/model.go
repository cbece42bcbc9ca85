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
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/grailbio/denovo/genotype"
	"github.com/grailbio/denovo/pdf"
)

// Model bundles the parameters of the four-layer trio model.
type Model struct {
	// MutaRate is the per-chromosome germline mutation rate.
	MutaRate float64
	// SomaRate is the per-chromosome somatic mutation rate.
	SomaRate float64
	// SeqErrRate is the per-base sequencing error rate of the read layer.
	SeqErrRate float64
	// Dispersion scales the Dirichlet concentrations of the read layer.
	Dispersion float64
	// NtFreq is the population nucleotide frequency vector, in the
	// genotype.Nt order.
	NtFreq []float64
}

// DefaultModel returns model parameters in the range typical for human
// whole-genome trio data.
func DefaultModel() Model {
	return Model{
		MutaRate:   0.001,
		SomaRate:   0.001,
		SeqErrRate: 0.005,
		Dispersion: 10,
		NtFreq:     []float64{0.25, 0.25, 0.25, 0.25},
	}
}

func (m Model) validate() error {
	if !validRate(m.MutaRate) {
		return errors.Errorf("trio: germline rate %v outside [0, 1]", m.MutaRate)
	}
	if !validRate(m.SomaRate) {
		return errors.Errorf("trio: somatic rate %v outside [0, 1]", m.SomaRate)
	}
	return pdf.CheckFreq(m.NtFreq)
}

// somaMarginal runs layers 1 through 3 and returns the marginal
// distribution of the child-facing somatic genotype.
func (m Model) somaMarginal() (GenoVector, error) {
	var soma GenoVector
	prior, err := PopulationPrior(m.MutaRate, m.NtFreq)
	if err != nil {
		return soma, err
	}
	geno := GenoMarginal(&prior)
	somaGivenGeno := SomaGivenGeno(m.SomaRate)
	joint := SomaAndGeno(geno, &somaGivenGeno)
	return SomaMarginal(&joint), nil
}

// ReadProbs runs all four layers and returns the probability of every
// read-count vector of the given length, along with the vectors themselves
// in matching order.
func (m Model) ReadProbs(length int) ([]float64, []genotype.Counts, error) {
	if err := m.validate(); err != nil {
		return nil, nil, err
	}
	soma, err := m.somaMarginal()
	if err != nil {
		return nil, nil, err
	}
	alphas, err := ReadAlphas(m.SeqErrRate, m.Dispersion)
	if err != nil {
		return nil, nil, err
	}
	cond, countsList, err := ReadsGivenSoma(length, &alphas)
	if err != nil {
		return nil, nil, err
	}
	return ReadProbs(soma, cond), countsList, nil
}

// TrioProb returns the log-probability of one observed read-count vector
// under the full model.  The contraction over the 16 somatic genotypes is
// done in log domain.
func (m Model) TrioProb(counts genotype.Counts) (float64, error) {
	if err := m.validate(); err != nil {
		return 0, err
	}
	soma, err := m.somaMarginal()
	if err != nil {
		return 0, err
	}
	alphas, err := ReadAlphas(m.SeqErrRate, m.Dispersion)
	if err != nil {
		return 0, err
	}
	terms := make([]float64, genotype.NumGenotype)
	for g := range terms {
		lp, err := pdf.DirichletMultinomial(alphas[g][:], counts)
		if err != nil {
			return 0, errors.Wrapf(err, "trio: genotype %v", genotype.Genotype(g))
		}
		terms[g] = math.Log(soma[g]) + lp
	}
	lp := floats.LogSumExp(terms)
	if math.IsNaN(lp) || math.IsInf(lp, 1) {
		return 0, errors.Wrapf(pdf.ErrNumericInstability, "trio: counts %v", counts)
	}
	return lp, nil
}

// SelfCheck recomputes every layer for read strings of the given length and
// verifies its normalization invariant.  A violation is logged with the
// offending layer and returned as an error; it indicates a modeling bug,
// not bad input.
func (m Model) SelfCheck(length int) error {
	if err := m.validate(); err != nil {
		return err
	}
	prior, err := PopulationPrior(m.MutaRate, m.NtFreq)
	if err != nil {
		return err
	}
	if s := prior.ExpSum(); math.Abs(s-1) > pdf.NormTolerance {
		log.Error.Printf("population prior sums to %v, want 1", s)
		return errors.Errorf("trio: population prior sums to %v", s)
	}
	if s := JointGermline(&prior, m.MutaRate).Sum(); math.Abs(s-1) > pdf.NormTolerance {
		log.Error.Printf("germline joint sums to %v, want 1", s)
		return errors.Errorf("trio: germline joint sums to %v", s)
	}
	geno := GenoMarginal(&prior)
	somaGivenGeno := SomaGivenGeno(m.SomaRate)
	joint := SomaAndGeno(geno, &somaGivenGeno)
	if s := joint.Sum(); math.Abs(s-1) > pdf.NormTolerance {
		log.Error.Printf("soma-and-genotype joint sums to %v, want 1", s)
		return errors.Errorf("trio: soma-and-genotype joint sums to %v", s)
	}
	probs, _, err := m.ReadProbs(length)
	if err != nil {
		return err
	}
	if s := floats.Sum(probs); math.Abs(s-1) > pdf.NormTolerance {
		log.Error.Printf("read layer sums to %v for length %d, want 1", s, length)
		return errors.Errorf("trio: read layer sums to %v", s)
	}
	return nil
}
