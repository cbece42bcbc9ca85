package pdf_test

import (
	"math"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grailbio/denovo/genotype"
	"github.com/grailbio/denovo/pdf"
)

// TestDirichletMultinomialNormalizes checks the central property: for a
// fixed read length, the exponentiated log-probabilities over all count
// vectors sum to 1, for symmetric and asymmetric concentrations alike.
func TestDirichletMultinomialNormalizes(t *testing.T) {
	alphas := [][]float64{
		{0.25, 0.25, 0.25, 0.25},
		{1, 1, 1, 1},
		{10, 0.1, 3, 0.5},
		{2.5, 0.004, 0.004, 0.004},
	}
	for _, alpha := range alphas {
		for length := 0; length <= 4; length++ {
			countsList, err := genotype.EnumCounts(length)
			require.NoError(t, err)
			sum := 0.0
			for _, counts := range countsList {
				lp, err := pdf.DirichletMultinomial(alpha, counts)
				require.NoError(t, err)
				require.False(t, math.IsNaN(lp))
				sum += math.Exp(lp)
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "alpha %v length %d", alpha, length)
		}
	}
}

// TestDirichletMultinomialSingleRead checks the closed form for one read:
// the probability of seeing base i is alpha[i] / sum(alpha).
func TestDirichletMultinomialSingleRead(t *testing.T) {
	alpha := []float64{2, 1, 0.5, 0.5}
	alpha0 := 4.0
	for i := 0; i < genotype.NumNt; i++ {
		var counts genotype.Counts
		counts[i] = 1
		lp, err := pdf.DirichletMultinomial(alpha, counts)
		require.NoError(t, err)
		assert.InEpsilon(t, alpha[i]/alpha0, math.Exp(lp), 1e-12)
	}
}

// TestDirichletMultinomialSmallCounts exercises the 0-2 count range the
// engine actually uses and checks stability.
func TestDirichletMultinomialSmallCounts(t *testing.T) {
	alpha := []float64{0.25, 0.25, 0.25, 0.25}

	lp, err := pdf.DirichletMultinomial(alpha, genotype.Counts{})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, lp, 1e-12) // empty read string has probability 1

	// Two identical bases are likelier than two different ones under a
	// sparse Dirichlet prior.
	same, err := pdf.DirichletMultinomial(alpha, genotype.Counts{2, 0, 0, 0})
	require.NoError(t, err)
	diff, err := pdf.DirichletMultinomial(alpha, genotype.Counts{1, 1, 0, 0})
	require.NoError(t, err)
	assert.True(t, same > diff)
}

func TestDirichletMultinomialErrors(t *testing.T) {
	tests := []struct {
		name   string
		alpha  []float64
		counts genotype.Counts
	}{
		{"wrong length", []float64{1, 1, 1}, genotype.Counts{}},
		{"zero concentration", []float64{0, 1, 1, 1}, genotype.Counts{}},
		{"negative concentration", []float64{-1, 1, 1, 1}, genotype.Counts{}},
		{"NaN concentration", []float64{math.NaN(), 1, 1, 1}, genotype.Counts{}},
		{"infinite concentration", []float64{math.Inf(1), 1, 1, 1}, genotype.Counts{}},
		{"negative count", []float64{1, 1, 1, 1}, genotype.Counts{-1, 0, 0, 0}},
	}
	for _, test := range tests {
		_, err := pdf.DirichletMultinomial(test.alpha, test.counts)
		require.Error(t, err, test.name)
		assert.Equal(t, pdf.ErrInvalidDistribution, pkgerrors.Cause(err), test.name)
	}
}

func TestCheckFreq(t *testing.T) {
	assert.NoError(t, pdf.CheckFreq([]float64{0.25, 0.25, 0.25, 0.25}))
	assert.NoError(t, pdf.CheckFreq([]float64{0.1, 0.2, 0.3, 0.4}))
	assert.NoError(t, pdf.CheckFreq([]float64{1, 0, 0, 0}))

	bad := [][]float64{
		{0.5, 0.5, 0.5, 0.5},
		{-0.25, 0.5, 0.5, 0.25},
		{math.NaN(), 0.25, 0.25, 0.25},
		{math.Inf(1), 0.25, 0.25, 0.25},
		{0.25, 0.25, 0.25},
	}
	for _, freq := range bad {
		err := pdf.CheckFreq(freq)
		require.Error(t, err)
		assert.Equal(t, pdf.ErrInvalidDistribution, pkgerrors.Cause(err))
	}
}

// TestLogMultinomial compares against hand-computed values.
func TestLogMultinomial(t *testing.T) {
	uniform := []float64{0.25, 0.25, 0.25, 0.25}

	// P({1,1,0,0}) = 2 * 0.25 * 0.25
	lp := pdf.LogMultinomial(uniform, genotype.Counts{1, 1, 0, 0})
	assert.InEpsilon(t, 2*0.25*0.25, math.Exp(lp), 1e-12)

	// P({2,0,0,0}) = 0.25^2
	lp = pdf.LogMultinomial(uniform, genotype.Counts{2, 0, 0, 0})
	assert.InEpsilon(t, 0.25*0.25, math.Exp(lp), 1e-12)

	// A zero-probability category with a nonzero count is impossible.
	lp = pdf.LogMultinomial([]float64{0, 0.5, 0.25, 0.25}, genotype.Counts{1, 1, 0, 0})
	assert.True(t, math.IsInf(lp, -1))

	// Normalization over a fixed total.
	countsList, err := genotype.EnumCounts(3)
	require.NoError(t, err)
	sum := 0.0
	for _, counts := range countsList {
		sum += math.Exp(pdf.LogMultinomial([]float64{0.1, 0.2, 0.3, 0.4}, counts))
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
