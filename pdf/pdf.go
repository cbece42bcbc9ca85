// Package pdf provides the log-domain discrete probability primitives used
// by the trio engine: input validation for frequency and concentration
// vectors, a multinomial helper, and the Dirichlet-multinomial compound
// distribution that models overdispersed sequencing read counts.
package pdf

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/grailbio/denovo/genotype"
)

var (
	// ErrInvalidDistribution is returned when a frequency or concentration
	// vector has negative entries or does not normalize.
	ErrInvalidDistribution = errors.New("pdf: invalid distribution parameters")
	// ErrNumericInstability is returned when a computed log-probability is
	// NaN or +Inf, which signals an upstream parameter error.
	ErrNumericInstability = errors.New("pdf: non-finite log-probability")
)

// NormTolerance is the absolute tolerance used when checking that a
// distribution sums to 1.
const NormTolerance = 1e-9

// CheckFreq verifies that freq is a valid probability vector: finite,
// non-negative entries summing to 1 within NormTolerance.
func CheckFreq(freq []float64) error {
	for i, f := range freq {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(ErrInvalidDistribution, "frequency[%d] = %v", i, f)
		}
	}
	if s := floats.Sum(freq); math.Abs(s-1) > NormTolerance {
		return errors.Wrapf(ErrInvalidDistribution, "frequencies sum to %v, want 1", s)
	}
	return nil
}

// CheckAlpha verifies that alpha holds strictly positive, finite Dirichlet
// concentration parameters.  A zero concentration makes the compound
// distribution degenerate, so it is rejected rather than clamped.
func CheckAlpha(alpha []float64) error {
	for i, a := range alpha {
		if !(a > 0) || math.IsInf(a, 0) {
			return errors.Wrapf(ErrInvalidDistribution, "concentration[%d] = %v", i, a)
		}
	}
	return nil
}

// logMultinomialCoeff returns log(n! / (counts[0]! * ... * counts[3]!)),
// the number of read strings sharing one count vector.
func logMultinomialCoeff(counts genotype.Counts) float64 {
	r := 0.0
	for _, c := range counts {
		lg, _ := math.Lgamma(float64(c) + 1)
		r -= lg
	}
	lg, _ := math.Lgamma(float64(counts.Total()) + 1)
	return r + lg
}

// DirichletMultinomial returns the log-probability of observing counts under
// a multinomial whose probability vector has been integrated out against a
// Dirichlet(alpha) prior:
//
//   log C(n; counts) + logGamma(a0) - logGamma(a0+n)
//                    + sum_i [logGamma(alpha[i]+counts[i]) - logGamma(alpha[i])]
//
// with a0 = sum(alpha) and n = sum(counts).  Summed over every count vector
// of a fixed total n (see genotype.EnumCounts), the exponentiated result
// is 1.
func DirichletMultinomial(alpha []float64, counts genotype.Counts) (float64, error) {
	if len(alpha) != genotype.NumNt {
		return 0, errors.Wrapf(ErrInvalidDistribution,
			"want %d concentration parameters, got %d", genotype.NumNt, len(alpha))
	}
	if err := CheckAlpha(alpha); err != nil {
		return 0, err
	}
	for i, c := range counts {
		if c < 0 {
			return 0, errors.Wrapf(ErrInvalidDistribution, "counts[%d] = %d", i, c)
		}
	}
	alpha0 := floats.Sum(alpha)
	lp := logMultinomialCoeff(counts)
	lg0, _ := math.Lgamma(alpha0)
	lgn, _ := math.Lgamma(alpha0 + float64(counts.Total()))
	lp += lg0 - lgn
	for i, a := range alpha {
		lgAC, _ := math.Lgamma(a + float64(counts[i]))
		lgA, _ := math.Lgamma(a)
		lp += lgAC - lgA
	}
	if math.IsNaN(lp) || math.IsInf(lp, 1) {
		return 0, errors.Wrapf(ErrNumericInstability,
			"dirichlet-multinomial(%v, %v) = %v", alpha, counts, lp)
	}
	return lp, nil
}

// LogMultinomial returns the log-probability of counts under a plain
// multinomial with probability vector p.  A zero-probability category with a
// nonzero count yields -Inf, which is a valid log-domain value.
func LogMultinomial(p []float64, counts genotype.Counts) float64 {
	lp := logMultinomialCoeff(counts)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		lp += float64(c) * math.Log(p[i])
	}
	return lp
}
