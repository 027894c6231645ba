package coenocline

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SampleNegBin draws one overdispersed count per row of mu. Each count is a
// Poisson draw whose mean is mu scaled by a Gamma(shape=alpha, rate=alpha)
// multiplier; the multiplier has mean 1, so the counts keep mean mu, while
// its variance 1/alpha controls overdispersion. The mixture is a negative
// binomial with variance mu + mu^2/alpha; as alpha grows it degenerates to
// plain Poisson.
//
// alpha is validated before any draw is taken from src.
func SampleNegBin(mu []float64, alpha float64, src rand.Source) ([]float64, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("dispersion alpha must be positive, got %v: %w", alpha, ErrInvalidParameter)
	}

	gamma := distuv.Gamma{Alpha: alpha, Beta: alpha, Src: src}
	out := make([]float64, len(mu))
	for i, m := range mu {
		lambda := gamma.Rand() * m
		out[i] = distuv.Poisson{Lambda: lambda, Src: src}.Rand()
	}
	return out, nil
}

// SampleBernoulli draws one 0/1 presence outcome per row, treating each p as
// a Bernoulli success probability. All probabilities are validated before any
// draw is taken from src.
func SampleBernoulli(p []float64, src rand.Source) ([]float64, error) {
	for i, pi := range p {
		if pi < 0 || pi > 1 {
			return nil, fmt.Errorf("occurrence probability must lie in [0, 1], got %v at row %d: %w", pi, i, ErrInvalidParameter)
		}
	}

	out := make([]float64, len(p))
	for i, pi := range p {
		out[i] = distuv.Bernoulli{P: pi, Src: src}.Rand()
	}
	return out, nil
}
