package coenocline

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// GradientCounts simulates a count survey of k species at n sites along a
// single gradient. x holds the site coordinates; opt, tol and h hold one
// entry per species. The returned matrix has one row per site (in input
// order) and one column per species (in input order).
//
// With expectation true the deterministic response surface is returned
// directly and src is never touched; otherwise each cell is one negative
// binomial draw with dispersion alpha.
func GradientCounts(x, opt, tol, h []float64, alpha float64, expectation bool, src rand.Source) (*mat.Dense, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("dispersion alpha must be positive, got %v: %w", alpha, ErrInvalidParameter)
	}
	g, err := Expand(x, opt, tol, h)
	if err != nil {
		return nil, err
	}
	mu, err := GaussianResponse(g.X, g.Opt, g.Tol, g.H)
	if err != nil {
		return nil, err
	}
	if expectation {
		return reshape(g.Sites, g.Species, mu), nil
	}
	y, err := SampleNegBin(mu, alpha, src)
	if err != nil {
		return nil, err
	}
	return reshape(g.Sites, g.Species, y), nil
}

// TwoGradientCounts simulates a count survey along two gradients with
// correlation corr between them. x1 and x2 hold the per-site coordinates on
// each gradient and must be the same length; opt1/tol1 and opt2/tol2 hold the
// per-species response parameters on each gradient; h is the shared peak
// abundance, applied once.
func TwoGradientCounts(x1, x2, opt1, tol1, opt2, tol2, h []float64, corr, alpha float64, expectation bool, src rand.Source) (*mat.Dense, error) {
	if alpha <= 0 {
		return nil, fmt.Errorf("dispersion alpha must be positive, got %v: %w", alpha, ErrInvalidParameter)
	}
	mu, n, k, err := bivariateSurface(x1, x2, opt1, tol1, opt2, tol2, h, corr)
	if err != nil {
		return nil, err
	}
	if expectation {
		return reshape(n, k, mu), nil
	}
	y, err := SampleNegBin(mu, alpha, src)
	if err != nil {
		return nil, err
	}
	return reshape(n, k, y), nil
}

// TwoGradientOccurrence simulates a presence/absence survey along two
// gradients. Heights are occurrence probabilities at the optimum and must lie
// in [0, 1]; the sampled matrix holds 0/1 outcomes, or probabilities with
// expectation true.
func TwoGradientOccurrence(x1, x2, opt1, tol1, opt2, tol2, h []float64, corr float64, expectation bool, src rand.Source) (*mat.Dense, error) {
	for j, hj := range h {
		if hj < 0 || hj > 1 {
			return nil, fmt.Errorf("occurrence height must lie in [0, 1], got %v for species %d: %w", hj, j, ErrInvalidParameter)
		}
	}
	p, n, k, err := bivariateSurface(x1, x2, opt1, tol1, opt2, tol2, h, corr)
	if err != nil {
		return nil, err
	}
	if expectation {
		return reshape(n, k, p), nil
	}
	y, err := SampleBernoulli(p, src)
	if err != nil {
		return nil, err
	}
	return reshape(n, k, y), nil
}

// bivariateSurface expands both gradients and evaluates the correlated
// response surface, returning the flat site-major surface with its
// dimensions.
func bivariateSurface(x1, x2, opt1, tol1, opt2, tol2, h []float64, corr float64) ([]float64, int, int, error) {
	if len(x1) != len(x2) {
		return nil, 0, 0, fmt.Errorf("gradient coordinates: gradient 1 has %d sites, gradient 2 has %d: %w", len(x1), len(x2), ErrDimensionMismatch)
	}
	if len(opt1) != len(opt2) {
		return nil, 0, 0, fmt.Errorf("species parameters: gradient 1 has %d species, gradient 2 has %d: %w", len(opt1), len(opt2), ErrDimensionMismatch)
	}
	g1, err := Expand(x1, opt1, tol1, h)
	if err != nil {
		return nil, 0, 0, err
	}
	g2, err := Expand(x2, opt2, tol2, nil)
	if err != nil {
		return nil, 0, 0, err
	}
	mu, err := BivariateGaussianResponse(g1.X, g1.Opt, g1.Tol, g2.X, g2.Opt, g2.Tol, g1.H, corr)
	if err != nil {
		return nil, 0, 0, err
	}
	return mu, g1.Sites, g1.Species, nil
}

// reshape folds a flat site-major sequence into an n x k matrix. mat.NewDense
// rejects zero dimensions, so degenerate simulations return an empty Dense.
func reshape(n, k int, flat []float64) *mat.Dense {
	if n == 0 || k == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(n, k, flat)
}
