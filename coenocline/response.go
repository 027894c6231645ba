package coenocline

import (
	"fmt"
	"math"
)

// GaussianResponse evaluates the univariate Gaussian response curve
//
//	mu = h * exp(-0.5 * ((x-opt)/tol)^2)
//
// elementwise over equal-length, already-expanded sequences. Each mu lies in
// [0, h], peaks exactly at x == opt, and decays monotonically with |x - opt|.
func GaussianResponse(x, opt, tol, h []float64) ([]float64, error) {
	n := len(x)
	if len(opt) != n || len(tol) != n || len(h) != n {
		return nil, fmt.Errorf("response inputs: x=%d opt=%d tol=%d h=%d: %w", n, len(opt), len(tol), len(h), ErrDimensionMismatch)
	}
	for i, t := range tol {
		if t <= 0 {
			return nil, fmt.Errorf("tolerance must be positive, got %v at row %d: %w", t, i, ErrInvalidParameter)
		}
	}

	mu := make([]float64, n)
	for i := range mu {
		z := (x[i] - opt[i]) / tol[i]
		mu[i] = h[i] * math.Exp(-0.5*z*z)
	}
	return mu, nil
}

// BivariateGaussianResponse evaluates the two-gradient Gaussian response
// surface with correlation corr between the gradients:
//
//	z1 = (x1-opt1)/tol1, z2 = (x2-opt2)/tol2
//	mu = h * exp(-(z1^2 + z2^2 - 2*corr*z1*z2) / (2*(1-corr^2)))
//
// With corr == 0 this is exactly the product of the two independent
// univariate responses (with height applied once). corr must lie strictly
// inside (-1, 1).
func BivariateGaussianResponse(x1, opt1, tol1, x2, opt2, tol2, h []float64, corr float64) ([]float64, error) {
	n := len(x1)
	if len(opt1) != n || len(tol1) != n || len(x2) != n || len(opt2) != n || len(tol2) != n || len(h) != n {
		return nil, fmt.Errorf("response inputs: x1=%d opt1=%d tol1=%d x2=%d opt2=%d tol2=%d h=%d: %w",
			n, len(opt1), len(tol1), len(x2), len(opt2), len(tol2), len(h), ErrDimensionMismatch)
	}
	if corr <= -1 || corr >= 1 {
		return nil, fmt.Errorf("correlation must lie in (-1, 1), got %v: %w", corr, ErrInvalidParameter)
	}
	for i := 0; i < n; i++ {
		if tol1[i] <= 0 {
			return nil, fmt.Errorf("gradient 1 tolerance must be positive, got %v at row %d: %w", tol1[i], i, ErrInvalidParameter)
		}
		if tol2[i] <= 0 {
			return nil, fmt.Errorf("gradient 2 tolerance must be positive, got %v at row %d: %w", tol2[i], i, ErrInvalidParameter)
		}
	}

	scale := 1 / (2 * (1 - corr*corr))
	mu := make([]float64, n)
	for i := range mu {
		z1 := (x1[i] - opt1[i]) / tol1[i]
		z2 := (x2[i] - opt2[i]) / tol2[i]
		mu[i] = h[i] * math.Exp(-scale*(z1*z1+z2*z2-2*corr*z1*z2))
	}
	return mu, nil
}
