// Package params generates survey-design inputs for coenocline simulations:
// site placements along an environmental gradient and randomized species
// response parameters drawn uniformly within configured ranges.
package params

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/Pakillo/coenocliner/coenocline"
)

// AxisRanges bounds the uniform draws for species response parameters on one
// gradient axis.
type AxisRanges struct {
	OptMin, OptMax float64
	TolMin, TolMax float64
}

// SpeciesRanges bounds the uniform draws for a full species parameter triple:
// one gradient axis plus the peak response height.
type SpeciesRanges struct {
	Axis                 AxisRanges
	HeightMin, HeightMax float64
}

func (r AxisRanges) validate() error {
	if r.OptMin > r.OptMax {
		return fmt.Errorf("optimum range [%v, %v] is inverted: %w", r.OptMin, r.OptMax, coenocline.ErrInvalidParameter)
	}
	if r.TolMin <= 0 || r.TolMin > r.TolMax {
		return fmt.Errorf("tolerance range [%v, %v] must be positive and ordered: %w", r.TolMin, r.TolMax, coenocline.ErrInvalidParameter)
	}
	return nil
}

// EvenGradient places n sites evenly over [min, max], endpoints included.
// A single site sits at min; n <= 0 yields no sites.
func EvenGradient(n int, min, max float64) []float64 {
	if n <= 0 {
		return nil
	}
	x := make([]float64, n)
	if n == 1 {
		x[0] = min
		return x
	}
	step := (max - min) / float64(n-1)
	for i := range x {
		x[i] = min + float64(i)*step
	}
	return x
}

// RandomGradient places n sites uniformly at random over [min, max].
func RandomGradient(n int, min, max float64, src rand.Source) ([]float64, error) {
	if min > max {
		return nil, fmt.Errorf("gradient range [%v, %v] is inverted: %w", min, max, coenocline.ErrInvalidParameter)
	}
	if n <= 0 {
		return nil, nil
	}
	u := distuv.Uniform{Min: min, Max: max, Src: src}
	x := make([]float64, n)
	for i := range x {
		x[i] = u.Rand()
	}
	return x, nil
}

// RandomAxis draws k index-aligned (optimum, tolerance) pairs uniformly
// within r. Ranges are validated before any draw is taken from src.
func RandomAxis(k int, r AxisRanges, src rand.Source) (opt, tol []float64, err error) {
	if err := r.validate(); err != nil {
		return nil, nil, err
	}
	if k <= 0 {
		return nil, nil, nil
	}

	uOpt := distuv.Uniform{Min: r.OptMin, Max: r.OptMax, Src: src}
	uTol := distuv.Uniform{Min: r.TolMin, Max: r.TolMax, Src: src}
	opt = make([]float64, k)
	tol = make([]float64, k)
	for j := 0; j < k; j++ {
		opt[j] = uOpt.Rand()
		tol[j] = uTol.Rand()
	}
	return opt, tol, nil
}

// RandomHeights draws k peak response heights uniformly within [min, max].
func RandomHeights(k int, min, max float64, src rand.Source) ([]float64, error) {
	if min < 0 || min > max {
		return nil, fmt.Errorf("height range [%v, %v] must be non-negative and ordered: %w", min, max, coenocline.ErrInvalidParameter)
	}
	if k <= 0 {
		return nil, nil
	}
	u := distuv.Uniform{Min: min, Max: max, Src: src}
	h := make([]float64, k)
	for j := range h {
		h[j] = u.Rand()
	}
	return h, nil
}

// RandomSpecies draws k index-aligned (optimum, tolerance, height) triples
// uniformly within r. Ranges are validated before any draw is taken from src.
func RandomSpecies(k int, r SpeciesRanges, src rand.Source) (opt, tol, h []float64, err error) {
	if r.HeightMin < 0 || r.HeightMin > r.HeightMax {
		return nil, nil, nil, fmt.Errorf("height range [%v, %v] must be non-negative and ordered: %w", r.HeightMin, r.HeightMax, coenocline.ErrInvalidParameter)
	}
	if err := r.Axis.validate(); err != nil {
		return nil, nil, nil, err
	}
	opt, tol, err = RandomAxis(k, r.Axis, src)
	if err != nil {
		return nil, nil, nil, err
	}
	h, err = RandomHeights(k, r.HeightMin, r.HeightMax, src)
	if err != nil {
		return nil, nil, nil, err
	}
	return opt, tol, h, nil
}
