// Package coenocline simulates species abundance and occurrence along
// environmental gradients. Species respond to one or two gradients with a
// Gaussian (unimodal) response curve; on top of the deterministic response an
// optional stochastic sampling layer draws negative-binomial counts or
// Bernoulli presence/absence outcomes.
//
// All randomness flows through an explicit math/rand/v2 Source, so callers
// control reproducibility entirely through seeding, e.g.
// rand.NewPCG(seed, 0).
package coenocline

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter validation. Wrapped errors carry context;
// check with errors.Is.
var (
	// ErrDimensionMismatch reports species-parameter sequences of unequal
	// length, or gradient-coordinate sequences of unequal length between the
	// two gradients.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrInvalidParameter reports a non-positive tolerance, a dispersion
	// alpha <= 0, a correlation outside (-1, 1), or a probability outside
	// [0, 1].
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Grid is the site-by-species parameter grid produced by Expand: one row per
// (site, species) pair. Rows are site-major — all Species rows for site 0,
// then site 1, and so on — so a flat response computed over the grid reshapes
// into a Sites x Species matrix in row-major order.
type Grid struct {
	X   []float64 // site gradient coordinate
	Opt []float64 // species optimum
	Tol []float64 // species tolerance
	H   []float64 // species peak response; nil for secondary-gradient grids

	Sites   int
	Species int
}

// Expand crosses n site coordinates with k species parameter triples into the
// full n*k parameter grid. Passing h as nil omits the height column, which is
// how the secondary gradient of a two-gradient model is expanded (height is
// shared between gradients and carried on the primary grid only).
//
// An empty grid (n == 0 or k == 0) is not an error.
func Expand(x, opt, tol, h []float64) (*Grid, error) {
	k := len(opt)
	if len(tol) != k {
		return nil, fmt.Errorf("species parameters: opt has %d entries, tol has %d: %w", k, len(tol), ErrDimensionMismatch)
	}
	if h != nil && len(h) != k {
		return nil, fmt.Errorf("species parameters: opt has %d entries, h has %d: %w", k, len(h), ErrDimensionMismatch)
	}

	n := len(x)
	g := &Grid{
		X:       make([]float64, 0, n*k),
		Opt:     make([]float64, 0, n*k),
		Tol:     make([]float64, 0, n*k),
		Sites:   n,
		Species: k,
	}
	if h != nil {
		g.H = make([]float64, 0, n*k)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			g.X = append(g.X, x[i])
			g.Opt = append(g.Opt, opt[j])
			g.Tol = append(g.Tol, tol[j])
			if h != nil {
				g.H = append(g.H, h[j])
			}
		}
	}
	return g, nil
}

// Len returns the number of (site, species) rows in the grid.
func (g *Grid) Len() int { return g.Sites * g.Species }
