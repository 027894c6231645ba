package main

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/Pakillo/coenocliner/coenocline"
	"github.com/Pakillo/coenocliner/config"
	"github.com/Pakillo/coenocliner/params"
)

// survey is the materialized result of one scenario run: the site-by-species
// matrix plus the gradient coordinates the sites were placed at. X2 is nil
// for single-gradient models.
type survey struct {
	Matrix *mat.Dense
	X1, X2 []float64
}

// runScenario materializes sites and species from the scenario ranges and
// runs the matching simulation driver. Every draw — survey design and
// stochastic sampling alike — comes from a single PCG stream seeded with
// cfg.Seed, so a scenario file fully determines its output.
func runScenario(cfg *config.Config) (*survey, error) {
	src := rand.NewPCG(cfg.Seed, 0)

	x1, err := placeSites(cfg.Sites.Count, cfg.Sites.Placement, cfg.Sites.Gradient1, src)
	if err != nil {
		return nil, fmt.Errorf("placing sites on gradient 1: %w", err)
	}
	var x2 []float64
	if cfg.TwoGradients() {
		x2, err = placeSites(cfg.Sites.Count, cfg.Sites.Placement, cfg.Sites.Gradient2, src)
		if err != nil {
			return nil, fmt.Errorf("placing sites on gradient 2: %w", err)
		}
	}

	opt1, tol1, err := params.RandomAxis(cfg.Species.Count, axisRanges(cfg.Species.Gradient1), src)
	if err != nil {
		return nil, fmt.Errorf("drawing species parameters on gradient 1: %w", err)
	}
	h, err := params.RandomHeights(cfg.Species.Count, cfg.Species.Height.Min, cfg.Species.Height.Max, src)
	if err != nil {
		return nil, fmt.Errorf("drawing species heights: %w", err)
	}
	var opt2, tol2 []float64
	if cfg.TwoGradients() {
		opt2, tol2, err = params.RandomAxis(cfg.Species.Count, axisRanges(cfg.Species.Gradient2), src)
		if err != nil {
			return nil, fmt.Errorf("drawing species parameters on gradient 2: %w", err)
		}
	}

	var m *mat.Dense
	switch cfg.Model {
	case config.ModelCounts1:
		m, err = coenocline.GradientCounts(x1, opt1, tol1, h, cfg.Alpha, cfg.Expectation, src)
	case config.ModelCounts2:
		m, err = coenocline.TwoGradientCounts(x1, x2, opt1, tol1, opt2, tol2, h, cfg.Corr, cfg.Alpha, cfg.Expectation, src)
	case config.ModelOccurrence2:
		m, err = coenocline.TwoGradientOccurrence(x1, x2, opt1, tol1, opt2, tol2, h, cfg.Corr, cfg.Expectation, src)
	default:
		return nil, fmt.Errorf("unknown model %q", cfg.Model)
	}
	if err != nil {
		return nil, fmt.Errorf("simulating %s: %w", cfg.Model, err)
	}

	return &survey{Matrix: m, X1: x1, X2: x2}, nil
}

func placeSites(n int, placement string, r config.RangeConfig, src rand.Source) ([]float64, error) {
	if placement == config.PlacementRandom {
		return params.RandomGradient(n, r.Min, r.Max, src)
	}
	return params.EvenGradient(n, r.Min, r.Max), nil
}

func axisRanges(a config.SpeciesAxisConfig) params.AxisRanges {
	return params.AxisRanges{
		OptMin: a.Opt.Min, OptMax: a.Opt.Max,
		TolMin: a.Tol.Min, TolMax: a.Tol.Max,
	}
}
