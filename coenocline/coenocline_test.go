package coenocline

import (
	"errors"
	"testing"
)

func TestExpand(t *testing.T) {
	x := []float64{1, 2, 3}
	opt := []float64{10, 20}
	tol := []float64{1, 2}
	h := []float64{5, 6}

	g, err := Expand(x, opt, tol, h)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}

	if g.Sites != 3 || g.Species != 2 {
		t.Errorf("dimensions = (%d, %d), want (3, 2)", g.Sites, g.Species)
	}
	if g.Len() != 6 {
		t.Errorf("Len() = %d, want 6", g.Len())
	}

	// Site-major: all species for site 0 first.
	wantX := []float64{1, 1, 2, 2, 3, 3}
	wantOpt := []float64{10, 20, 10, 20, 10, 20}
	wantTol := []float64{1, 2, 1, 2, 1, 2}
	wantH := []float64{5, 6, 5, 6, 5, 6}
	for i := 0; i < g.Len(); i++ {
		if g.X[i] != wantX[i] || g.Opt[i] != wantOpt[i] || g.Tol[i] != wantTol[i] || g.H[i] != wantH[i] {
			t.Errorf("row %d = (%v, %v, %v, %v), want (%v, %v, %v, %v)",
				i, g.X[i], g.Opt[i], g.Tol[i], g.H[i], wantX[i], wantOpt[i], wantTol[i], wantH[i])
		}
	}
}

func TestExpandNoHeight(t *testing.T) {
	g, err := Expand([]float64{1, 2}, []float64{0}, []float64{1}, nil)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if g.H != nil {
		t.Errorf("H = %v, want nil", g.H)
	}
	if len(g.X) != 2 {
		t.Errorf("rows = %d, want 2", len(g.X))
	}
}

func TestExpandDimensionMismatch(t *testing.T) {
	tests := []struct {
		name        string
		opt, tol, h []float64
	}{
		{"short tol", []float64{1, 2}, []float64{1}, []float64{1, 2}},
		{"short h", []float64{1, 2}, []float64{1, 2}, []float64{1}},
		{"long h", []float64{1}, []float64{1}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand([]float64{0}, tt.opt, tt.tol, tt.h)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("err = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

func TestExpandEmpty(t *testing.T) {
	tests := []struct {
		name   string
		x, opt []float64
	}{
		{"no sites", []float64{}, []float64{1}},
		{"no species", []float64{1, 2}, []float64{}},
		{"neither", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tol := make([]float64, len(tt.opt))
			for i := range tol {
				tol[i] = 1
			}
			g, err := Expand(tt.x, tt.opt, tol, tol)
			if err != nil {
				t.Fatalf("Expand returned error: %v", err)
			}
			if g.Len() != 0 {
				t.Errorf("Len() = %d, want 0", g.Len())
			}
		})
	}
}
