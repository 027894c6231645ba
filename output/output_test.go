package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Pakillo/coenocliner/config"
)

func TestFlatten(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	x1 := []float64{0.5, 1.5}
	x2 := []float64{10, 20}

	obs, err := Flatten(m, x1, x2)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(obs) != 6 {
		t.Fatalf("len = %d, want 6", len(obs))
	}

	// Site-major ordering, matching the simulation grid convention.
	first := obs[0]
	if first.Site != 0 || first.Species != 0 || first.Value != 1 || first.Gradient1 != 0.5 {
		t.Errorf("first observation = %+v", first)
	}
	if first.Gradient2 == nil || *first.Gradient2 != 10 {
		t.Errorf("first gradient2 = %v, want 10", first.Gradient2)
	}
	last := obs[5]
	if last.Site != 1 || last.Species != 2 || last.Value != 6 {
		t.Errorf("last observation = %+v", last)
	}
}

func TestFlattenSingleGradient(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{7, 8})
	obs, err := Flatten(m, []float64{3}, nil)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	for _, o := range obs {
		if o.Gradient2 != nil {
			t.Errorf("observation %+v carries a second gradient", o)
		}
	}
}

func TestFlattenCoordinateMismatch(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	if _, err := Flatten(m, []float64{1}, nil); err == nil {
		t.Error("short x1 accepted")
	}
	if _, err := Flatten(m, []float64{1, 2}, []float64{1}); err == nil {
		t.Error("short x2 accepted")
	}
}

func TestManagerWritesRunDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	mgr, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer mgr.Close()

	m := mat.NewDense(2, 1, []float64{4, 9})
	obs, err := Flatten(m, []float64{0, 1}, nil)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if err := mgr.WriteObservations(obs); err != nil {
		t.Fatalf("WriteObservations: %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if err := mgr.WriteScenario(cfg); err != nil {
		t.Fatalf("WriteScenario: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "observations.csv"))
	if err != nil {
		t.Fatalf("reading observations.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("observations.csv has %d lines, want header + 2 rows", len(lines))
	}
	if !strings.Contains(lines[0], "gradient1") || !strings.Contains(lines[0], "value") {
		t.Errorf("header = %q", lines[0])
	}

	if _, err := config.Load(filepath.Join(dir, "scenario.yaml")); err != nil {
		t.Errorf("scenario.yaml written by the run does not load: %v", err)
	}
}

func TestNilManagerIsSafe(t *testing.T) {
	var mgr *Manager
	if err := mgr.WriteObservations(nil); err != nil {
		t.Errorf("nil WriteObservations: %v", err)
	}
	if err := mgr.WriteScenario(nil); err != nil {
		t.Errorf("nil WriteScenario: %v", err)
	}
	if err := mgr.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
	if mgr.Dir() != "" {
		t.Errorf("nil Dir() = %q", mgr.Dir())
	}
}
