// Package output writes simulated survey data to disk: a long-format
// observations CSV plus a YAML copy of the resolved scenario for provenance.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/mat"

	"github.com/Pakillo/coenocliner/config"
)

// Observation is one (site, species) cell of a simulated survey in long
// format. Gradient2 is nil for single-gradient models, which renders as an
// empty CSV cell.
type Observation struct {
	Site      int      `csv:"site"`
	Gradient1 float64  `csv:"gradient1"`
	Gradient2 *float64 `csv:"gradient2"`
	Species   int      `csv:"species"`
	Value     float64  `csv:"value"`
}

// Flatten converts a sites x species matrix into long-format observations,
// site-major. x2 may be nil for single-gradient surveys; otherwise it must
// hold one coordinate per matrix row, like x1.
func Flatten(m *mat.Dense, x1, x2 []float64) ([]Observation, error) {
	n, k := m.Dims()
	if len(x1) != n {
		return nil, fmt.Errorf("gradient 1 has %d coordinates for %d matrix rows", len(x1), n)
	}
	if x2 != nil && len(x2) != n {
		return nil, fmt.Errorf("gradient 2 has %d coordinates for %d matrix rows", len(x2), n)
	}

	obs := make([]Observation, 0, n*k)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			o := Observation{
				Site:      i,
				Gradient1: x1[i],
				Species:   j,
				Value:     m.At(i, j),
			}
			if x2 != nil {
				g2 := x2[i]
				o.Gradient2 = &g2
			}
			obs = append(obs, o)
		}
	}
	return obs, nil
}

// Manager handles structured simulation output into a run directory.
type Manager struct {
	dir     string
	obsFile *os.File
}

// NewManager creates an output manager and initializes the run directory.
// Returns nil if dir is empty (output disabled); a nil Manager is safe to
// call.
func NewManager(dir string) (*Manager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "observations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating observations.csv: %w", err)
	}
	return &Manager{dir: dir, obsFile: f}, nil
}

// WriteObservations writes the survey to observations.csv with headers.
func (m *Manager) WriteObservations(obs []Observation) error {
	if m == nil {
		return nil
	}
	if err := gocsv.Marshal(obs, m.obsFile); err != nil {
		return fmt.Errorf("writing observations: %w", err)
	}
	return nil
}

// WriteScenario saves the resolved scenario as YAML next to the data, so a
// run can be reproduced from its output directory alone.
func (m *Manager) WriteScenario(cfg *config.Config) error {
	if m == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(m.dir, "scenario.yaml"))
}

// Dir returns the output directory path.
func (m *Manager) Dir() string {
	if m == nil {
		return ""
	}
	return m.dir
}

// Close flushes and closes the output files.
func (m *Manager) Close() error {
	if m == nil || m.obsFile == nil {
		return nil
	}
	return m.obsFile.Close()
}
