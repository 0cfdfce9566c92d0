package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/davidcortesortuno/skyrmion-model-widget/internal/lattice"
	"github.com/davidcortesortuno/skyrmion-model-widget/internal/spin"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata records everything needed to rebuild the lattice and the
// parameter set of a stored field snapshot.
type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Nx        int       `json:"nx"`
	Ny        int       `json:"ny"`
	HexRadius float64   `json:"hex_radius"`
	Radius    float64   `json:"skyrmion_radius"`
	Helicity  float64   `json:"helicity"`
	Vorticity int       `json:"vorticity"`
	Chirality int       `json:"chirality"`
	CenterX   float64   `json:"center_x"`
	CenterY   float64   `json:"center_y"`
	Points    int       `json:"points"`
}

// Lattice regenerates the lattice a snapshot was evaluated on. Generation is
// deterministic, so only the dimensions and spacing are persisted.
func (m *RunMetadata) Lattice() (*lattice.Lattice, error) {
	return lattice.Generate(m.Nx, m.Ny, m.HexRadius)
}

// Parameters rebuilds the evaluation parameters of the snapshot.
func (m *RunMetadata) Parameters() spin.Parameters {
	return spin.Parameters{
		Radius:    m.Radius,
		CenterX:   m.CenterX,
		CenterY:   m.CenterY,
		Helicity:  m.Helicity,
		Vorticity: m.Vorticity,
		Chirality: m.Chirality,
	}
}

// Save writes one field snapshot: metadata.json plus field.csv with a row
// per lattice point (index, position, spin components).
func (s *Store) Save(lat *lattice.Lattice, params spin.Parameters, field []spin.Vector) (string, error) {
	if len(field) != len(lat.Points) {
		return "", fmt.Errorf("storage: field length %d does not match lattice size %d", len(field), len(lat.Points))
	}

	runID := fmt.Sprintf("skx_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Nx:        lat.Nx,
		Ny:        lat.Ny,
		HexRadius: lat.Radius,
		Radius:    params.Radius,
		Helicity:  params.Helicity,
		Vorticity: params.Vorticity,
		Chirality: params.Chirality,
		CenterX:   params.CenterX,
		CenterY:   params.CenterY,
		Points:    len(lat.Points),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "field.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "x", "y", "sx", "sy", "sz"}); err != nil {
		return "", err
	}

	for idx, p := range lat.Points {
		v := field[idx]
		row := []string{
			strconv.Itoa(idx),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
			strconv.FormatFloat(v.X, 'g', -1, 64),
			strconv.FormatFloat(v.Y, 'g', -1, 64),
			strconv.FormatFloat(v.Z, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadField reads a stored spin field back, index-aligned with the lattice
// RunMetadata.Lattice regenerates.
func (s *Store) LoadField(runID string) ([]spin.Vector, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "field.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []spin.Vector{}, nil
	}

	field := make([]spin.Vector, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 6 {
			continue
		}

		sx, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		sy, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			continue
		}
		sz, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			continue
		}

		field = append(field, spin.Vector{X: sx, Y: sy, Z: sz})
	}

	return field, nil
}
