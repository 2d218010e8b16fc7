// Package storage persists comparison runs under a data directory:
// one subdirectory per run with metadata.json and solutions.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/numlab/bvplab/internal/bvp"
	"github.com/numlab/bvplab/internal/metrics"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Step      float64            `json:"step"`
	Tol       float64            `json:"tol"`
	Methods   []string           `json:"methods"`
	Defects   map[string]float64 `json:"defects"`
}

// Save writes one run directory and returns its id. Defects record
// each method's terminal boundary error |y(1)-2|.
func (s *Store) Save(step, tol float64, g bvp.Grid, sols []bvp.Solution) (string, error) {
	runID := fmt.Sprintf("bvp_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Step:      step,
		Tol:       tol,
		Methods:   make([]string, 0, len(sols)),
		Defects:   make(map[string]float64, len(sols)),
	}
	for _, sol := range sols {
		meta.Methods = append(meta.Methods, sol.Name())
		meta.Defects[sol.Name()] = metrics.BoundaryDefect(sol)
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

	csvFile, err := os.Create(filepath.Join(runDir, "solutions.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"x"}
	for _, sol := range sols {
		header = append(header, sol.Name())
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := 0; i < g.Len(); i++ {
		row := []string{strconv.FormatFloat(g.At(i), 'f', 6, 64)}
		for _, sol := range sols {
			row = append(row, strconv.FormatFloat(sol.At(i), 'f', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return runID, w.Error()
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

// LoadSolutions reads a run's CSV back into the grid points and one
// Solution per stored method, in header order.
func (s *Store) LoadSolutions(runID string) ([]float64, []bvp.Solution, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "solutions.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("run %s: no solution data", runID)
	}

	header := records[0]
	xs := make([]float64, 0, len(records)-1)
	cols := make([][]float64, len(header)-1)

	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, nil, fmt.Errorf("run %s: malformed CSV row", runID)
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, nil, err
		}
		xs = append(xs, x)
		for j := 1; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, nil, err
			}
			cols[j-1] = append(cols[j-1], v)
		}
	}

	sols := make([]bvp.Solution, len(cols))
	for j, col := range cols {
		sols[j] = bvp.NewSolution(header[j+1], col)
	}
	return xs, sols, nil
}
