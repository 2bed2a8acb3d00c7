// Package store persists one directory per digitization run: metadata with
// the derived metrics as JSON, and the refined cycle vertices as CSV.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/okast/isoperf/internal/envelope"
	"github.com/okast/isoperf/internal/record"
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
	ID        string           `json:"id"`
	Record    string           `json:"record"`
	Timestamp time.Time        `json:"timestamp"`
	Samples   int              `json:"samples"`
	Metrics   envelope.Metrics `json:"metrics"`
}

// Save writes metadata.json and cycle.csv for one run and returns its id.
func (s *Store) Save(recordPath string, series record.Series, cycle *envelope.Cycle, m envelope.Metrics) (string, error) {
	base := filepath.Base(recordPath)
	runID := fmt.Sprintf("%s_%d", base[:len(base)-len(filepath.Ext(base))], time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Record:    recordPath,
		Timestamp: time.Now(),
		Samples:   len(series),
		Metrics:   m,
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

	csvFile, err := os.Create(filepath.Join(runDir, "cycle.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"displacement_m", "force_kn"}); err != nil {
		return "", err
	}
	for _, v := range cycle.Closed() {
		row := []string{
			strconv.FormatFloat(v.Displacement, 'f', 6, 64),
			strconv.FormatFloat(v.Force, 'f', 6, 64),
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

// LoadCycle reads back the refined cycle vertices of a run.
func (s *Store) LoadCycle(runID string) (*envelope.Cycle, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "cycle.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	picks := make([]record.Sample, 0, envelope.Picks)
	for i := 1; i < len(records) && len(picks) < envelope.Picks; i++ {
		d, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			return nil, err
		}
		q, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			return nil, err
		}
		picks = append(picks, record.Sample{Displacement: d, Force: q})
	}
	return envelope.NewCycle(picks)
}
