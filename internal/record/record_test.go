package record

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadUnitConversion(t *testing.T) {
	path := writeRecord(t, "100 50\n")

	series, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(series))
	}
	if math.Abs(series[0].Displacement-(-0.1)) > 1e-12 {
		t.Errorf("expected displacement -0.1 m, got %v", series[0].Displacement)
	}
	if series[0].Force != 50 {
		t.Errorf("force must pass through unchanged, got %v", series[0].Force)
	}
}

func TestLoadOrderPreserved(t *testing.T) {
	path := writeRecord(t, "10 1\n20 2\n30 3\n")

	series, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(series))
	}
	for i, want := range []float64{1, 2, 3} {
		if series[i].Force != want {
			t.Errorf("sample %d: force %v, want %v", i, series[i].Force, want)
		}
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	path := writeRecord(t, "10 1\n\n20 2\n")
	series, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(series) != 2 {
		t.Errorf("expected 2 samples, got %d", len(series))
	}
}

func TestLoadWrongColumnCount(t *testing.T) {
	path := writeRecord(t, "10 1 99\n")
	if _, err := Load(path); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestLoadNonNumeric(t *testing.T) {
	path := writeRecord(t, "abc 1\n")
	if _, err := Load(path); !errors.Is(err, ErrMalformedRecord) {
		t.Fatalf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected fs not-exist error, got %v", err)
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeRecord(t, "\n\n")
	if _, err := Load(path); !errors.Is(err, ErrEmptyRecord) {
		t.Fatalf("expected ErrEmptyRecord, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	s := Series{
		{Displacement: -0.2, Force: 10},
		{Displacement: 0.3, Force: -40},
	}
	dMin, dMax, fMin, fMax := s.Bounds()
	if dMin != -0.2 || dMax != 0.3 || fMin != -40 || fMax != 10 {
		t.Errorf("bounds wrong: %v %v %v %v", dMin, dMax, fMin, fMax)
	}
}
