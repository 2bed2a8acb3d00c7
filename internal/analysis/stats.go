package analysis

import (
	"math"

	"github.com/okast/isoperf/internal/record"
)

// PeakResult is the maximum absolute displacement of one record.
type PeakResult struct {
	Name string
	Peak float64
}

// PeakStatsResult summarizes center-of-mass maximum displacements across a
// record set.
type PeakStatsResult struct {
	Peaks []PeakResult
	Mean  float64
	Std   float64
}

// PeakStats computes per-record maximum |displacement| and the mean and
// sample standard deviation across the set.
func PeakStats(names []string, records []record.Series) PeakStatsResult {
	res := PeakStatsResult{Peaks: make([]PeakResult, 0, len(records))}
	sum := 0.0
	for i, rec := range records {
		peak := 0.0
		for _, s := range rec {
			if a := math.Abs(s.Displacement); a > peak {
				peak = a
			}
		}
		name := ""
		if i < len(names) {
			name = names[i]
		}
		res.Peaks = append(res.Peaks, PeakResult{Name: name, Peak: peak})
		sum += peak
	}
	n := float64(len(res.Peaks))
	if n == 0 {
		return res
	}
	res.Mean = sum / n
	if n > 1 {
		var ss float64
		for _, p := range res.Peaks {
			d := p.Peak - res.Mean
			ss += d * d
		}
		res.Std = math.Sqrt(ss / (n - 1))
	}
	return res
}
