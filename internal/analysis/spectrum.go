package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/okast/isoperf/internal/record"
)

// ErrShortRecord indicates a record with too few samples to resolve a
// spectrum worth plotting.
var ErrShortRecord = errors.New("analysis: record too short for a spectrum")

// PowerSpectrum computes the single-sided magnitude spectrum of the force
// column, zero-padded to the next power of two.
func PowerSpectrum(s record.Series) []float64 {
	data := s.Forces()
	n := 1
	for n < len(data) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, data)

	coeffs := fft.FFTReal(padded)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// PlotBins returns the low-frequency quarter of a spectrum for terminal
// plotting. Records under 8 samples pad to spectra with fewer than 4 bins
// and leave nothing to plot; those error instead.
func PlotBins(ps []float64) ([]float64, error) {
	bins := ps[:len(ps)/4]
	if len(bins) == 0 {
		return nil, ErrShortRecord
	}
	return bins, nil
}

// DominantFrequency returns the bin with the highest non-DC magnitude and
// its frequency for the given sampling interval.
func DominantFrequency(ps []float64, dt float64, n int) (float64, float64) {
	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	if dt <= 0 || n == 0 {
		return 0, maxPower
	}
	freq := float64(maxIdx) / (float64(n) * dt)
	return freq, maxPower
}
