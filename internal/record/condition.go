package record

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadCropRange indicates a crop expression that is not lo:hi with lo < hi.
var ErrBadCropRange = errors.New("record: bad crop range")

// Conditioning helpers for noisy recorded histories. These operate on the
// force column only; the displacement column is the controlled quantity in
// an isolator test and is left untouched.

// ApplyBaseline subtracts a constant offset from the force column.
func (s Series) ApplyBaseline(offset float64) Series {
	out := make(Series, len(s))
	for i, v := range s {
		out[i] = Sample{Displacement: v.Displacement, Force: v.Force - offset}
	}
	return out
}

// ApplyLowPass runs a first-order RC low-pass over the force column.
// dt is the sampling interval in seconds; cutoff in Hz.
func (s Series) ApplyLowPass(cutoff, dt float64) Series {
	if len(s) == 0 || cutoff <= 0 || dt <= 0 {
		return s
	}
	rc := 1.0 / (2 * math.Pi * cutoff)
	alpha := dt / (rc + dt)

	out := make(Series, len(s))
	out[0] = s[0]
	for i := 1; i < len(s); i++ {
		out[i] = Sample{
			Displacement: s[i].Displacement,
			Force:        alpha*s[i].Force + (1-alpha)*out[i-1].Force,
		}
	}
	return out
}

// Crop returns the sample range [lo, hi), clamped to the series.
func (s Series) Crop(lo, hi int) Series {
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	if lo >= hi {
		return Series{}
	}
	out := make(Series, hi-lo)
	copy(out, s[lo:hi])
	return out
}

// ParseCropRange parses a "lo:hi" sample index pair for Crop. Either side
// may be empty: ":200" crops from the start, "150:" to the end of a series
// of n samples.
func ParseCropRange(expr string, n int) (lo, hi int, err error) {
	parts := strings.SplitN(expr, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q, want lo:hi", ErrBadCropRange, expr)
	}
	lo, hi = 0, n
	if parts[0] != "" {
		if lo, err = strconv.Atoi(parts[0]); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadCropRange, expr)
		}
	}
	if parts[1] != "" {
		if hi, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrBadCropRange, expr)
		}
	}
	if lo < 0 || hi <= lo {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadCropRange, expr)
	}
	return lo, hi, nil
}
