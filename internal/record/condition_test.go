package record

import (
	"errors"
	"math"
	"testing"
)

func TestApplyBaseline(t *testing.T) {
	s := Series{{Displacement: 0.1, Force: 105}, {Displacement: 0.2, Force: -95}}
	out := s.ApplyBaseline(5)

	if out[0].Force != 100 || out[1].Force != -100 {
		t.Errorf("baseline not subtracted: %v, %v", out[0].Force, out[1].Force)
	}
	if out[0].Displacement != 0.1 {
		t.Error("displacement column must be untouched")
	}
	if s[0].Force != 105 {
		t.Error("input series must not be mutated")
	}
}

func TestApplyLowPassConstantSignal(t *testing.T) {
	s := make(Series, 50)
	for i := range s {
		s[i] = Sample{Displacement: float64(i), Force: 42}
	}
	out := s.ApplyLowPass(10, 0.01)
	if len(out) != len(s) {
		t.Fatalf("length changed: %d", len(out))
	}
	for i, v := range out {
		if math.Abs(v.Force-42) > 1e-9 {
			t.Fatalf("constant signal altered at %d: %v", i, v.Force)
		}
	}
}

func TestApplyLowPassSmooths(t *testing.T) {
	// alternating spikes should be attenuated toward the mean
	s := make(Series, 100)
	for i := range s {
		f := 100.0
		if i%2 == 1 {
			f = -100.0
		}
		s[i] = Sample{Force: f}
	}
	out := s.ApplyLowPass(5, 0.01)
	for i := 10; i < len(out); i++ {
		if math.Abs(out[i].Force) >= 100 {
			t.Fatalf("sample %d not attenuated: %v", i, out[i].Force)
		}
	}
}

func TestApplyLowPassNoop(t *testing.T) {
	s := Series{{Force: 1}, {Force: 2}}
	if out := s.ApplyLowPass(0, 0.01); len(out) != 2 || out[1].Force != 2 {
		t.Error("zero cutoff must be a no-op")
	}
}

func TestCrop(t *testing.T) {
	s := Series{{Force: 0}, {Force: 1}, {Force: 2}, {Force: 3}}

	out := s.Crop(1, 3)
	if len(out) != 2 || out[0].Force != 1 || out[1].Force != 2 {
		t.Errorf("crop wrong: %+v", out)
	}

	if got := s.Crop(-5, 99); len(got) != 4 {
		t.Errorf("clamped crop should return all samples, got %d", len(got))
	}
	if got := s.Crop(3, 1); len(got) != 0 {
		t.Errorf("inverted crop should be empty, got %d", len(got))
	}
}

func TestParseCropRange(t *testing.T) {
	cases := []struct {
		expr   string
		lo, hi int
	}{
		{"100:250", 100, 250},
		{":250", 0, 250},
		{"100:", 100, 400},
		{":", 0, 400},
	}
	for _, c := range cases {
		lo, hi, err := ParseCropRange(c.expr, 400)
		if err != nil {
			t.Fatalf("%q: %v", c.expr, err)
		}
		if lo != c.lo || hi != c.hi {
			t.Errorf("%q: got %d:%d, want %d:%d", c.expr, lo, hi, c.lo, c.hi)
		}
	}
}

func TestParseCropRangeBad(t *testing.T) {
	for _, expr := range []string{"", "100", "abc:200", "100:xyz", "-5:200", "250:100", "100:100"} {
		if _, _, err := ParseCropRange(expr, 400); !errors.Is(err, ErrBadCropRange) {
			t.Errorf("%q: expected ErrBadCropRange, got %v", expr, err)
		}
	}
}
