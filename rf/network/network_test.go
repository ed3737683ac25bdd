package network

import (
	"errors"
	"testing"
)

func validAxis() []float64 {
	return []float64{1e9, 2e9, 3e9}
}

func constTrace(v complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestNewFrequencySeriesValidation(t *testing.T) {
	tests := []struct {
		name    string
		freq    []float64
		traces  map[string][]complex128
		wantErr error
	}{
		{"valid", validAxis(), map[string][]complex128{"s11": constTrace(0.5, 3)}, nil},
		{"empty axis", nil, nil, ErrEmptyFrequency},
		{"decreasing", []float64{2e9, 1e9}, nil, ErrFrequencyOrder},
		{"duplicate", []float64{1e9, 1e9, 2e9}, nil, ErrFrequencyOrder},
		{"length mismatch", validAxis(), map[string][]complex128{"s11": constTrace(0, 2)}, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFrequencySeries(tt.freq, tt.traces)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewFrequencySeries() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFrequencySeriesAccessors(t *testing.T) {
	s, err := NewFrequencySeries(validAxis(), map[string][]complex128{
		"s11": constTrace(0.25+0.5i, 3),
	})
	if err != nil {
		t.Fatal(err)
	}

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	lo, hi := s.Range()
	if lo != 1e9 || hi != 3e9 {
		t.Errorf("Range() = (%v, %v), want (1e9, 3e9)", lo, hi)
	}
	if _, ok := s.Trace("s11"); !ok {
		t.Error("Trace(s11) missing")
	}
	if _, ok := s.Trace("s21"); ok {
		t.Error("Trace(s21) unexpectedly present")
	}
}

func TestFrequencySeriesCopiesInputs(t *testing.T) {
	freq := validAxis()
	trace := constTrace(1, 3)
	s, err := NewFrequencySeries(freq, map[string][]complex128{"s11": trace})
	if err != nil {
		t.Fatal(err)
	}

	freq[0] = 0
	trace[0] = 99

	if s.Frequencies()[0] != 1e9 {
		t.Error("frequency axis aliases caller slice")
	}
	got, _ := s.Trace("s11")
	if got[0] != 1 {
		t.Error("trace aliases caller slice")
	}
}

func TestNewTwoPortValidation(t *testing.T) {
	freq := validAxis()
	ok := constTrace(0.1, 3)
	short := constTrace(0.1, 2)

	tests := []struct {
		name               string
		freq               []float64
		s11, s12, s21, s22 []complex128
		z0                 float64
		wantErr            error
	}{
		{"valid", freq, ok, ok, ok, ok, 50, nil},
		{"empty axis", nil, ok, ok, ok, ok, 50, ErrEmptyFrequency},
		{"zero impedance", freq, ok, ok, ok, ok, 0, ErrInvalidImpedance},
		{"negative impedance", freq, ok, ok, ok, ok, -50, ErrInvalidImpedance},
		{"missing trace", freq, ok, nil, ok, ok, 50, ErrMissingTrace},
		{"length mismatch", freq, ok, ok, short, ok, 50, ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTwoPort(tt.freq, tt.s11, tt.s12, tt.s21, tt.s22, tt.z0)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTwoPort() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewOnePortFallback(t *testing.T) {
	s11 := []complex128{0.3 + 0.1i, 0.2 - 0.2i, 0.1 + 0i}
	n, err := NewOnePort(validAxis(), s11, 50)
	if err != nil {
		t.Fatal(err)
	}

	if n.Ports() != OnePort {
		t.Errorf("Ports() = %v, want OnePort", n.Ports())
	}

	// Reciprocal-symmetric fallback: every trace mirrors the reflection.
	for i := range s11 {
		if n.S12()[i] != s11[i] || n.S21()[i] != s11[i] || n.S22()[i] != s11[i] {
			t.Fatalf("index %d: fallback traces diverge from s11", i)
		}
	}
}

func TestNewTwoPortIsTwoPort(t *testing.T) {
	ok := constTrace(0.1, 3)
	n, err := NewTwoPort(validAxis(), ok, ok, ok, ok, 50)
	if err != nil {
		t.Fatal(err)
	}
	if n.Ports() != TwoPort {
		t.Errorf("Ports() = %v, want TwoPort", n.Ports())
	}
}

func TestNearestIndex(t *testing.T) {
	ok := constTrace(0, 3)
	n, err := NewTwoPort(validAxis(), ok, ok, ok, ok, 50)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		f    float64
		want int
	}{
		{0, 0},
		{1e9, 0},
		{1.4e9, 0},
		{1.6e9, 1},
		{2e9, 1},
		{3e9, 2},
		{9e9, 2},
	}
	for _, tt := range tests {
		if got := n.NearestIndex(tt.f); got != tt.want {
			t.Errorf("NearestIndex(%v) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestCovers(t *testing.T) {
	ok := constTrace(0, 3)
	n, err := NewTwoPort(validAxis(), ok, ok, ok, ok, 50)
	if err != nil {
		t.Fatal(err)
	}

	if !n.Covers(1e9, 3e9) {
		t.Error("Covers(full range) = false")
	}
	if !n.Covers(1.5e9, 2.5e9) {
		t.Error("Covers(inner range) = false")
	}
	if n.Covers(0.5e9, 2e9) {
		t.Error("Covers(below range) = true")
	}
	if n.Covers(2e9, 4e9) {
		t.Error("Covers(above range) = true")
	}
}

func TestSameAxis(t *testing.T) {
	ok := constTrace(0, 3)
	a, _ := NewTwoPort(validAxis(), ok, ok, ok, ok, 50)
	b, _ := NewTwoPort(validAxis(), ok, ok, ok, ok, 50)
	c, _ := NewTwoPort([]float64{1e9, 2e9, 3.5e9}, ok, ok, ok, ok, 50)

	if !a.SameAxis(b) {
		t.Error("identical axes reported different")
	}
	if a.SameAxis(c) {
		t.Error("different axes reported same")
	}
}
