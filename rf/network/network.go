package network

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by network constructors.
var (
	ErrEmptyFrequency   = errors.New("network: frequency axis is empty")
	ErrFrequencyOrder   = errors.New("network: frequencies must be strictly increasing")
	ErrLengthMismatch   = errors.New("network: trace length does not match frequency axis")
	ErrInvalidImpedance = errors.New("network: reference impedance must be positive")
	ErrMissingTrace     = errors.New("network: missing required S-parameter trace")
)

// Canonical trace names for a two-port.
const (
	TraceS11 = "s11"
	TraceS12 = "s12"
	TraceS21 = "s21"
	TraceS22 = "s22"
)

// FrequencySeries pairs a strictly increasing frequency axis (Hz) with one
// or more named complex-valued traces of equal length.
//
// The constructor copies all input slices; accessors return the internal
// slices, which callers must treat as read-only.
type FrequencySeries struct {
	freq   []float64
	traces map[string][]complex128
}

// NewFrequencySeries validates and copies the given axis and traces.
func NewFrequencySeries(freq []float64, traces map[string][]complex128) (*FrequencySeries, error) {
	if err := validateAxis(freq); err != nil {
		return nil, err
	}

	s := &FrequencySeries{
		freq:   append([]float64(nil), freq...),
		traces: make(map[string][]complex128, len(traces)),
	}

	for name, values := range traces {
		if len(values) != len(freq) {
			return nil, fmt.Errorf("%w: trace %q has %d points, axis has %d",
				ErrLengthMismatch, name, len(values), len(freq))
		}
		s.traces[name] = append([]complex128(nil), values...)
	}

	return s, nil
}

// Len returns the number of frequency points.
func (s *FrequencySeries) Len() int { return len(s.freq) }

// Frequencies returns the frequency axis. Read-only.
func (s *FrequencySeries) Frequencies() []float64 { return s.freq }

// Trace returns the named trace and whether it exists. Read-only.
func (s *FrequencySeries) Trace(name string) ([]complex128, bool) {
	values, ok := s.traces[name]
	return values, ok
}

// Range returns the lowest and highest frequency of the axis.
func (s *FrequencySeries) Range() (lo, hi float64) {
	return s.freq[0], s.freq[len(s.freq)-1]
}

// NearestIndex returns the index of the frequency sample closest to f.
func (s *FrequencySeries) NearestIndex(f float64) int {
	return nearestIndex(s.freq, f)
}

// PortCount tags how many ports the source data actually described.
//
// One-port component files carry only a reflection trace; the remaining
// parameters are defaulted at construction (see [NewOnePort]) rather than
// inferred from which traces happen to be present.
type PortCount int

// Supported port counts.
const (
	OnePort PortCount = 1
	TwoPort PortCount = 2
)

// TwoPortNetwork is a FrequencySeries restricted to exactly the four
// S-parameters of a two-port, plus a positive reference impedance in Ohms.
//
// It represents devices under test and candidate components alike. Values
// are read-only after construction.
type TwoPortNetwork struct {
	freq               []float64
	s11, s12, s21, s22 []complex128
	z0                 float64
	ports              PortCount
}

// NewTwoPort validates and copies a full four-parameter two-port.
func NewTwoPort(freq []float64, s11, s12, s21, s22 []complex128, z0 float64) (*TwoPortNetwork, error) {
	if err := validateAxis(freq); err != nil {
		return nil, err
	}
	if z0 <= 0 || math.IsNaN(z0) || math.IsInf(z0, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidImpedance, z0)
	}

	for _, tr := range []struct {
		name   string
		values []complex128
	}{
		{TraceS11, s11}, {TraceS12, s12}, {TraceS21, s21}, {TraceS22, s22},
	} {
		if tr.values == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingTrace, tr.name)
		}
		if len(tr.values) != len(freq) {
			return nil, fmt.Errorf("%w: trace %q has %d points, axis has %d",
				ErrLengthMismatch, tr.name, len(tr.values), len(freq))
		}
	}

	return &TwoPortNetwork{
		freq:  append([]float64(nil), freq...),
		s11:   append([]complex128(nil), s11...),
		s12:   append([]complex128(nil), s12...),
		s21:   append([]complex128(nil), s21...),
		s22:   append([]complex128(nil), s22...),
		z0:    z0,
		ports: TwoPort,
	}, nil
}

// NewOnePort builds a two-port from reflection-only data.
//
// s12, s21 and s22 all default to s11: in the absence of transmission data a
// one-port element is treated as reciprocal and symmetric. This conservative
// approximation is relied on by candidate components sourced from one-port
// files and must be preserved.
func NewOnePort(freq []float64, s11 []complex128, z0 float64) (*TwoPortNetwork, error) {
	n, err := NewTwoPort(freq, s11, s11, s11, s11, z0)
	if err != nil {
		return nil, err
	}
	n.ports = OnePort
	return n, nil
}

// Len returns the number of frequency points.
func (n *TwoPortNetwork) Len() int { return len(n.freq) }

// Frequencies returns the frequency axis. Read-only.
func (n *TwoPortNetwork) Frequencies() []float64 { return n.freq }

// S11 returns the port-1 reflection trace. Read-only.
func (n *TwoPortNetwork) S11() []complex128 { return n.s11 }

// S12 returns the reverse transmission trace. Read-only.
func (n *TwoPortNetwork) S12() []complex128 { return n.s12 }

// S21 returns the forward transmission trace. Read-only.
func (n *TwoPortNetwork) S21() []complex128 { return n.s21 }

// S22 returns the port-2 reflection trace. Read-only.
func (n *TwoPortNetwork) S22() []complex128 { return n.s22 }

// Z0 returns the reference impedance in Ohms.
func (n *TwoPortNetwork) Z0() float64 { return n.z0 }

// Ports reports whether the source data was one-port or two-port.
func (n *TwoPortNetwork) Ports() PortCount { return n.ports }

// Range returns the lowest and highest frequency of the axis.
func (n *TwoPortNetwork) Range() (lo, hi float64) {
	return n.freq[0], n.freq[len(n.freq)-1]
}

// NearestIndex returns the index of the frequency sample closest to f.
func (n *TwoPortNetwork) NearestIndex(f float64) int {
	return nearestIndex(n.freq, f)
}

// Covers reports whether the network's axis spans [lo, hi] entirely.
func (n *TwoPortNetwork) Covers(lo, hi float64) bool {
	return n.freq[0] <= lo && n.freq[len(n.freq)-1] >= hi
}

// SameAxis reports whether other shares an identical frequency axis.
func (n *TwoPortNetwork) SameAxis(other *TwoPortNetwork) bool {
	if len(n.freq) != len(other.freq) {
		return false
	}
	for i := range n.freq {
		if n.freq[i] != other.freq[i] {
			return false
		}
	}
	return true
}

func validateAxis(freq []float64) error {
	if len(freq) == 0 {
		return ErrEmptyFrequency
	}
	for i := 1; i < len(freq); i++ {
		if freq[i] <= freq[i-1] {
			return fmt.Errorf("%w: freq[%d]=%v, freq[%d]=%v",
				ErrFrequencyOrder, i-1, freq[i-1], i, freq[i])
		}
	}
	return nil
}

func nearestIndex(freq []float64, f float64) int {
	best := 0
	bestDiff := math.Abs(freq[0] - f)
	for i := 1; i < len(freq); i++ {
		d := math.Abs(freq[i] - f)
		if d < bestDiff {
			best = i
			bestDiff = d
		}
	}
	return best
}
