// Package testutil provides deterministic synthetic networks and tolerance
// helpers shared by the package tests.
package testutil

import (
	"testing"

	"github.com/cwbudde/algo-rf/rf/network"
)

// UniformAxis returns n equally spaced frequencies from lo to hi inclusive.
func UniformAxis(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// ConstantTrace returns a trace of n copies of v.
func ConstantTrace(v complex128, n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// MatchedThrough builds the identity two-port (s11=s22=0, s12=s21=1) on the
// given axis.
func MatchedThrough(t *testing.T, freq []float64, z0 float64) *network.TwoPortNetwork {
	t.Helper()
	n := len(freq)
	net, err := network.NewTwoPort(freq,
		ConstantTrace(0, n), ConstantTrace(1, n), ConstantTrace(1, n), ConstantTrace(0, n), z0)
	if err != nil {
		t.Fatalf("MatchedThrough: %v", err)
	}
	return net
}

// ReflectiveDevice builds a two-port with constant reflection s11 and
// constant transmission s21=s12, s22 mirroring s11.
func ReflectiveDevice(t *testing.T, freq []float64, s11, s21 complex128, z0 float64) *network.TwoPortNetwork {
	t.Helper()
	n := len(freq)
	net, err := network.NewTwoPort(freq,
		ConstantTrace(s11, n), ConstantTrace(s21, n), ConstantTrace(s21, n), ConstantTrace(s11, n), z0)
	if err != nil {
		t.Fatalf("ReflectiveDevice: %v", err)
	}
	return net
}

// ConstantComponent builds a catalog component with constant S-parameters.
// s22 is passed separately so asymmetric candidates can be modeled.
func ConstantComponent(t *testing.T, name string, class network.ComponentClass, freq []float64, s11, s21, s22 complex128, z0 float64) network.Component {
	t.Helper()
	n := len(freq)
	net, err := network.NewTwoPort(freq,
		ConstantTrace(s11, n), ConstantTrace(s21, n), ConstantTrace(s21, n), ConstantTrace(s22, n), z0)
	if err != nil {
		t.Fatalf("ConstantComponent %s: %v", name, err)
	}
	return network.Component{Name: name, Class: class, Network: net}
}
