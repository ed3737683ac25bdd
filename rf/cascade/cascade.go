// Package cascade composes a device under test with an ordered list of
// matching elements into one equivalent two-port network.
//
// Composition happens in the ABCD (transmission-matrix) domain, where
// cascading is plain matrix multiplication: the device seeds the running
// matrix, each element is converted according to its connection role and
// right-multiplied in order, and the final matrix converts back to
// scattering parameters on the device's frequency axis. Order matters:
// cascading is non-commutative.
package cascade

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-rf/rf/abcd"
	"github.com/cwbudde/algo-rf/rf/network"
	"github.com/cwbudde/algo-rf/rf/resample"
)

// Errors returned by Cascade.
var (
	ErrNilDevice  = errors.New("cascade: device network is nil")
	ErrNilElement = errors.New("cascade: element network is nil")
)

// Role is the connection role of an element within a topology.
type Role int

// Supported connection roles.
const (
	// InLine elements sit in series between source and load.
	InLine Role = iota

	// ToGround elements shunt the signal path to ground.
	ToGround
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case InLine:
		return "in-line"
	case ToGround:
		return "to-ground"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Element pairs a component network with its connection role.
type Element struct {
	Network *network.TwoPortNetwork
	Role    Role
}

// Cascade composes device with elements, in order, and returns the
// equivalent two-port on the device's frequency axis and reference
// impedance.
//
// Elements whose frequency axis differs from the device's are resampled
// first. In-line elements convert through the full four-parameter formula;
// to-ground elements synthesize the shunt matrix [[1,0],[Y,1]] from their
// own reflection-derived input impedance. Matrix multiplication itself never
// fails; invalid element data is rejected up front, not absorbed.
//
// With zero elements the device's own scattering parameters come back
// unchanged (up to the S→ABCD→S round trip, exact for well-conditioned
// data).
func Cascade(device *network.TwoPortNetwork, elements []Element) (*network.TwoPortNetwork, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	for i, e := range elements {
		if e.Network == nil {
			return nil, fmt.Errorf("%w: element %d", ErrNilElement, i)
		}
	}

	freq := device.Frequencies()
	z0 := device.Z0()

	if len(elements) == 0 {
		return network.NewTwoPort(freq, device.S11(), device.S12(), device.S21(), device.S22(), z0)
	}

	run := abcd.SeriesFromScattering(device.S11(), device.S12(), device.S21(), device.S22(), z0)

	for _, e := range elements {
		s11, s12, s21, s22 := elementTraces(device, e.Network)

		var m abcd.Series
		switch e.Role {
		case InLine:
			m = abcd.SeriesFromScattering(s11, s12, s21, s22, z0)
		case ToGround:
			m = abcd.ShuntSeriesFromReflection(s11, z0)
		default:
			return nil, fmt.Errorf("cascade: %v", e.Role)
		}

		run.MulInPlace(m)
	}

	s11, s12, s21, s22 := run.ToScattering(z0)
	return network.NewTwoPort(freq, s11, s12, s21, s22, z0)
}

// elementTraces returns the element's four traces on the device axis,
// resampling when the axes differ.
func elementTraces(device, elem *network.TwoPortNetwork) (s11, s12, s21, s22 []complex128) {
	if device.SameAxis(elem) {
		return elem.S11(), elem.S12(), elem.S21(), elem.S22()
	}

	dst := device.Frequencies()
	src := elem.Frequencies()
	s11 = resample.Complex(dst, src, elem.S11())
	s12 = resample.Complex(dst, src, elem.S12())
	s21 = resample.Complex(dst, src, elem.S21())
	s22 = resample.Complex(dst, src, elem.S22())
	return s11, s12, s21, s22
}
