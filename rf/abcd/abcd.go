// Package abcd converts between scattering parameters and ABCD
// (transmission) matrices for two-port networks.
//
// Unlike S-parameters, ABCD matrices compose by plain matrix multiplication
// under cascading, which is why the cascade engine works in this
// representation. Conversion formulas follow Pozar, Microwave Engineering.
//
// Both directions floor near-zero denominators at 1e-12 instead of failing:
// a component with near-infinite isolation (|S21| ≈ 0) is numerically
// degenerate but physically meaningful, so the conversion clamps rather than
// erroring.
package abcd

import "math/cmplx"

// denomFloor replaces near-zero conversion denominators. Deliberate
// numerical-stability clamp, not an error condition.
const denomFloor = 1e-12

// Matrix is a single 2x2 complex transmission matrix.
type Matrix struct {
	A, B, C, D complex128
}

// Identity returns the identity transmission matrix (a zero-length,
// perfectly matched through connection).
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns m·n. Cascading is non-commutative; the left operand is the
// network closer to the source.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// FromScattering converts one S-parameter quadruple to a transmission matrix
// at reference impedance z0.
func FromScattering(s11, s12, s21, s22 complex128, z0 float64) Matrix {
	z := complex(z0, 0)

	denom := 2 * s21
	if cmplx.Abs(denom) < denomFloor {
		denom = complex(denomFloor, 0)
	}

	return Matrix{
		A: ((1+s11)*(1-s22) + s12*s21) / denom,
		B: z * ((1+s11)*(1+s22) - s12*s21) / denom,
		C: ((1-s11)*(1-s22) - s12*s21) / (z * denom),
		D: ((1-s11)*(1+s22) + s12*s21) / denom,
	}
}

// ToScattering converts the matrix back to an S-parameter quadruple at
// reference impedance z0.
func (m Matrix) ToScattering(z0 float64) (s11, s12, s21, s22 complex128) {
	z := complex(z0, 0)

	denom := m.A + m.B/z + m.C*z + m.D
	if cmplx.Abs(denom) < denomFloor {
		denom = complex(denomFloor, 0)
	}

	s11 = (m.A + m.B/z - m.C*z - m.D) / denom
	s12 = 2 * (m.A*m.D - m.B*m.C) / denom
	s21 = 2 / denom
	s22 = (-m.A + m.B/z - m.C*z + m.D) / denom
	return s11, s12, s21, s22
}

// Shunt returns the transmission matrix of an element shunted to ground
// with admittance y:
//
//	[[1, 0], [Y, 1]]
func Shunt(y complex128) Matrix {
	return Matrix{A: 1, C: y, D: 1}
}

// ShuntFromReflection synthesizes the shunt matrix of an element whose own
// input impedance is derived from its reflection parameter:
//
//	Z = Z0·(1+S11)/(1−S11),  Y = 1/Z
//
// Both the (1−S11) denominator and Z itself are floored at 1e-12.
func ShuntFromReflection(s11 complex128, z0 float64) Matrix {
	denom := 1 - s11
	if cmplx.Abs(denom) < denomFloor {
		denom = complex(denomFloor, 0)
	}

	z := complex(z0, 0) * (1 + s11) / denom
	if cmplx.Abs(z) < denomFloor {
		z = complex(denomFloor, 0)
	}

	return Shunt(1 / z)
}
