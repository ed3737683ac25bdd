package abcd

// Series is a per-frequency array of transmission matrices sharing one
// frequency axis. It is a transient representation: produced and consumed
// inside the cascade engine, never persisted.
type Series []Matrix

// IdentitySeries returns n identity matrices.
func IdentitySeries(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = Identity()
	}
	return s
}

// SeriesFromScattering converts four equal-length S-parameter traces into a
// transmission-matrix series at reference impedance z0.
func SeriesFromScattering(s11, s12, s21, s22 []complex128, z0 float64) Series {
	s := make(Series, len(s11))
	for i := range s {
		s[i] = FromScattering(s11[i], s12[i], s21[i], s22[i], z0)
	}
	return s
}

// ShuntSeriesFromReflection converts a reflection trace into a per-frequency
// shunt-to-ground matrix series (see [ShuntFromReflection]).
func ShuntSeriesFromReflection(s11 []complex128, z0 float64) Series {
	s := make(Series, len(s11))
	for i := range s {
		s[i] = ShuntFromReflection(s11[i], z0)
	}
	return s
}

// MulInPlace right-multiplies every matrix by the matching matrix in other,
// in place. Both series must have equal length; the caller guarantees this
// (they always share the device frequency axis inside the cascade engine).
func (s Series) MulInPlace(other Series) {
	for i := range s {
		s[i] = s[i].Mul(other[i])
	}
}

// ToScattering converts the series back to four S-parameter traces.
func (s Series) ToScattering(z0 float64) (s11, s12, s21, s22 []complex128) {
	s11 = make([]complex128, len(s))
	s12 = make([]complex128, len(s))
	s21 = make([]complex128, len(s))
	s22 = make([]complex128, len(s))
	for i, m := range s {
		s11[i], s12[i], s21[i], s22[i] = m.ToScattering(z0)
	}
	return s11, s12, s21, s22
}
