// Package resample maps complex frequency-domain traces onto new frequency
// grids by linear interpolation.
//
// Real and imaginary parts are interpolated independently. Target points
// outside the source range extrapolate linearly from the nearest segment;
// callers that cannot tolerate extrapolation artifacts must pre-filter
// candidates by frequency coverage (see the network catalog helpers).
package resample

// Complex interpolates src, sampled at srcFreq, onto dstFreq.
//
// srcFreq must be strictly increasing and the same length as src; both are
// guaranteed by the network constructors. A single-point source is treated
// as constant over all target frequencies.
func Complex(dstFreq, srcFreq []float64, src []complex128) []complex128 {
	out := make([]complex128, len(dstFreq))

	if len(src) == 1 {
		for i := range out {
			out[i] = src[0]
		}
		return out
	}

	for i, f := range dstFreq {
		out[i] = at(f, srcFreq, src)
	}
	return out
}

// at evaluates the piecewise-linear interpolant at frequency f.
func at(f float64, srcFreq []float64, src []complex128) complex128 {
	// Locate the segment [lo, lo+1] bracketing f. Points below the first
	// or above the last sample reuse the nearest segment, extrapolating.
	lo := 0
	hi := len(srcFreq) - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if srcFreq[mid] <= f {
			lo = mid
		} else {
			hi = mid
		}
	}

	f0, f1 := srcFreq[lo], srcFreq[lo+1]
	t := (f - f0) / (f1 - f0)

	re0, im0 := real(src[lo]), imag(src[lo])
	re1, im1 := real(src[lo+1]), imag(src[lo+1])

	return complex(re0+t*(re1-re0), im0+t*(im1-im0))
}
