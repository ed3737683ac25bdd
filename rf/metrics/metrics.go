// Package metrics derives impedance-match figures of merit from complex
// reflection data: reflection-coefficient magnitude, VSWR, return loss,
// input impedance, mismatch loss and matched-bandwidth.
//
// All functions are pure and numerically safe: near-singular denominators
// are floored at fixed epsilons rather than producing Inf or NaN, so
// degenerate inputs yield large finite values that still order correctly in
// ranking code. In particular, VSWR at |Γ| ≥ 1 returns the floored large
// value, never +Inf; the degenerate result is reported, not hidden, so
// callers can render "no usable match found".
package metrics

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

const (
	// gammaFloor replaces near-zero and near-unity reflection terms.
	gammaFloor = 1e-10

	// ReturnLossCapDB caps reported return loss; |Γ| below the floor
	// would otherwise read as 200 dB, which is measurement fiction.
	ReturnLossCapDB = 100.0
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// ReflectionMagnitude returns |Γ| for each point of a reflection trace.
//
// Uses SIMD-optimized magnitude kernels when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func ReflectionMagnitude(gamma []complex128) []float64 {
	out := make([]float64, len(gamma))
	if len(gamma) == 0 {
		return out
	}

	re, im, buf := getScratch(len(gamma))
	defer putScratch(buf)

	for i, g := range gamma {
		re[i] = real(g)
		im[i] = imag(g)
	}
	vecmath.Magnitude(out, re, im)
	return out
}

// VSWR computes the voltage standing wave ratio from a reflection
// magnitude:
//
//	VSWR = (1 + |Γ|) / (1 − |Γ|)
//
// The denominator is floored at 1e-10, so a perfect short or open yields a
// large finite number rather than +Inf. Negative magnitudes clamp to zero.
func VSWR(gammaMag float64) float64 {
	if gammaMag < 0 {
		gammaMag = 0
	}
	denom := 1 - gammaMag
	if denom < gammaFloor {
		denom = gammaFloor
	}
	return (1 + gammaMag) / denom
}

// VSWRTrace computes VSWR at every point of a reflection trace.
func VSWRTrace(gamma []complex128) []float64 {
	mags := ReflectionMagnitude(gamma)
	for i, m := range mags {
		mags[i] = VSWR(m)
	}
	return mags
}

// ReturnLossDB computes return loss in dB from a reflection magnitude:
//
//	RL = −20·log10(max(|Γ|, 1e-10))
//
// capped at [ReturnLossCapDB]. Higher is better.
func ReturnLossDB(gammaMag float64) float64 {
	if gammaMag < gammaFloor {
		gammaMag = gammaFloor
	}
	rl := -20 * math.Log10(gammaMag)
	if rl > ReturnLossCapDB {
		return ReturnLossCapDB
	}
	return rl
}

// ReturnLossTrace computes return loss at every point of a reflection trace.
func ReturnLossTrace(gamma []complex128) []float64 {
	mags := ReflectionMagnitude(gamma)
	for i, m := range mags {
		mags[i] = ReturnLossDB(m)
	}
	return mags
}

// ImpedanceFromReflection converts a complex reflection coefficient to the
// input impedance it implies at reference impedance z0:
//
//	Z = Z0·(1+Γ)/(1−Γ)
//
// The denominator is floored at 1e-10.
func ImpedanceFromReflection(gamma complex128, z0 float64) complex128 {
	denom := 1 - gamma
	if cmplx.Abs(denom) < gammaFloor {
		denom = complex(gammaFloor, 0)
	}
	return complex(z0, 0) * (1 + gamma) / denom
}

// ImpedanceTrace converts a reflection trace to input impedances.
func ImpedanceTrace(gamma []complex128, z0 float64) []complex128 {
	out := make([]complex128, len(gamma))
	for i, g := range gamma {
		out[i] = ImpedanceFromReflection(g, z0)
	}
	return out
}

// ReflectionFromImpedance converts an impedance to its reflection
// coefficient at reference impedance z0:
//
//	Γ = (Z − Z0)/(Z + Z0)
func ReflectionFromImpedance(z complex128, z0 float64) complex128 {
	return (z - complex(z0, 0)) / (z + complex(z0, 0))
}

// MismatchLossDB computes the power lost to reflection in dB:
//
//	ML = −10·log10(1 − |Γ|²)
//
// The log argument is floored at 1e-10 for |Γ| ≥ 1.
func MismatchLossDB(gammaMag float64) float64 {
	arg := 1 - gammaMag*gammaMag
	if arg < gammaFloor {
		arg = gammaFloor
	}
	return -10 * math.Log10(arg)
}

// IsMatched reports whether impedance z counts as matched to target.
//
// Either criterion alone certifies a match (an OR, not AND):
//
//	|Z − target| ≤ tolerance, or
//	VSWR(Γ(Z, target)) ≤ vswrThreshold
func IsMatched(z complex128, target, tolerance, vswrThreshold float64) bool {
	if cmplx.Abs(z-complex(target, 0)) <= tolerance {
		return true
	}
	gamma := cmplx.Abs(ReflectionFromImpedance(z, target))
	return VSWR(gamma) <= vswrThreshold
}

// BandwidthBelow sums the total bandwidth in Hz over which vswr stays below
// threshold. Disjoint matched bands each contribute; a single matched point
// between unmatched neighbors contributes zero width.
//
// vswr and freq must have equal length with freq strictly increasing.
func BandwidthBelow(vswr, freq []float64, threshold float64) float64 {
	total := 0.0
	inBand := false
	start := 0.0

	for i, v := range vswr {
		switch {
		case v < threshold && !inBand:
			start = freq[i]
			inBand = true
		case v >= threshold && inBand:
			total += freq[i-1] - start
			inBand = false
		}
	}
	if inBand {
		total += freq[len(freq)-1] - start
	}
	return total
}
