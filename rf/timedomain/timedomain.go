// Package timedomain converts band-limited reflection data into a
// time-domain view (time-domain reflectometry): the real impulse response of
// the reflection path and its running integral, the step response.
//
// The frequency grid must be uniform; the trace is optionally windowed,
// extended to a conjugate-symmetric spectrum and inverse-FFT'd, yielding a
// real-valued response whose time step is 1/(N·Δf).
package timedomain

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-rf/rf/network"
)

// Errors returned by the transforms.
var (
	ErrNilNetwork     = errors.New("timedomain: network is nil")
	ErrTooFewPoints   = errors.New("timedomain: need at least two frequency points")
	ErrNonUniformGrid = errors.New("timedomain: frequency grid is not uniform")
)

// gridTolerance is the allowed relative spacing deviation before a grid
// counts as non-uniform.
const gridTolerance = 1e-6

// Options configures the transform.
type Options struct {
	// Window applies a Hann taper to the reflection trace before the
	// inverse transform, trading time resolution for reduced ringing
	// from the band edges.
	Window bool
}

// DefaultOptions returns the recommended settings.
func DefaultOptions() Options {
	return Options{Window: true}
}

// Response is the time-domain view of a reflection trace.
type Response struct {
	// TimeStep is the spacing of the response samples in seconds.
	TimeStep float64

	// Impulse is the real impulse response of the reflection path.
	Impulse []float64
}

// Step returns the step response, the running integral of the impulse
// response scaled by the time step.
func (r *Response) Step() []float64 {
	out := make([]float64, len(r.Impulse))
	sum := 0.0
	for i, v := range r.Impulse {
		sum += v
		out[i] = sum
	}
	return out
}

// ImpulseResponse transforms the network's reflection trace (S11) into its
// time-domain impulse response.
func ImpulseResponse(n *network.TwoPortNetwork, opts Options) (*Response, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}

	freq := n.Frequencies()
	if len(freq) < 2 {
		return nil, ErrTooFewPoints
	}

	df, err := uniformSpacing(freq)
	if err != nil {
		return nil, err
	}

	trace := append([]complex128(nil), n.S11()...)
	if opts.Window {
		applyHann(trace)
	}

	// Conjugate-symmetric spectrum: bins [0, n) carry the trace, the top
	// bins its mirror, so the inverse transform comes out real.
	fftSize := nextPowerOf2(2 * len(trace))
	spectrum := make([]complex128, fftSize)
	for i, v := range trace {
		spectrum[i] = v
		if i > 0 {
			spectrum[fftSize-i] = complex(real(v), -imag(v))
		}
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("timedomain: failed to create FFT plan: %w", err)
	}

	timeData := make([]complex128, fftSize)
	if err := plan.Inverse(timeData, spectrum); err != nil {
		return nil, fmt.Errorf("timedomain: inverse FFT failed: %w", err)
	}

	impulse := make([]float64, fftSize)
	for i, v := range timeData {
		impulse[i] = real(v)
	}

	return &Response{
		TimeStep: 1 / (float64(fftSize) * df),
		Impulse:  impulse,
	}, nil
}

// uniformSpacing returns the grid spacing, or an error if the grid deviates
// from uniform by more than the tolerance.
func uniformSpacing(freq []float64) (float64, error) {
	df := freq[1] - freq[0]
	for i := 2; i < len(freq); i++ {
		step := freq[i] - freq[i-1]
		if math.Abs(step-df) > gridTolerance*df {
			return 0, fmt.Errorf("%w: spacing %v at index %d, expected %v",
				ErrNonUniformGrid, step, i, df)
		}
	}
	return df, nil
}

func applyHann(trace []complex128) {
	n := len(trace)
	if n < 2 {
		return
	}
	for i := range trace {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		trace[i] *= complex(w, 0)
	}
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
