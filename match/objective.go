package match

import (
	"math/cmplx"

	"github.com/cwbudde/algo-rf/rf/metrics"
)

// Weight keys accepted by [ScoreCandidate].
const (
	WeightReturnLoss     = "return_loss"
	WeightVSWR           = "vswr"
	WeightBandwidth      = "bandwidth"
	WeightComponentCount = "component_count"
)

// Weights maps weight keys to their contribution in the weighted objective.
type Weights map[string]float64

// DefaultWeights returns the documented default weighting. Caller-supplied
// weights are merged over these; a key missing from the merged set
// contributes zero.
func DefaultWeights() Weights {
	return Weights{
		WeightReturnLoss:     0.7,
		WeightVSWR:           0.0,
		WeightBandwidth:      0.2,
		WeightComponentCount: 0.1,
	}
}

// bandwidthVSWRThreshold is the fixed VSWR bound defining "achieved
// bandwidth" inside the objective, independent of any search threshold.
const bandwidthVSWRThreshold = 2.0

// ScoreCandidate computes the weighted multi-metric cost of a candidate
// solution whose input impedances across the band are known. Lower is
// better; the result lies in [0, sum of the merged weights].
//
// Four sub-scores, each normalized to [0, 1] with lower-is-better:
//
//   - return loss: band average, mapped linearly from [0, 40] dB (40 dB
//     and better costs 0)
//   - VSWR: band average, mapped from [1, 10]
//   - bandwidth: total band span with VSWR < 2.0, inverted so wider
//     coverage is cheaper
//   - component count: mapped from [0, 5]
//
// weights are merged over [DefaultWeights]; pass nil to use the defaults
// unchanged. This objective backs the continuous-value refinement path and
// must stay bit-compatible with it.
func ScoreCandidate(impedances []complex128, frequencies []float64, candidates []Placement, weights Weights, targetImpedance float64) float64 {
	merged := DefaultWeights()
	for k, v := range weights {
		merged[k] = v
	}

	sumRL, sumVSWR := 0.0, 0.0
	vswrTrace := make([]float64, len(impedances))
	for i, z := range impedances {
		gamma := cmplx.Abs(metrics.ReflectionFromImpedance(z, targetImpedance))
		sumRL += metrics.ReturnLossDB(gamma)
		vswrTrace[i] = metrics.VSWR(gamma)
		sumVSWR += vswrTrace[i]
	}

	n := float64(len(impedances))
	avgRL, avgVSWR := 0.0, 0.0
	if n > 0 {
		avgRL = sumRL / n
		avgVSWR = sumVSWR / n
	}

	normRL := clamp01((40 - avgRL) / 40)
	normVSWR := clamp01((avgVSWR - 1) / 9)

	normBandwidth := 0.0
	if len(frequencies) > 1 {
		span := frequencies[len(frequencies)-1] - frequencies[0]
		if span > 0 {
			achieved := metrics.BandwidthBelow(vswrTrace, frequencies, bandwidthVSWRThreshold)
			normBandwidth = clamp01((span - achieved) / span)
		}
	}

	normCount := clamp01(float64(len(candidates)) / 5)

	return merged[WeightReturnLoss]*normRL +
		merged[WeightVSWR]*normVSWR +
		merged[WeightBandwidth]*normBandwidth +
		merged[WeightComponentCount]*normCount
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
