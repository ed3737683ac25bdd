package match

import (
	"context"
	"time"

	"github.com/cwbudde/algo-rf/rf/cascade"
	"github.com/cwbudde/algo-rf/rf/metrics"
	"github.com/cwbudde/algo-rf/rf/network"
)

// BandwidthSearch sweeps the same candidate combinations as
// [SingleFrequencySearch] but scores each one by the worst-case VSWR across
// a frequency band, keeping the combination that minimizes that maximum.
//
// Any combination that cascades successfully produces a finite score (VSWR
// is floored, never infinite), so the search returns a best-effort Result
// whenever at least one combination cascades; it fails with ErrNoSolution
// only when literally nothing does.
type BandwidthSearch struct {
	// Device is the network being matched.
	Device *network.TwoPortNetwork

	// Catalog supplies the candidate components.
	Catalog *network.Catalog

	// Topology fixes the arrangement of connection roles.
	Topology cascade.Topology

	// FrequencyRange bounds the band scored, in Hz. Zero means the
	// device's full range.
	FrequencyRange [2]float64

	// TargetImpedance in Ohms for the match criteria. Zero means the
	// device's reference impedance.
	TargetImpedance float64

	// ImpedanceTolerance in Ohms. Zero means DefaultImpedanceTolerance.
	ImpedanceTolerance float64

	// VSWRThreshold for the match criteria and the achieved-bandwidth
	// metric. Zero means DefaultVSWRThreshold.
	VSWRThreshold float64

	// MaxIterations truncates the enumeration after this many
	// combinations. Zero means unlimited.
	MaxIterations int

	// Workers bounds parallel candidate evaluation; see
	// [SingleFrequencySearch.Workers].
	Workers int
}

// Validate checks the search parameters.
func (s *BandwidthSearch) Validate() error {
	if s.Device == nil {
		return ErrNilDevice
	}
	if s.Catalog == nil {
		return ErrNilCatalog
	}
	if s.Topology.Size() == 0 {
		return ErrEmptyTopology
	}
	return nil
}

// Run executes the search.
func (s *BandwidthSearch) Run(ctx context.Context) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	freq := s.Device.Frequencies()
	lo, hi := s.Device.Range()
	if s.FrequencyRange != [2]float64{} {
		lo, hi = s.FrequencyRange[0], s.FrequencyRange[1]
	}

	loIdx, hiIdx := bandIndices(freq, lo, hi)
	if loIdx > hiIdx {
		return nil, ErrEmptyRange
	}

	assignments := Enumerate(s.Topology, s.Catalog.Capacitors(), s.Catalog.Inductors())
	if s.MaxIterations > 0 && s.MaxIterations < len(assignments) {
		assignments = assignments[:s.MaxIterations]
	}

	scores, err := sweepScores(ctx, s.Device, assignments, s.Workers,
		func(net *network.TwoPortNetwork) float64 {
			return maxVSWRInBand(net.S11(), loIdx, hiIdx)
		})
	if err != nil {
		return nil, err
	}

	best := argmin(scores)
	if best < 0 {
		return nil, ErrNoSolution
	}

	winner, err := cascade.Cascade(s.Device, assignments[best].elements())
	if err != nil {
		return nil, err
	}

	point := (&SingleFrequencySearch{
		Device:             s.Device,
		Catalog:            s.Catalog,
		Topology:           s.Topology,
		TargetImpedance:    s.TargetImpedance,
		ImpedanceTolerance: s.ImpedanceTolerance,
		VSWRThreshold:      s.VSWRThreshold,
	}).buildResult(winner, assignments[best], (lo+hi)/2, [2]float64{lo, hi})

	point.MaxVSWRInBand = scores[best]
	point.Iterations = len(assignments)
	point.Duration = time.Since(start)
	return point, nil
}

// bandIndices returns the inclusive index range of samples within [lo, hi].
// A loIdx greater than hiIdx means the band contains no samples.
func bandIndices(freq []float64, lo, hi float64) (loIdx, hiIdx int) {
	loIdx = len(freq)
	hiIdx = -1
	for i, f := range freq {
		if f >= lo && f <= hi {
			if i < loIdx {
				loIdx = i
			}
			hiIdx = i
		}
	}
	return loIdx, hiIdx
}

func maxVSWRInBand(s11 []complex128, loIdx, hiIdx int) float64 {
	trace := metrics.VSWRTrace(s11[loIdx : hiIdx+1])
	maxVSWR := trace[0]
	for _, v := range trace[1:] {
		if v > maxVSWR {
			maxVSWR = v
		}
	}
	return maxVSWR
}
