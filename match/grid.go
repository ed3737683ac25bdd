package match

import (
	"context"
	"errors"
	"math"
	"math/cmplx"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-rf/rf/cascade"
	"github.com/cwbudde/algo-rf/rf/metrics"
	"github.com/cwbudde/algo-rf/rf/network"
)

// Errors returned by the search entry points.
var (
	ErrNilDevice     = errors.New("match: device network is nil")
	ErrNilCatalog    = errors.New("match: catalog is nil")
	ErrEmptyTopology = errors.New("match: topology has no positions")
	ErrEmptyRange    = errors.New("match: no frequency samples in requested range")
	ErrNoSolution    = errors.New("match: no candidate combination cascaded successfully")
)

// Default match criteria, used when the corresponding field is zero.
const (
	DefaultImpedanceTolerance = 10.0
	DefaultVSWRThreshold      = 2.0
)

// SingleFrequencySearch exhaustively evaluates every enumerated candidate
// combination at one target frequency and keeps the combination with the
// smallest reflection magnitude. Deterministic: identical inputs produce an
// identical Result.
type SingleFrequencySearch struct {
	// Device is the network being matched.
	Device *network.TwoPortNetwork

	// Catalog supplies the candidate components.
	Catalog *network.Catalog

	// Topology fixes the arrangement of connection roles.
	Topology cascade.Topology

	// TargetFrequency in Hz. The evaluation uses the nearest available
	// frequency sample. Zero means the center of the device's range.
	TargetFrequency float64

	// TargetImpedance in Ohms for the match criteria. Zero means the
	// device's reference impedance.
	TargetImpedance float64

	// ImpedanceTolerance in Ohms. Zero means DefaultImpedanceTolerance.
	ImpedanceTolerance float64

	// VSWRThreshold for the match criteria. Zero means
	// DefaultVSWRThreshold.
	VSWRThreshold float64

	// Workers bounds parallel candidate evaluation. Zero or one runs
	// sequentially. Parallel runs produce the same Result as sequential
	// ones: scores are index-addressed and the winner is chosen in
	// enumeration order.
	Workers int
}

// Validate checks the search parameters.
func (s *SingleFrequencySearch) Validate() error {
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

// Run executes the search. It fails with ErrNoSolution only when every
// combination fails to cascade (empty catalog included); cancellation is
// checked between combinations, never mid-cascade.
func (s *SingleFrequencySearch) Run(ctx context.Context) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	lo, hi := s.Device.Range()
	target := s.TargetFrequency
	if target == 0 {
		target = (lo + hi) / 2
	}
	idx := s.Device.NearestIndex(target)

	assignments := Enumerate(s.Topology, s.Catalog.Capacitors(), s.Catalog.Inductors())

	scores, err := sweepScores(ctx, s.Device, assignments, s.Workers,
		func(net *network.TwoPortNetwork) float64 {
			return cmplx.Abs(net.S11()[idx])
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

	res := s.buildResult(winner, assignments[best], target, [2]float64{lo, hi})
	res.Iterations = len(assignments)
	res.Duration = time.Since(start)
	return res, nil
}

func (s *SingleFrequencySearch) buildResult(winner *network.TwoPortNetwork, asg Assignment, target float64, frange [2]float64) *Result {
	targetZ := s.TargetImpedance
	if targetZ == 0 {
		targetZ = s.Device.Z0()
	}
	tolerance := s.ImpedanceTolerance
	if tolerance == 0 {
		tolerance = DefaultImpedanceTolerance
	}
	threshold := s.VSWRThreshold
	if threshold == 0 {
		threshold = DefaultVSWRThreshold
	}

	idx := winner.NearestIndex(target)
	gamma := winner.S11()[idx]

	// Point and band metrics share one magnitude kernel; mixing cmplx.Abs
	// with the batch kernel differs in the last ULP and can leave
	// MaxVSWRInBand below the point VSWR.
	mags := metrics.ReflectionMagnitude(winner.S11())
	gammaMag := mags[idx]
	impedance := metrics.ImpedanceFromReflection(gamma, winner.Z0())

	vswrTrace := make([]float64, len(mags))
	for i, m := range mags {
		vswrTrace[i] = metrics.VSWR(m)
	}
	maxVSWR := vswrTrace[0]
	for _, v := range vswrTrace[1:] {
		if v > maxVSWR {
			maxVSWR = v
		}
	}

	return &Result{
		Topology:        s.Topology,
		Placements:      append([]Placement(nil), asg...),
		Network:         winner,
		TargetFrequency: target,
		FrequencyRange:  frange,
		Reflection:      gammaMag,
		VSWR:            metrics.VSWR(gammaMag),
		ReturnLossDB:    metrics.ReturnLossDB(gammaMag),
		Impedance:       impedance,
		MaxVSWRInBand:   maxVSWR,
		BandwidthHz:     metrics.BandwidthBelow(vswrTrace, winner.Frequencies(), threshold),
		Matched:         metrics.IsMatched(impedance, targetZ, tolerance, threshold),
	}
}

// sweepScores evaluates every assignment in enumeration order and returns
// one score per assignment; combinations that fail to cascade score NaN.
//
// The parallel path writes into an index-addressed slice and the caller
// picks the winner by a sequential scan, so the first-encountered tie-break
// holds regardless of worker scheduling.
func sweepScores(ctx context.Context, device *network.TwoPortNetwork, assignments []Assignment, workers int, score func(*network.TwoPortNetwork) float64) ([]float64, error) {
	scores := make([]float64, len(assignments))

	if workers <= 1 {
		for i, asg := range assignments {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			net, err := cascade.Cascade(device, asg.elements())
			if err != nil {
				scores[i] = math.NaN()
				continue
			}
			scores[i] = score(net)
		}
		return scores, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, asg := range assignments {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			net, err := cascade.Cascade(device, asg.elements())
			if err != nil {
				scores[i] = math.NaN()
				return nil
			}
			scores[i] = score(net)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// argmin returns the index of the smallest score, ties broken toward the
// lower index. NaN entries never win. Returns -1 when no finite score
// exists.
func argmin(scores []float64) int {
	best := -1
	bestScore := math.Inf(1)
	for i, v := range scores {
		if v < bestScore {
			best = i
			bestScore = v
		}
	}
	return best
}
