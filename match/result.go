package match

import (
	"time"

	"github.com/cwbudde/algo-rf/rf/cascade"
	"github.com/cwbudde/algo-rf/rf/network"
)

// Placement assigns one catalog component to a topology position.
type Placement struct {
	// Component is the catalog candidate.
	Component network.Component

	// Role is the connection role at this position.
	Role cascade.Role
}

// Assignment is one ordered tuple of placements filling every position of a
// topology.
type Assignment []Placement

// elements converts the assignment into cascade elements.
func (a Assignment) elements() []cascade.Element {
	out := make([]cascade.Element, len(a))
	for i, p := range a {
		out[i] = cascade.Element{Network: p.Component.Network, Role: p.Role}
	}
	return out
}

// Result is the outcome of one search invocation. Immutable once returned.
type Result struct {
	// Topology is the topology that was searched.
	Topology cascade.Topology

	// Placements lists the winning components in topology order.
	Placements []Placement

	// Network is the cascaded equivalent two-port of device plus winners.
	Network *network.TwoPortNetwork

	// TargetFrequency is the frequency the point metrics below refer to
	// (the search target, or the band center for band-aware searches).
	TargetFrequency float64

	// FrequencyRange is the band the search covered.
	FrequencyRange [2]float64

	// Reflection is |S11| of the cascaded network at TargetFrequency.
	Reflection float64

	// VSWR at TargetFrequency.
	VSWR float64

	// ReturnLossDB at TargetFrequency.
	ReturnLossDB float64

	// Impedance is the cascaded input impedance at TargetFrequency.
	Impedance complex128

	// MaxVSWRInBand is the worst VSWR across the searched band.
	MaxVSWRInBand float64

	// BandwidthHz is the total bandwidth over which the cascaded VSWR
	// stays below the search's VSWR threshold.
	BandwidthHz float64

	// Matched reports whether the winner meets the match criteria:
	// impedance within tolerance of the target OR VSWR at or below the
	// threshold. Either criterion alone suffices.
	Matched bool

	// Iterations is the number of candidate combinations examined.
	Iterations int

	// Duration is the wall-clock time the search took.
	Duration time.Duration
}
