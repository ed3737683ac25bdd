package match

import (
	"github.com/cwbudde/algo-rf/rf/cascade"
	"github.com/cwbudde/algo-rf/rf/network"
)

// Enumerate generates every candidate assignment for a topology, in a fixed,
// stable order. The search layers iterate this order and break score ties
// toward the first tuple encountered, so the order is part of the contract.
//
// Two-element topologies (L-section) try four class pairings, each expanded
// as the full Cartesian product of the two candidate lists:
//
//	capacitor/inductor, inductor/capacitor, capacitor/capacitor,
//	inductor/inductor
//
// Pairings with an empty candidate list are skipped. Topologies with three
// or more positions draw every position from the combined catalog
// (capacitors first, then inductors) and expand the full Cartesian product.
func Enumerate(topo cascade.Topology, capacitors, inductors []network.Component) []Assignment {
	switch topo.Size() {
	case 0:
		return nil
	case 2:
		return enumeratePairings(topo, capacitors, inductors)
	default:
		combined := make([]network.Component, 0, len(capacitors)+len(inductors))
		combined = append(combined, capacitors...)
		combined = append(combined, inductors...)
		return enumerateProduct(topo, combined)
	}
}

func enumeratePairings(topo cascade.Topology, capacitors, inductors []network.Component) []Assignment {
	pairings := [][2][]network.Component{
		{capacitors, inductors},
		{inductors, capacitors},
		{capacitors, capacitors},
		{inductors, inductors},
	}

	var out []Assignment
	for _, pairing := range pairings {
		first, second := pairing[0], pairing[1]
		if len(first) == 0 || len(second) == 0 {
			continue
		}
		for _, a := range first {
			for _, b := range second {
				out = append(out, Assignment{
					{Component: a, Role: topo.Roles[0]},
					{Component: b, Role: topo.Roles[1]},
				})
			}
		}
	}
	return out
}

func enumerateProduct(topo cascade.Topology, candidates []network.Component) []Assignment {
	if len(candidates) == 0 {
		return nil
	}

	positions := topo.Size()
	total := 1
	for range positions {
		total *= len(candidates)
	}

	out := make([]Assignment, 0, total)
	indices := make([]int, positions)

	for {
		asg := make(Assignment, positions)
		for pos, idx := range indices {
			asg[pos] = Placement{Component: candidates[idx], Role: topo.Roles[pos]}
		}
		out = append(out, asg)

		// Advance odometer, last position fastest.
		pos := positions - 1
		for ; pos >= 0; pos-- {
			indices[pos]++
			if indices[pos] < len(candidates) {
				break
			}
			indices[pos] = 0
		}
		if pos < 0 {
			return out
		}
	}
}
