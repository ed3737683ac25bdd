// Package network defines the immutable frequency-domain data model shared
// by the matching core:
//
//   - [FrequencySeries]: a strictly increasing frequency axis paired with
//     named complex-valued traces of equal length
//   - [TwoPortNetwork]: the four S-parameters of a two-port plus a reference
//     impedance, covering both devices under test and catalog components
//   - [Component] and [Catalog]: a searchable collection of candidate
//     matching elements partitioned into capacitor-like and inductor-like
//     classes
//
// All precondition checks (empty axes, non-monotonic frequencies, length
// mismatches, non-positive reference impedance) happen at construction time.
// Once built, values are read-only; the cascade and search layers never
// mutate them.
package network
