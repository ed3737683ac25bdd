// Package match searches a component catalog for the lumped-element
// network that best matches a device's input impedance to a target.
//
// Two search strategies share one enumeration and cascade pipeline:
//
//   - [SingleFrequencySearch]: exhaustive grid search minimizing the
//     reflection magnitude at one target frequency
//   - [BandwidthSearch]: the same sweep scored by the worst-case VSWR
//     across a frequency band
//
// Both are deterministic: candidate tuples are enumerated in a fixed order
// and ties break toward the first tuple encountered, whether the sweep runs
// sequentially or across workers. [ScoreCandidate] additionally provides the
// weighted multi-metric objective used by continuous-value refinement.
//
// Searches do not filter candidates by frequency coverage; callers must
// pre-filter (see the catalog's FilterCoverage) or accept extrapolation
// artifacts from resampling.
package match
