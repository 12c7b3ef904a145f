// Package ballcover builds Besicovitch-style ball coverings: given points
// with candidate radii in a finite-dimensional normed space, it greedily
// selects a sequence of closed balls that covers every input point and
// partitions the selection into a bounded number of pairwise-disjoint
// color classes.
//
// 🚀 What is ballcover?
//
//	A deterministic, zero-runtime-dependency geometric toolkit:
//		• geom    — d-dimensional vectors, closed balls, Lebesgue volume
//		• packing — multiplicity bound M, separation slack δ, expansion τ
//		• cover   — greedy selection, coverage tracking, first-fit coloring
//
// ✨ Why choose ballcover?
//
//   - Deterministic – fixed tie-breaks, no randomness, reproducible output
//   - Rock-solid contracts – strict sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Proven bounds – color budget derived from the volume-packing argument
//
// Quick ASCII example (one dimension, unit radii):
//
//	points:   0━━━0.6━━━━1.3━━━━━━━━━━3.0
//	selected: [-1,1]   [0.3,2.3]   [2,4]
//	colors:      0          1        0
//
// Start with cover.Run; see each subpackage's doc.go for details.
package ballcover
