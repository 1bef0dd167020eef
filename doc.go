// Package algokit is a library of classic algorithm reference
// implementations — graph search, all-pairs shortest paths, exact
// combinatorial solvers, string scanning, coding, and number theory —
// each in its own focused package with a small, explicit API.
//
// 🚀 What is algokit?
//
//	A collection of self-contained solvers, one algorithm family per
//	package:
//		• astar         — A* shortest path with a grid-derived Manhattan heuristic
//		• dijkstra      — single-source shortest paths, lazy decrease-key
//		• floydwarshall — all-pairs shortest paths + negative-cycle detection
//		• connectivity  — articulation points, bridges, Tarjan SCC (iterative)
//		• toposort      — Kahn's topological ordering with cycle detection
//		• euler         — Eulerian paths/circuits in directed multigraphs
//		• hamilton      — Hamiltonian path enumeration and bitmask-DP counting
//		• tsp           — exact Held–Karp with tour reconstruction
//		• strmatch      — KMP, Z-function, largest suffix, shunting yard
//		• huffman       — prefix-code build, encode/decode round trip
//		• numtheory     — GCD/LCM, modular power, sieve, binomials mod prime
//
// ✨ Why choose algokit?
//
//   - Predictable – deterministic tie-breaking everywhere, pinned by tests
//   - Explicit errors – per-package sentinels, wrapped with context
//   - Pure Go – no cgo; testify is the only (test-time) dependency
//   - Documented – every package states its complexity and error contract
//
// Quick ASCII example (the astar package's home turf):
//
//	    0───1───2        grid cells become vertices; the Manhattan
//	    │       │        distance to the destination cell is the
//	    3───4───5        admissible heuristic steering the search
//
// Each package is importable on its own:
//
//	import "github.com/mkravets/algokit/astar"
//
// See the per-package documentation for API details and runnable
// Example functions.
package algokit
