// Package npuzzle is your in-memory playground for solving and comparing
// the classic sliding-tile puzzles (8/15/24) with uninformed and informed
// search.
//
// 🚀 What is npuzzle?
//
//	A modern, deterministic, zero-dependency library that brings together:
//		• Board primitives: immutable states, blank moves, successor generation
//		• Solvability: inversion-parity checks before any search runs
//		• Uninformed search: BFS, depth-bounded DFS, Iterative Deepening
//		• Informed search: Greedy best-first and A* with admissible heuristics
//		• Heuristics: Misplaced Tiles, Manhattan, Manhattan + Linear Conflict
//		• Metrics: sequential algorithm comparison, ranking, CSV/JSON export
//
// ✨ Why choose npuzzle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – fixed successor order, seeded scrambles, stable tie-breaks
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hooks (OnExpand) and functional options on every search
//
// Under the hood, everything is organized under four subpackages:
//
//	puzzle/    — State, Move, Puzzle, solvability, presets & scrambles
//	heuristic/ — admissible estimators and selection by identifier
//	search/    — BFS, DFS, IDS, Greedy, A* with shared limits & results
//	metrics/   — comparison runs, ranking and reporting over search results
//
// Quick ASCII example:
//
//	    1 2 3
//	    4 · 6      two blank moves from the goal: DOWN, then RIGHT
//	    7 5 8
//
// Dive into README.md and examples/ for full scenarios and the feature
// matrix.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
