// Package mvmatch is a maximum-cardinality-matching playground built on
// an in-memory, thread-safe graph container.
//
// 🚀 What is mvmatch?
//
//	A small, zero-dependency library that brings together:
//
//	  • Core primitives: create vertices & edges, mutate safely under locks
//	  • Maximum cardinality matching: the Micali–Vazirani algorithm over
//	    general (possibly non-bipartite) undirected graphs
//
// ✨ Why choose mvmatch?
//
//   - Beginner-friendly    — minimal API, clear, intuitive naming
//   - Rock-solid           — built-in R/W locks ensure thread-safety
//   - Fast                 — O(sqrt(V) * E), the best known bound for
//     general-graph maximum matching
//   - Pure Go              — no cgo, no hidden dependencies
//
// Under the hood, everything is organized under two subpackages:
//
//	core/  — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	match/ — the Micali–Vazirani maximum cardinality matching algorithm
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	MaximumMatching(g) pairs A-B and C-D (or A-C and B-D): cardinality 2.
//
//	go get github.com/katalvlaran/mvmatch
package mvmatch
