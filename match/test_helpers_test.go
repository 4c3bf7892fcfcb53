// Package match_test contains test helpers for mvmatch/match.
//
// Purpose:
//   - Provide small, deterministic fixtures for building test graphs.
//   - Provide a brute-force reference matcher used as an oracle for the
//     random-graph property suite.

package match_test

import (
	"sort"

	"github.com/katalvlaran/mvmatch/core"
)

// edge is a plain (u,v) pair used to describe a test graph independently
// of core.Graph, so the same edge list can feed both MaximumMatching and
// the brute-force oracle.
type edge struct{ u, v string }

// buildGraph returns a *core.Graph with one undirected edge per pair in
// edges. The graph lists its vertices sorted by ID; a duplicate edge is
// harmless since the default graph rejects it (ErrMultiEdgeNotAllowed,
// ignored here) and keeps the first copy.
func buildGraph(edges []edge) *core.Graph {
	g := core.NewGraph()
	for _, e := range edges {
		_, _ = g.AddEdge(e.u, e.v, 0)
	}

	return g
}

// graphWithLoops returns an empty *core.Graph configured to permit
// self-loops, for tests that specifically exercise loop-handling.
func graphWithLoops() *core.Graph {
	return core.NewGraph(core.WithLoops())
}

// vertexSet returns the sorted, deduplicated vertex IDs touched by edges.
func vertexSet(edges []edge) []string {
	seen := make(map[string]bool)
	for _, e := range edges {
		seen[e.u] = true
		seen[e.v] = true
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// bruteForceMaxMatching returns the maximum cardinality of any matching
// over the graph described by vertices/edges, by exhaustive backtracking.
// Feasible for small vertex counts (the random property suite keeps n
// within that range); used only as a correctness oracle in tests, never
// in production code.
func bruteForceMaxMatching(vertices []string, edges []edge) int {
	adj := make(map[string][]string, len(vertices))
	for _, e := range edges {
		if e.u == e.v {
			continue
		}
		adj[e.u] = append(adj[e.u], e.v)
		adj[e.v] = append(adj[e.v], e.u)
	}

	used := make(map[string]bool, len(vertices))

	var best int
	var rec func(idx int, count int)
	rec = func(idx int, count int) {
		for idx < len(vertices) && used[vertices[idx]] {
			idx++
		}
		if idx == len(vertices) {
			if count > best {
				best = count
			}
			return
		}

		v := vertices[idx]
		used[v] = true

		// Branch 1: leave v unmatched.
		rec(idx+1, count)

		// Branch 2: match v with each available neighbor.
		for _, w := range adj[v] {
			if used[w] {
				continue
			}
			used[w] = true
			rec(idx+1, count+1)
			used[w] = false
		}

		used[v] = false
	}
	rec(0, 0)

	return best
}

// isValidMatching reports whether mate is a symmetric, conflict-free
// matching over the graph described by edges: every (v,mate[v]) pair is
// a real edge, no vertex appears twice, and mate[mate[v]]==v throughout.
func isValidMatching(mate map[string]string, edges []edge) bool {
	edgeSet := make(map[edge]bool, len(edges)*2)
	for _, e := range edges {
		if e.u == e.v {
			continue
		}
		edgeSet[edge{e.u, e.v}] = true
		edgeSet[edge{e.v, e.u}] = true
	}

	for v, w := range mate {
		if v == w {
			return false
		}
		if mate[w] != v {
			return false
		}
		if !edgeSet[edge{v, w}] {
			return false
		}
	}

	return true
}
