// Package match computes a maximum cardinality matching on a general
// (possibly non-bipartite) undirected simple graph, using the
// Micali–Vazirani algorithm in the phased-search / bloom-DFS form
// described by Peterson & Loui.
//
// What
//
//   - Grows a matching one augmenting path at a time. Each phase runs a
//     single level-BFS from every currently unmatched vertex, classifies
//     every edge encountered as a tree edge or a bridge, and resolves
//     bridges via a double DFS that either finds an augmenting path or
//     collapses a blossom (a "bloom") so the search can continue past it.
//   - Returns a MatchResult wrapping the final vertex-to-partner map.
//
// Why
//
//   - Maximum matching underlies assignment problems, scheduling, and a
//     wide range of combinatorial optimizations that reduce to "pair up
//     as many things as possible" without needing weights.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(sqrt(V) * E)
//   - Memory: O(V + E) per phase; state is rebuilt fresh every phase.
//
// Scope
//
//   - Undirected, unweighted, simple graphs only. Weighted, directed,
//     multigraph, online, and parallel variants are out of scope; see
//     ErrDirectedGraph / ErrWeightedGraph.
//   - Self-loops are ignored; parallel edges are treated as one.
//
// Determinism
//
//	Given a Graph adapter whose Vertices() and NeighborIDs() return the
//	same order on repeated calls over an unmodified graph, MaximumMatching
//	returns the same matching every time.
//
// Usage
//
//	result, err := match.MaximumMatching(g)
//	if err != nil {
//	    // ErrNilGraph, ErrDirectedGraph, ErrWeightedGraph
//	}
//	fmt.Println(result.Cardinality(), result.Mate())
//
// Options
//
//   - DefaultOptions(): debug assertions off.
//   - WithDebugAssertions(true): panics on an internal invariant
//     violation (mate symmetry, bloom-base irreflexivity, findPath's
//     level precondition) instead of silently producing a wrong answer.
package match
