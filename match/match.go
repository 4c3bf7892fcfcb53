package match

import "fmt"

// Graph is the minimal read-only view MaximumMatching needs. A
// *core.Graph satisfies it directly; no other behavior is assumed.
type Graph interface {
	// Vertices returns every vertex ID. Order does not need to be
	// sorted, but repeated calls on an unmodified graph must return the
	// same order for MaximumMatching's determinism guarantee to hold.
	Vertices() []string

	// NeighborIDs returns the IDs adjacent to id. Duplicates (parallel
	// edges) may be returned as one or many; MaximumMatching treats
	// them as one edge either way.
	NeighborIDs(id string) ([]string, error)
}

// shapeChecker is an optional interface a Graph may additionally satisfy
// to let MaximumMatching reject directed or weighted input up front
// instead of silently matching over a graph shape it doesn't model.
type shapeChecker interface {
	Directed() bool
	Weighted() bool
}

// Options configures MaximumMatching.
type Options struct {
	// Debug enables the invariant assertions described in the package
	// doc: mate symmetry, bloom-base irreflexivity, and findPath's
	// level precondition. They panic on violation instead of returning
	// an error, since a violation means the algorithm itself is wrong,
	// not that the input was bad.
	Debug bool
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns the default configuration: debug assertions off.
func DefaultOptions() Options {
	return Options{Debug: false}
}

// WithDebugAssertions toggles the debug-only invariant checks.
func WithDebugAssertions(enabled bool) Option {
	return func(o *Options) { o.Debug = enabled }
}

// MatchResult is the read-only outcome of MaximumMatching.
type MatchResult struct {
	mate map[string]string
}

// Mate returns a copy of the computed matching, vertex ID to its partner.
// Unmatched vertices are absent from the map.
func (r *MatchResult) Mate() map[string]string {
	out := make(map[string]string, len(r.mate))
	for v, w := range r.mate {
		out[v] = w
	}

	return out
}

// Cardinality returns the number of matched edges.
func (r *MatchResult) Cardinality() int {
	return len(r.mate) / 2
}

// IsMatched reports whether id has a partner in the matching.
func (r *MatchResult) IsMatched(id string) bool {
	_, ok := r.mate[id]

	return ok
}

// PartnerOf returns id's matched partner, if any.
func (r *MatchResult) PartnerOf(id string) (string, bool) {
	v, ok := r.mate[id]

	return v, ok
}

// MaximumMatching computes a maximum cardinality matching over g by
// repeatedly running a phased level-BFS search for an augmenting path
// and applying it, until a phase finds none. g must be undirected and
// unweighted if it exposes Directed()/Weighted(); self-loops are
// ignored and parallel edges are treated as one.
func MaximumMatching(g Graph, opts ...Option) (*MatchResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if shaped, ok := g.(shapeChecker); ok {
		if shaped.Directed() {
			return nil, ErrDirectedGraph
		}
		if shaped.Weighted() {
			return nil, ErrWeightedGraph
		}
	}

	vertices := g.Vertices()
	mate := make(map[string]string, len(vertices))

	for {
		ps := newPhaseState(g, vertices, mate, cfg.Debug)
		augmented, err := ps.search()
		if err != nil {
			return nil, err
		}
		mate = ps.mate

		if cfg.Debug {
			for v, w := range mate {
				if mate[w] != v {
					panic(fmt.Sprintf("match: asymmetric mate pair %s<->%s", v, w))
				}
			}
		}

		if !augmented {
			break
		}
	}

	return &MatchResult{mate: mate}, nil
}
