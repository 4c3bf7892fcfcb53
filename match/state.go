package match

// unreachableLevel is the sentinel level for a vertex not yet reached by
// the current phase's search. Chosen well above any real level (which
// never exceeds the vertex count) so arithmetic on real levels never
// collides with it.
const unreachableLevel = 1 << 30

// markColor records which side of a bloom-forming DFS a vertex was
// discovered on, or unmarked if it hasn't been touched this call.
type markColor int8

const (
	unmarked markColor = iota
	left
	right
)

// bloom is a generalized blossom discovered while connecting two
// candidate vertices at the same level. peakS/peakT are the bridge
// endpoints that triggered its formation; base is the vertex the bloom
// collapses to for the remainder of the phase.
type bloom struct {
	peakS, peakT string
	base         string
}

// vertexState holds the per-phase, per-vertex attributes the search
// and DFS steps read and mutate. A fresh set is allocated for every
// phase; nothing here survives across phases except via the mate map
// held by the caller.
type vertexState struct {
	evenLevel int
	oddLevel  int

	bloom *bloom

	predecessors []string
	successors   []string
	anomalies    []string

	count int

	erased  bool
	visited bool

	mark markColor

	parent    string
	hasParent bool
}

// edgeAttrs holds the per-phase attributes of an undirected edge,
// keyed by its unordered endpoint pair so both traversal directions
// observe the same state.
type edgeAttrs struct {
	used    bool
	visited bool
}

// edgeKey canonicalizes an unordered vertex pair so (u,v) and (v,u)
// hash to the same map entry.
type edgeKey struct {
	a, b string
}

func makeEdgeKey(u, v string) edgeKey {
	if u <= v {
		return edgeKey{a: u, b: v}
	}

	return edgeKey{a: v, b: u}
}

// bridgeEdge is a candidate bridge recorded at a given level during the
// search phase, with endpoints in the canonical order they were
// discovered (s from the "left" side of the scan, t from the "right").
type bridgeEdge struct {
	s, t string
}

// phaseState is the full mutable state of a single search phase: one
// level-BFS plus the bridge processing (blossom formation and
// augmentation) it triggers. It is rebuilt from scratch at the start
// of every phase in MaximumMatching's outer loop.
type phaseState struct {
	g Graph
	n int

	vs map[string]*vertexState
	es map[edgeKey]*edgeAttrs

	mate map[string]string

	candidates [][]string
	bridges    [][]bridgeEdge
	bridgeSeen []map[edgeKey]bool

	debug bool
}

// newPhaseState allocates a fresh phase over the given vertex set,
// seeded with the current mate map (copied, never shared with the
// caller's).
func newPhaseState(g Graph, vertices []string, mate map[string]string, debug bool) *phaseState {
	n := len(vertices)
	ps := &phaseState{
		g:          g,
		n:          n,
		vs:         make(map[string]*vertexState, n),
		es:         make(map[edgeKey]*edgeAttrs),
		mate:       make(map[string]string, len(mate)),
		candidates: make([][]string, n+2),
		bridges:    make([][]bridgeEdge, n+2),
		bridgeSeen: make([]map[edgeKey]bool, n+2),
		debug:      debug,
	}
	for i := range ps.bridgeSeen {
		ps.bridgeSeen[i] = make(map[edgeKey]bool)
	}
	for v, w := range mate {
		ps.mate[v] = w
	}
	for _, v := range vertices {
		ps.vs[v] = &vertexState{evenLevel: unreachableLevel, oddLevel: unreachableLevel}
	}

	return ps
}

// minLevel returns the lesser of a vertex's even/odd level, the value
// search and findPath compare against.
func (ps *phaseState) minLevel(v string) int {
	s := ps.vs[v]
	if s.evenLevel < s.oddLevel {
		return s.evenLevel
	}

	return s.oddLevel
}

func (ps *phaseState) edgeState(u, v string) *edgeAttrs {
	k := makeEdgeKey(u, v)
	e, ok := ps.es[k]
	if !ok {
		e = &edgeAttrs{}
		ps.es[k] = e
	}

	return e
}

func (ps *phaseState) edgeUsed(u, v string) bool    { return ps.edgeState(u, v).used }
func (ps *phaseState) markEdgeUsed(u, v string)     { ps.edgeState(u, v).used = true }
func (ps *phaseState) edgeVisited(u, v string) bool { return ps.edgeState(u, v).visited }
func (ps *phaseState) markEdgeVisited(u, v string)  { ps.edgeState(u, v).visited = true }

// neighbors returns the unique neighbor IDs of v, in the adapter's order,
// with v itself filtered out, so self-loops never appear as a candidate
// edge and parallel edges count as one.
func (ps *phaseState) neighbors(v string) ([]string, error) {
	ids, err := ps.g.NeighborIDs(v)
	if err != nil {
		return nil, err
	}

	filtered := ids[:0]
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == v || seen[id] {
			continue
		}
		seen[id] = true
		filtered = append(filtered, id)
	}

	return filtered, nil
}

// addBridge records a candidate bridge at the given level, deduplicating
// the unordered pair so the same edge is never queued twice at one level.
func (ps *phaseState) addBridge(level int, u, v string) {
	k := makeEdgeKey(u, v)
	if ps.bridgeSeen[level][k] {
		return
	}
	ps.bridgeSeen[level][k] = true
	ps.bridges[level] = append(ps.bridges[level], bridgeEdge{s: u, t: v})
}
