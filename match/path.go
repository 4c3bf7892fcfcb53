package match

import "fmt"

// sameNonUnmarked reports whether a and b carry the same, non-unmarked
// mark color — the condition findPath uses to accept a candidate vertex
// that belongs to the same side of the search as its origin.
func sameNonUnmarked(a, b markColor) bool {
	return a == b && b != unmarked
}

// findPath walks the alternating predecessor structure from high down to
// low, accepting vertices that are either low itself, on the same
// search side as high, or inside a different bloom, and backtracking via
// parent pointers when a vertex's predecessor edges are exhausted. b, if
// non-nil, is the bloom currently being opened, so its own interior
// vertices are treated as ordinary (not alien) along the way.
//
// The resulting path (ordered high -> low) has its bloom-traversing
// segments spliced out by a second pass that recursively opens any
// interior bloom the walk passed through.
func (ps *phaseState) findPath(high, low string, b *bloom) []string {
	if ps.debug && ps.minLevel(high) < ps.minLevel(low) {
		panic(fmt.Sprintf("match: findPath precondition violated: level(%s) < level(%s)", high, low))
	}
	if high == low {
		return []string{high}
	}

	levelLow := ps.minLevel(low)
	v := high
	u := high
	for u != low {
		advanced := false
		for _, p := range ps.vs[v].predecessors {
			if ps.edgeVisited(p, v) {
				continue
			}
			advanced = true
			if ps.vs[v].bloom == nil || ps.vs[v].bloom == b {
				ps.markEdgeVisited(p, v)
				u = p
			} else {
				u = ps.vs[v].bloom.base
			}
			break
		}

		if !advanced {
			if ps.debug && !ps.vs[v].hasParent {
				panic(fmt.Sprintf("match: findPath stuck at %s with no parent", v))
			}
			v = ps.vs[v].parent
			continue
		}

		levelU := ps.minLevel(u)
		accept := !ps.vs[u].erased && levelU >= levelLow &&
			(u == low || (!ps.vs[u].visited &&
				(sameNonUnmarked(ps.vs[u].mark, ps.vs[high].mark) ||
					(ps.vs[u].bloom != nil && ps.vs[u].bloom != b))))
		if accept {
			ps.vs[u].visited = true
			ps.vs[u].parent, ps.vs[u].hasParent = v, true
			v = u
		}
	}

	var path []string
	for u != high {
		path = append(path, u)
		u = ps.vs[u].parent
	}
	path = append(path, high)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	j := 0
	for j < len(path)-1 {
		xj := path[j]
		if ps.vs[xj].bloom != nil && ps.vs[xj].bloom != b {
			ps.vs[xj].visited = false
			detour := ps.openBloom(xj)

			spliced := make([]string, 0, len(path)-2+len(detour))
			spliced = append(spliced, path[:j]...)
			spliced = append(spliced, detour...)
			spliced = append(spliced, path[j+2:]...)
			path = spliced

			if j > 0 {
				ps.vs[xj].parent, ps.vs[xj].hasParent = path[j-1], true
			} else {
				ps.vs[xj].hasParent = false
			}
			j += len(detour) - 1
		}
		j++
	}

	return path
}

// openBloom expands a single bloom-member vertex x into the alternating
// path that runs through the bloom's interior to its base, per the
// vertex's discovery parity and, for odd-parity members, which side
// (left/right) of the bloom-forming DFS it was marked on.
func (ps *phaseState) openBloom(x string) []string {
	b := ps.vs[x].bloom
	base := b.base

	if ps.minLevel(x)%2 == 0 {
		return ps.findPath(x, base, b)
	}

	if ps.vs[x].mark == left {
		pathLeft := ps.findPath(b.peakS, x, b)
		pathRight := ps.findPath(b.peakT, base, b)

		return ps.connectPath(pathLeft, pathRight, b.peakS, b.peakT)
	}

	pathLeft := ps.findPath(b.peakT, x, b)
	pathRight := ps.findPath(b.peakS, base, b)

	return ps.connectPath(pathLeft, pathRight, b.peakT, b.peakS)
}

// connectPath splices two high-to-low chains, pathL and pathR, into a
// single chain running from pathL's low end through s/t to pathR's low
// end. pathL is reversed (list order and parent pointers both) when s is
// its head, and pathR when t is its tail, so the combined parent chain
// always runs consistently from the returned slice's last element back
// to its first.
func (ps *phaseState) connectPath(pathL, pathR []string, s, t string) []string {
	reverseL := len(pathL) > 0 && s == pathL[0]
	reverseR := len(pathR) > 0 && t == pathR[len(pathR)-1]

	if reverseL {
		pathL = ps.reverseChain(pathL)
	}
	if reverseR {
		pathR = ps.reverseChain(pathR)
	}

	path := make([]string, 0, len(pathL)+len(pathR))
	path = append(path, pathL...)
	path = append(path, pathR...)

	if len(pathR) > 0 {
		if len(pathL) > 0 {
			ps.vs[pathR[0]].parent, ps.vs[pathR[0]].hasParent = pathL[len(pathL)-1], true
		} else {
			ps.vs[pathR[0]].hasParent = false
		}
	}

	return path
}

// reverseChain inverts both the list order and the parent-pointer
// direction of an alternating path built by findPath, turning a chain
// that pointed from its tail back to its head into one that again points
// from its (new) tail back to its (new) head.
func (ps *phaseState) reverseChain(path []string) []string {
	ps.vs[path[0]].hasParent = false

	var prev string
	hasPrev := false
	current := path[len(path)-1]
	for {
		hasNext := ps.vs[current].hasParent
		var next string
		if hasNext {
			next = ps.vs[current].parent
		}
		ps.vs[current].parent, ps.vs[current].hasParent = prev, hasPrev
		prev, hasPrev = current, true
		if !hasNext {
			break
		}
		current = next
	}

	out := make([]string, len(path))
	for i, v := range path {
		out[len(path)-1-i] = v
	}

	return out
}
