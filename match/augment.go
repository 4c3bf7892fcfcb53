package match

// augmentMatching flips every unmatched pair along the parent chain
// from rv back to lv, installing a new mate for each. Pairs that are
// already mated to each other are left untouched, since the chain can
// pass back through an edge that's already part of the matching.
func (ps *phaseState) augmentMatching(lv, rv string) {
	first := rv
	for first != lv {
		second := ps.vs[first].parent
		if ps.mate[second] != first {
			ps.mate[first] = second
			ps.mate[second] = first
		}
		first = second
	}
}

// erasePath marks every vertex on the augmenting path erased and
// cascades the erasure to successors whose every predecessor has now
// been erased, via a count of still-live predecessor edges maintained
// during the search scan.
func (ps *phaseState) erasePath(path []string) {
	worklist := append([]string(nil), path...)
	for len(worklist) > 0 {
		y := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		ps.vs[y].erased = true
		for _, z := range ps.vs[y].successors {
			zs := ps.vs[z]
			if zs.erased {
				continue
			}
			zs.count--
			if zs.count == 0 {
				worklist = append(worklist, z)
			}
		}
	}
}
