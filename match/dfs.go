package match

import "fmt"

// dfsInfo tracks the state of the double DFS that augmentBlossom runs to
// either find an augmenting path or close a new bloom between s and t.
type dfsInfo struct {
	s, t    string
	vL, vR  string
	dcv     string
	barrier string
}

// augmentBlossom resolves the bridge (s,t) discovered at the given
// level: it walks two DFS pointers, vL from s and vR from t, inward
// through predecessor edges until either they meet an exposed vertex
// (producing an augmenting path) or a deepest common vertex (closing a
// new bloom). Returns true if it applied an augmentation.
func (ps *phaseState) augmentBlossom(s, t string, level int) bool {
	vL := s
	if ps.vs[s].bloom != nil {
		vL = ps.baseStar(s)
	}
	vR := t
	if ps.vs[t].bloom != nil {
		vR = ps.baseStar(t)
	}
	if vL == vR {
		return false
	}

	if ps.vs[s].bloom != nil {
		ps.vs[vL].parent, ps.vs[vL].hasParent = s, true
	}
	if ps.vs[t].bloom != nil {
		ps.vs[vR].parent, ps.vs[vR].hasParent = t, true
	}
	ps.vs[vL].mark = left
	ps.vs[vR].mark = right

	bloomNodes := []string{vL, vR}
	info := &dfsInfo{s: s, t: t, vL: vL, vR: vR, barrier: vR}

	foundBloom := false
	augmented := false
	for !foundBloom && !augmented {
		if info.vL == "" || info.vR == "" {
			return false
		}

		_, vLMatched := ps.mate[info.vL]
		_, vRMatched := ps.mate[info.vR]
		if !vLMatched && !vRMatched {
			pathL := ps.findPath(s, info.vL, nil)
			pathR := ps.findPath(t, info.vR, nil)
			path := ps.connectPath(pathL, pathR, s, t)
			ps.augmentMatching(info.vL, info.vR)
			ps.erasePath(path)
			augmented = true
			break
		}

		if ps.minLevel(info.vL) >= ps.minLevel(info.vR) {
			foundBloom = ps.leftDfs(info, &bloomNodes)
		} else {
			foundBloom = ps.rightDfs(info, &bloomNodes)
		}
	}

	if foundBloom && info.dcv != "" {
		ps.installBloom(s, t, level, info.dcv, bloomNodes)
	}

	return augmented
}

// installBloom promotes the collected bloomNodes into a new bloom based
// at dcv, lifting each member's opposite-parity level per the standard
// 2*level+1 formula and re-registering anomaly edges as fresh bridges.
func (ps *phaseState) installBloom(s, t string, level int, dcv string, bloomNodes []string) {
	ps.vs[dcv].mark = unmarked
	b := &bloom{peakS: s, peakT: t, base: dcv}

	for _, v := range bloomNodes {
		vs := ps.vs[v]
		if vs.mark == unmarked || vs.bloom != nil {
			continue
		}
		vs.bloom = b

		if ps.minLevel(v)%2 == 0 {
			vs.oddLevel = 2*level + 1 - vs.evenLevel
			continue
		}

		vs.evenLevel = 2*level + 1 - vs.oddLevel
		ps.candidates[vs.evenLevel] = append(ps.candidates[vs.evenLevel], v)
		for _, z := range vs.anomalies {
			j := (vs.evenLevel + ps.vs[z].evenLevel) / 2
			if ps.debug && (vs.evenLevel+ps.vs[z].evenLevel)%2 != 0 {
				panic(fmt.Sprintf("match: odd bridge-level sum for anomaly %s-%s", v, z))
			}
			ps.addBridge(j, v, z)
			ps.markEdgeUsed(v, z)
		}
	}
}

// leftDfs advances the left DFS pointer one predecessor edge at a time,
// marking each traversed edge used so it is never retraced, and records
// the deepest common vertex if it meets the right side's mark.
func (ps *phaseState) leftDfs(info *dfsInfo, bloomNodes *[]string) bool {
	for _, raw := range ps.vs[info.vL].predecessors {
		uL := raw
		if ps.edgeUsed(info.vL, uL) || ps.vs[uL].erased {
			continue
		}
		ps.markEdgeUsed(info.vL, uL)
		if ps.vs[uL].bloom != nil {
			uL = ps.baseStar(uL)
		}

		if ps.vs[uL].mark == unmarked {
			ps.vs[uL].mark = left
			ps.vs[uL].parent, ps.vs[uL].hasParent = info.vL, true
			info.vL = uL
			*bloomNodes = append(*bloomNodes, uL)
			return false
		}
		if uL == info.vR {
			info.dcv = uL
		}
	}

	if info.vL == info.s {
		return true
	}
	if ps.vs[info.vL].hasParent {
		info.vL = ps.vs[info.vL].parent
	}

	return false
}

// rightDfs is leftDfs's mirror, with the added barrier mechanism: once
// the right pointer exhausts the predecessors below its current barrier,
// it jumps to the deepest common vertex found so far and forces the
// left pointer to backtrack one step, so the two sides never cross
// without meeting.
func (ps *phaseState) rightDfs(info *dfsInfo, bloomNodes *[]string) bool {
	for _, raw := range ps.vs[info.vR].predecessors {
		uR := raw
		if ps.edgeUsed(info.vR, uR) || ps.vs[uR].erased {
			continue
		}
		ps.markEdgeUsed(info.vR, uR)
		if ps.vs[uR].bloom != nil {
			uR = ps.baseStar(uR)
		}

		if ps.vs[uR].mark == unmarked {
			ps.vs[uR].mark = right
			ps.vs[uR].parent, ps.vs[uR].hasParent = info.vR, true
			info.vR = uR
			*bloomNodes = append(*bloomNodes, uR)
			return false
		}
		if uR == info.vL {
			info.dcv = uR
		}
	}

	if info.vR == info.barrier {
		info.vR = info.dcv
		info.barrier = info.dcv
		if info.vR != "" {
			ps.vs[info.vR].mark = right
		}
		if ps.vs[info.vL].hasParent {
			info.vL = ps.vs[info.vL].parent
		}
	} else if ps.vs[info.vR].hasParent {
		info.vR = ps.vs[info.vR].parent
	}

	return false
}
