package match

// search runs one level-BFS phase over ps: it alternates even/odd level
// scans, classifying every freshly discovered edge as either a tree edge
// (extends a candidate to the next level) or a bridge (connects two
// vertices already at the same parity), and resolves bridges as soon as
// all of a level's scanning is done. It returns true if an augmenting
// path was found and applied during this phase.
func (ps *phaseState) search() (bool, error) {
	for _, v := range ps.g.Vertices() {
		if _, matched := ps.mate[v]; !matched {
			ps.vs[v].evenLevel = 0
			ps.candidates[0] = append(ps.candidates[0], v)
		}
	}

	augmented := false
	for i := 0; i <= ps.n && !augmented; i++ {
		var err error
		if i%2 == 0 {
			err = ps.scanEvenLevel(i)
		} else {
			err = ps.scanOddLevel(i)
		}
		if err != nil {
			return false, err
		}

		for _, br := range ps.bridges[i] {
			if !ps.vs[br.s].erased && !ps.vs[br.t].erased {
				if ps.augmentBlossom(br.s, br.t, i) {
					augmented = true
				}
			}
		}
	}

	return augmented, nil
}

// scanEvenLevel processes candidates[i] for an even i: every unmatched,
// unerased neighbor u of v is either a bridge (u already has a finite
// even level), a new tree edge extending to level i+1 (u's odd level is
// first set here), or an anomaly (u's odd level was fixed at an earlier,
// incompatible level).
func (ps *phaseState) scanEvenLevel(i int) error {
	for _, v := range ps.candidates[i] {
		if ps.vs[v].erased {
			continue
		}

		nbrs, err := ps.neighbors(v)
		if err != nil {
			return err
		}

		for _, u := range nbrs {
			if ps.mate[v] == u {
				continue
			}
			us := ps.vs[u]
			if us.erased {
				continue
			}

			if us.evenLevel < unreachableLevel {
				j := (us.evenLevel + ps.vs[v].evenLevel) / 2
				ps.addBridge(j, u, v)
				continue
			}

			if us.oddLevel == unreachableLevel {
				us.oddLevel = i + 1
			}
			if us.oddLevel == i+1 {
				us.count++
				us.predecessors = append(us.predecessors, v)
				ps.vs[v].successors = append(ps.vs[v].successors, u)
				ps.candidates[i+1] = append(ps.candidates[i+1], u)
			} else if us.oddLevel < i {
				us.anomalies = append(us.anomalies, v)
			}
		}
	}

	return nil
}

// scanOddLevel processes candidates[i] for an odd i: every v not
// currently inside a bloom has exactly one partner, mate(v); that edge
// is either a bridge (mate(v) already has a finite odd level) or a new
// tree edge extending mate(v) to even level i+1.
func (ps *phaseState) scanOddLevel(i int) error {
	for _, v := range ps.candidates[i] {
		if ps.vs[v].erased || ps.vs[v].bloom != nil {
			continue
		}

		u, matched := ps.mate[v]
		if !matched {
			continue
		}
		us := ps.vs[u]

		if us.oddLevel < unreachableLevel {
			j := (us.oddLevel + ps.vs[v].oddLevel) / 2
			ps.addBridge(j, u, v)
			continue
		}

		if us.evenLevel == unreachableLevel {
			us.predecessors = []string{v}
			ps.vs[v].successors = []string{u}
			us.count = 1
			us.evenLevel = i + 1
			ps.candidates[i+1] = append(ps.candidates[i+1], u)
		}
	}

	return nil
}
