package diplomacy

// NewRetreat initializes a Retreat order for a dislodged unit, defaulting
// its order to Disband (RetreatTarget == -1) until the player replaces it
// with a Move to a non-forbidden location. The sequencer's forbidden set
// (retreatForbiddenSets) holds the attacker's origin province, every
// province occupied after movement, and every standoff province.
func NewRetreat(u *Unit, forbidden map[int]bool) *Order {
	return &Order{
		Kind:             KindRetreat,
		Owner:            u.Owner,
		Unit:             u,
		RetreatForbidden: forbidden,
		RetreatTarget:    -1,
	}
}

// ResolveRetreats iterates every Retreat order in the collection until
// legal/disbands are both decided for all of them. Resolution
// terminates because each pass must decide at least one previously
// undecided retreat or none remain to decide.
func ResolveRetreats(m *Map, oc *OrderCollection) error {
	retreats := retreatOrders(oc)
	for _, r := range retreats {
		r.retreatLegal = Unknown
		r.retreatDisbands = Unknown
	}

	for {
		progressed := false
		for _, r := range retreats {
			if r.retreatLegal.Decided() && r.retreatDisbands.Decided() {
				continue
			}
			if resolveOneRetreat(m, retreats, r) {
				progressed = true
			}
		}
		allDone := true
		for _, r := range retreats {
			if !(r.retreatLegal.Decided() && r.retreatDisbands.Decided()) {
				allDone = false
				break
			}
		}
		if allDone {
			return nil
		}
		if !progressed {
			return NewAdjudicationError("Retreats", len(oc.Unresolved()))
		}
	}
}

func retreatOrders(oc *OrderCollection) []*Order {
	var out []*Order
	for _, o := range oc.All() {
		if o.Kind == KindRetreat {
			out = append(out, o)
		}
	}
	return out
}

func resolveOneRetreat(m *Map, all []*Order, r *Order) bool {
	before := r.retreatLegal
	beforeD := r.retreatDisbands

	if r.RetreatTarget < 0 {
		r.retreatLegal = True
		r.retreatDisbands = True
		return r.retreatLegal != before || r.retreatDisbands != beforeD
	}

	targetProvince := m.Locations[r.RetreatTarget].ProvinceID
	reachable := m.ReachesLocation(r.Unit.Location, m.Locations[r.RetreatTarget])
	if r.RetreatForbidden[targetProvince] || !reachable {
		r.retreatLegal = False
		r.retreatDisbands = True
		return true
	}
	r.retreatLegal = True

	if r.retreatDisbands == Unknown {
		anyOtherLegalSameTarget := false
		allOthersIllegal := true
		allOthersDecided := true
		for _, other := range all {
			if other == r || other.RetreatTarget < 0 {
				continue
			}
			if m.Locations[other.RetreatTarget].ProvinceID != targetProvince {
				continue
			}
			if other.retreatLegal == True {
				anyOtherLegalSameTarget = true
				allOthersIllegal = false
			} else if other.retreatLegal == Unknown {
				allOthersDecided = false
				allOthersIllegal = false
			}
		}
		if anyOtherLegalSameTarget {
			r.retreatDisbands = True
		} else if allOthersIllegal && allOthersDecided {
			r.retreatDisbands = False
		}
	}

	return r.retreatLegal != before || r.retreatDisbands != beforeD
}
