package diplomacy

// Adjudicate resolves the current phase's orders, applies their side
// effects, advances the season, archives the new position, and constructs
// the next phase's order collection. If the resulting phase turns
// out to be vacuous (nothing for a player to decide — no dislodgements to
// retreat, no adjustments to make) and hold is false, it recurses straight
// through to the next phase instead of stopping at an empty one.
func (gs *GameState) Adjudicate(hold bool) error {
	if gs.Winner != nil {
		return NewGameError(string(gs.Season.Phase()), "game already concluded")
	}

	var err error
	switch gs.Season.Phase() {
	case Pregame:
		// Nothing to resolve; Pregame only ever holds the starting deployment.
	case Diplomacy:
		err = gs.resolveDiplomacyPhase()
	case Retreats:
		err = gs.resolveRetreatPhase()
	case Builds:
		err = gs.resolveBuildPhase()
	default:
		return NewGameError(string(gs.Season.Phase()), "cannot adjudicate a concluded game")
	}
	if err != nil {
		return err
	}

	gs.OrderLog.Append(snapshotOrders(gs, gs.Orders))

	gs.Season.Progress(1)
	gs.Orders = gs.nextOrderCollection()
	gs.checkWinner()
	if gs.Winner != nil {
		gs.Season.Conclude()
	}
	gs.Positions.Append(snapshotPosition(gs))

	if gs.Winner == nil && !hold && gs.Orders.Len() == 0 && gs.Season.Phase() != Diplomacy {
		return gs.Adjudicate(false)
	}
	return nil
}

// resolveDiplomacyPhase resolves the Movement phase, relocates successful
// movers, and records which units were dislodged for the retreat phase
// that nextOrderCollection will construct if needed.
func (gs *GameState) resolveDiplomacyPhase() error {
	if err := ResolveDiplomacy(gs.Map, gs.Orders); err != nil {
		return err
	}

	dislodgedBy := map[*Unit]*Order{}
	for _, o := range gs.Orders.All() {
		if o.Kind != KindMove || !o.Succeeds() {
			continue
		}
		targetProvince := gs.Map.Locations[o.Target].ProvinceID
		if victim := gs.UnitAt(targetProvince); victim != nil && victim != o.Unit {
			if vo := gs.Orders.OrderOf(victim); vo == nil || !vo.Succeeds() {
				dislodgedBy[victim] = o
			}
		}
	}

	for _, o := range gs.Orders.All() {
		if o.Kind == KindMove && o.Succeeds() {
			o.Unit.Location = gs.Map.Locations[o.Target]
		}
	}

	gs.dislodged = dislodgedBy
	return nil
}

func (gs *GameState) resolveRetreatPhase() error {
	if err := ResolveRetreats(gs.Map, gs.Orders); err != nil {
		return err
	}
	for _, o := range gs.Orders.All() {
		if o.Kind != KindRetreat {
			continue
		}
		if o.retreatDisbands == True {
			gs.removeUnit(o.Unit)
			continue
		}
		o.Unit.Location = gs.Map.Locations[o.RetreatTarget]
	}
	gs.dislodged = nil
	if gs.Season.Name() == Fall {
		gs.updateSupplyCenterOwnership()
	}
	return nil
}

func (gs *GameState) resolveBuildPhase() error {
	ResolveBuilds(gs.Map, gs, gs.Orders)
	for _, o := range gs.Orders.All() {
		switch o.Kind {
		case KindBuild:
			if o.BuildLocation >= 0 {
				force := gs.Map.Forces[o.BuildForce]
				gs.addUnit(o.Owner, force, o.BuildLocation)
			}
		case KindDisband:
			if o.DisbandUnit != nil {
				gs.removeUnit(o.DisbandUnit)
			}
		}
	}
	return nil
}

// nextOrderCollection constructs the order collection for whatever phase
// the season has just advanced into.
func (gs *GameState) nextOrderCollection() *OrderCollection {
	switch gs.Season.Phase() {
	case Diplomacy:
		oc := NewOrderCollection()
		for _, u := range gs.Units {
			oc.Insert(&Order{Kind: KindHold, Owner: u.Owner, Unit: u, Source: u.Location.ID})
		}
		for _, o := range oc.All() {
			o.Reset()
		}
		return oc
	case Retreats:
		oc := NewOrderCollection()
		if len(gs.dislodged) == 0 {
			return oc
		}
		forbidden := gs.retreatForbiddenSets()
		for victim, attacker := range gs.dislodged {
			oc.Insert(NewRetreat(victim, forbidden[attacker.Source]))
		}
		return oc
	case Builds:
		return NewAdjustmentOrders(gs)
	default:
		return NewOrderCollection()
	}
}

// retreatForbiddenSets computes, for each attacker's source location id,
// the set of provinces no unit dislodged by that attacker may retreat to:
// the attacker's own origin, every province left occupied after movement,
// and every province that was the scene of a standoff (a move targeted it
// and failed) this same phase.
func (gs *GameState) retreatForbiddenSets() map[int]map[int]bool {
	occupied := map[int]bool{}
	for _, u := range gs.Units {
		occupied[u.ProvinceID()] = true
	}
	standoff := map[int]bool{}
	for _, o := range gs.Orders.All() {
		if o.Kind == KindMove && !o.Succeeds() {
			standoff[gs.Map.Locations[o.Target].ProvinceID] = true
		}
	}

	out := map[int]map[int]bool{}
	for _, o := range gs.Orders.All() {
		if o.Kind != KindMove || !o.Succeeds() {
			continue
		}
		forbidden := map[int]bool{gs.Map.Locations[o.Source].ProvinceID: true}
		for p := range occupied {
			forbidden[p] = true
		}
		for p := range standoff {
			forbidden[p] = true
		}
		out[o.Source] = forbidden
	}
	return out
}
