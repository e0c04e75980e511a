package diplomacy

// ResolveDiplomacy runs the fixed-point solver: it
// tightens every order's status/hold/move bounds and tri-valued flags
// until the whole collection is resolved, falling back first to the
// paradox rule and then to the circular-movement rule if two full passes
// are not enough. It never returns an error from an individual order —
// only a caller-visible failure if both fallbacks still leave orders
// unresolved, which would indicate a bug in the resolver itself.
func ResolveDiplomacy(m *Map, oc *OrderCollection) error {
	for _, o := range oc.All() {
		o.Reset()
	}
	demoteUnreachableConvoys(m, oc)
	oc.Sort()

	for paradoxPass := 1; paradoxPass <= 2; paradoxPass++ {
		for {
			progressed := iterate(m, oc)
			if len(oc.Unresolved()) == 0 {
				return nil
			}
			if !progressed {
				break
			}
		}
		if len(oc.Unresolved()) == 0 {
			return nil
		}
		if paradoxPass == 1 {
			applyParadoxFallback(oc)
		} else {
			applyCycleFallback(oc)
		}
	}
	for iterate(m, oc) {
	}
	if n := len(oc.Unresolved()); n > 0 {
		return NewAdjudicationError("Diplomacy", n)
	}
	return nil
}

// demoteUnreachableConvoys is the "webDip adjacent-convoy" adjustment:
// a Move requesting a convoy with no Convoy order whose fleet is
// adjacent to the move's own source province is silently treated as a
// non-convoyed move instead.
func demoteUnreachableConvoys(m *Map, oc *OrderCollection) {
	for _, o := range oc.All() {
		if o.Kind != KindMove || !o.ConvoyRequested {
			continue
		}
		src := m.Locations[o.Source]
		adjacent := false
		for _, cand := range oc.All() {
			if cand.Kind != KindConvoy {
				continue
			}
			if m.ReachesProvince(m.Locations[cand.Source], src.ProvinceID) {
				adjacent = true
				break
			}
		}
		if !adjacent {
			o.ConvoyRequested = false
		}
	}
}

func iterate(m *Map, oc *OrderCollection) bool {
	progressed := false
	for _, o := range oc.All() {
		if o.Resolved() {
			continue
		}
		before := snapshot(o)
		switch o.Kind {
		case KindHold:
			resolveHold(m, oc, o)
		case KindMove:
			resolveMove(m, oc, o)
		case KindSupport:
			resolveSupport(m, oc, o)
		case KindConvoy:
			resolveConvoy(m, oc, o)
		}
		if !before.equal(snapshot(o)) {
			progressed = true
		}
	}
	return progressed
}

type orderSnapshot struct {
	minStatus, maxStatus OrderStatus
	minHold, maxHold     int
	minMove, maxMove     int
	cutting, dislodging, failed Tri
}

func snapshot(o *Order) orderSnapshot {
	s := orderSnapshot{
		minStatus: o.minStatus, maxStatus: o.maxStatus,
		minHold: o.minHold, maxHold: o.maxHold,
		cutting: o.cutting, dislodging: o.dislodging, failed: o.failed,
	}
	if o.Kind == KindMove {
		s.minMove = o.minMoveFor(nullPower)
		s.maxMove = o.maxMoveFor(nullPower)
	}
	return s
}

func (a orderSnapshot) equal(b orderSnapshot) bool { return a == b }

// applyParadoxFallback is the Szykman-style convention: every
// unresolved convoyed Move has cutting and dislodging fixed to false;
// status bounds remain open for further tightening in the next pass.
func applyParadoxFallback(oc *OrderCollection) {
	for _, o := range oc.Unresolved() {
		if o.Kind == KindMove && o.ConvoyRequested {
			o.cutting = False
			o.dislodging = False
		}
	}
}

// applyCycleFallback resolves circular-movement chains (A->B->C->A): every
// remaining unresolved Move is declared to succeed cleanly.
func applyCycleFallback(oc *OrderCollection) {
	for _, o := range oc.Unresolved() {
		if o.Kind == KindMove {
			o.cutting = False
			o.dislodging = False
			o.failed = False
			o.SetMinStatus(Valid)
			o.SetMaxStatus(Valid)
			o.setMinMove(nullPower, o.maxMoveFor(nullPower))
			o.setMaxMove(nullPower, o.minMoveFor(nullPower))
		}
	}
}

func resolveHold(m *Map, oc *OrderCollection, o *Order) {
	o.SetMinStatus(Valid)
	computeHoldStrength(o, m, oc)
}

// computeHoldStrength implements the shared hold-strength rule:
// 1 + valid supports of this order.
func computeHoldStrength(o *Order, m *Map, oc *OrderCollection) {
	if m == nil || oc == nil {
		return
	}
	supports := oc.Aids(o, m)
	known, possible := 0, 0
	for _, s := range supports {
		if s.MaxStatus() == Valid {
			possible++
		}
		if s.MinStatus() == Valid {
			known++
		}
	}
	o.SetMinHold(1 + known)
	o.SetMaxHold(1 + possible)
}

func resolveSupport(m *Map, oc *OrderCollection, o *Order) {
	computeHoldStrength(o, m, oc)

	if o.minStatus == Illegal && o.maxStatus == Illegal {
		return
	}
	if o.maxStatus != Illegal && o.minStatus == Illegal {
		// Legality: the supported order determines whether this support is
		// well-formed at all.
		supported := oc.OrderIn(m.Locations[o.AuxSource].ProvinceID)
		legal := false
		if supported != nil {
			supporterLoc := m.Locations[o.Source]
			if o.HasAux {
				legal = supported.Kind == KindMove &&
					m.Locations[supported.Target].ProvinceID == m.Locations[o.AuxTarget].ProvinceID &&
					m.ReachesProvince(supporterLoc, m.Locations[o.AuxTarget].ProvinceID)
			} else {
				legal = supported.Kind != KindMove &&
					m.ReachesProvince(supporterLoc, m.Locations[o.AuxSource].ProvinceID)
			}
		}
		if !legal {
			o.SetMinStatus(Illegal)
			o.SetMaxStatus(Illegal)
			return
		}
		o.SetMinStatus(Cut)
	}

	supporterProvince := m.Locations[o.Source].ProvinceID
	attacked := false
	safe := true
	for _, cand := range oc.All() {
		if cand.Kind != KindMove {
			continue
		}
		if m.Locations[cand.Target].ProvinceID != supporterProvince {
			continue
		}
		if cand.Owner == o.Owner {
			continue
		}
		if cand.cutting == True {
			attacked = true
		}
		if cand.cutting != False {
			safe = false
		}
	}
	if attacked {
		o.SetMaxStatus(Cut)
	}
	if safe {
		o.SetMinStatus(Valid)
	}
}

func resolveConvoy(m *Map, oc *OrderCollection, o *Order) {
	computeHoldStrength(o, m, oc)

	if o.minStatus == Illegal && o.maxStatus != Illegal {
		convoyed := oc.OrderIn(m.Locations[o.AuxSource].ProvinceID)
		legal := convoyed != nil && convoyed.Kind == KindMove &&
			convoyed.Unit.Force.Name == "Army" &&
			m.Locations[convoyed.Target].ProvinceID == m.Locations[o.AuxTarget].ProvinceID
		if !legal {
			o.SetMaxStatus(Illegal)
			return
		}
		o.SetMinStatus(Broken)
	}

	fleetProvince := m.Locations[o.Source].ProvinceID
	dislodged, safe := false, true
	for _, cand := range oc.All() {
		if cand.Kind != KindMove {
			continue
		}
		if m.Locations[cand.Target].ProvinceID != fleetProvince {
			continue
		}
		if cand.Succeeds() {
			dislodged = true
		}
		if cand.failed != True {
			safe = false
		}
	}
	if dislodged {
		o.SetMaxStatus(Broken)
	}
	if safe {
		o.SetMinStatus(Valid)
	}
}

func resolveMove(m *Map, oc *OrderCollection, o *Order) {
	src := m.Locations[o.Source]
	tgt := m.Locations[o.Target]
	targetProvince := tgt.ProvinceID

	// 1. Legality.
	if !o.ConvoyRequested {
		if m.ReachesLocation(src, tgt) {
			if o.minStatus < NoEffect {
				o.SetMinStatus(NoEffect)
			}
		} else {
			o.SetMinStatus(Illegal)
			o.SetMaxStatus(Illegal)
			o.cutting, o.dislodging, o.failed = False, False, True
			o.zeroMoveStrength()
			return
		}
	} else {
		fleets := convoyFleetLocations(m, oc, o, Valid, Valid)
		if m.HasPath(src.ProvinceID, targetProvince, fleets) {
			o.SetMinStatus(Valid)
		}
		fleetsMax := convoyFleetLocations(m, oc, o, Illegal, Valid)
		if !m.HasPath(src.ProvinceID, targetProvince, fleetsMax) {
			o.SetMaxStatus(Illegal)
			o.cutting, o.dislodging, o.failed = False, False, True
			o.zeroMoveStrength()
			return
		}
		if o.minStatus < Valid {
			return
		}
	}

	// 2. Strength.
	supports := oc.Aids(o, m)
	for _, power := range relevantPowers(oc) {
		known, possible := 0, 0
		for _, s := range supports {
			if s.Owner.Name == power {
				continue
			}
			if s.MinStatus() == Valid {
				known++
			}
			if s.MaxStatus() == Valid {
				possible++
			}
		}
		o.setMinMove(power, 1+known)
		o.setMaxMove(power, 1+possible)
	}
	knownNull, possibleNull := 0, 0
	for _, s := range supports {
		if s.MinStatus() == Valid {
			knownNull++
		}
		if s.MaxStatus() == Valid {
			possibleNull++
		}
	}
	o.setMinMove(nullPower, 1+knownNull)
	o.setMaxMove(nullPower, 1+possibleNull)

	// 3. Resolve the attack.
	attacked := oc.OrderIn(targetProvince)

	switch {
	case attacked == nil:
		o.SetMinStatus(Valid)
		o.cutting = False
		o.dislodging = False
		resolveBounce(m, oc, o)

	case attacked.Kind == KindMove && !isHeadToHead(m, o, attacked):
		o.SetMinStatus(Valid)
		o.cutting = False
		if attacked.Succeeds() {
			o.dislodging = False
			resolveBounce(m, oc, o)
		} else if attacked.failed == True {
			resolveOrdinaryAttack(m, oc, o, attacked)
		}

	case attacked.Kind == KindMove && isHeadToHead(m, o, attacked):
		o.cutting = False
		resolveHeadToHead(m, oc, o, attacked)

	default:
		o.cutting = True
		resolveOrdinaryAttack(m, oc, o, attacked)
	}
}

func relevantPowers(oc *OrderCollection) []string {
	seen := map[string]bool{}
	var out []string
	for _, o := range oc.All() {
		if o.Owner != nil && !seen[o.Owner.Name] {
			seen[o.Owner.Name] = true
			out = append(out, o.Owner.Name)
		}
	}
	return out
}

func isHeadToHead(m *Map, a, b *Order) bool {
	if a.ConvoyRequested || b.ConvoyRequested {
		return false
	}
	return m.Locations[b.Target].ProvinceID == m.Locations[a.Source].ProvinceID
}

func convoyFleetLocations(m *Map, oc *OrderCollection, move *Order, minAtLeast, maxAtLeast OrderStatus) []int {
	var ids []int
	for _, cand := range oc.All() {
		if cand.Kind != KindConvoy {
			continue
		}
		if !cand.HasAux || m.Locations[cand.AuxSource].ProvinceID != m.Locations[move.Source].ProvinceID {
			continue
		}
		if cand.MinStatus() >= minAtLeast && cand.MaxStatus() >= maxAtLeast {
			ids = append(ids, cand.Source)
		}
	}
	return ids
}

// attacks reports whether move attacks defender, discounting support
// contributed by defender's own power and refusing self-dislodgement.
func attacks(move, defender *Order) Tri {
	if defender.Owner == move.Owner {
		return False
	}
	if move.minMoveFor(defender.Owner.Name) > defender.MaxHold() {
		return True
	}
	if move.maxMoveFor(defender.Owner.Name) <= defender.MinHold() {
		return False
	}
	return Unknown
}

// bounces reports whether move is beaten by some other move into the same
// target province, discounting support from exceptOwner.
func bounces(oc *OrderCollection, m *Map, move *Order, exceptOwner string) Tri {
	targetProvince := m.Locations[move.Target].ProvinceID
	var rivals []*Order
	for _, cand := range oc.All() {
		if cand == move || cand.Kind != KindMove {
			continue
		}
		if m.Locations[cand.Target].ProvinceID == targetProvince {
			rivals = append(rivals, cand)
		}
	}
	if len(rivals) == 0 {
		return False
	}
	beatsAll := true
	for _, rival := range rivals {
		if !(move.minMoveFor(exceptOwner) > rival.maxMoveFor(nullPower)) {
			beatsAll = false
			break
		}
	}
	if beatsAll {
		return False
	}
	for _, rival := range rivals {
		if move.maxMoveFor(exceptOwner) <= rival.minMoveFor(nullPower) {
			return True
		}
	}
	return Unknown
}

func resolveBounce(m *Map, oc *OrderCollection, o *Order) {
	result := bounces(oc, m, o, nullPower)
	if result.Decided() {
		o.setFailed(result.Bool())
	}
}

func resolveOrdinaryAttack(m *Map, oc *OrderCollection, o, defender *Order) {
	o.SetMinStatus(Valid)
	attack := attacks(o, defender)
	result := bounces(oc, m, o, defender.Owner.Name)
	if !attack.Decided() || !result.Decided() {
		return
	}
	o.setDislodging(!result.Bool() && attack.Bool())
	o.setFailed(result.Bool() || !attack.Bool())
}

func resolveHeadToHead(m *Map, oc *OrderCollection, o, opponent *Order) {
	o.SetMinStatus(Valid)
	won := Unknown
	if o.minMoveFor(opponent.Owner.Name) > opponent.maxMoveFor(nullPower) {
		won = True
	} else if o.maxMoveFor(opponent.Owner.Name) <= opponent.minMoveFor(nullPower) {
		won = False
	}
	result := bounces(oc, m, o, opponent.Owner.Name)
	if won == False || result == True {
		o.setDislodging(false)
		o.setFailed(true)
	} else if won == True && result == False {
		o.setDislodging(true)
		o.setFailed(false)
	}
}
