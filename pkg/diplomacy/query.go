package diplomacy

// The functions below are the parser-facing query surface: thin,
// read-only entry points a parser/driver uses to turn raw order text into
// a resolved Order without reaching into GameState internals. Deep input
// validation is the parser's job; these simply answer "what unit/order is
// here" or fail with an OrderInputError/GameError naming what's wrong.

// UnitIn returns the unit standing in the given province, or an
// OrderInputError if none is there.
func UnitIn(gs *GameState, provinceAbbr string) (*Unit, error) {
	prov, ok := gs.Map.ProvinceByAbbreviation(provinceAbbr)
	if !ok {
		return nil, NewOrderInputError(provinceAbbr, "no such province")
	}
	u := gs.UnitAt(prov.ID)
	if u == nil {
		return nil, NewOrderInputError(provinceAbbr, "no unit here")
	}
	return u, nil
}

// OrderIn returns the order currently standing for whatever unit occupies
// the given province, or an OrderInputError if none has been entered yet.
func OrderIn(gs *GameState, provinceAbbr string) (*Order, error) {
	prov, ok := gs.Map.ProvinceByAbbreviation(provinceAbbr)
	if !ok {
		return nil, NewOrderInputError(provinceAbbr, "no such province")
	}
	o := gs.Orders.OrderIn(prov.ID)
	if o == nil {
		return nil, NewOrderInputError(provinceAbbr, "no order entered")
	}
	return o, nil
}

// SubmitOrder locates the owning power's order for whatever unit (or, for a
// Build, home center) ot names, and installs it into the current phase's
// order collection in place of whatever placeholder order stood there —
// preserving a Retreat order's forbidden-province set, which notation alone
// can't carry. During Builds it delegates to AdjustmentOrder, since builds
// fill open slots rather than replace a per-unit order.
func SubmitOrder(gs *GameState, power *Power, ot OrderText) error {
	if gs.Season.Phase() == Builds {
		return AdjustmentOrder(gs, power, ot)
	}

	o, err := BuildOrder(gs.Map, gs, power, ot)
	if err != nil {
		return err
	}
	if existing := gs.Orders.OrderOf(o.Unit); existing != nil {
		if existing.Kind == KindRetreat && o.Kind == KindRetreat {
			o.RetreatForbidden = existing.RetreatForbidden
		}
		gs.Orders.Remove(existing)
	}
	gs.Orders.Insert(o)
	return nil
}

// AdjustmentOrder submits one Builds-phase order (a Build, a Disband, or a
// waived Build) for the named power, filling the first still-postponed
// slot of the matching kind. It returns a GameError if the power has no
// such slot remaining to fill — e.g. a sixth build order when the power is
// only owed five.
func AdjustmentOrder(gs *GameState, power *Power, ot OrderText) error {
	if gs.Season.Phase() != Builds {
		return NewGameError(string(gs.Season.Phase()), "adjustment orders are only accepted during Builds")
	}
	o, err := BuildOrder(gs.Map, gs, power, ot)
	if err != nil {
		return err
	}
	for _, existing := range gs.Orders.All() {
		if existing.Owner != power || existing.Kind != o.Kind {
			continue
		}
		open := (existing.Kind == KindBuild && existing.BuildLocation < 0) ||
			(existing.Kind == KindDisband && existing.DisbandUnit == nil)
		if !open {
			continue
		}
		existing.BuildForce = o.BuildForce
		existing.BuildLocation = o.BuildLocation
		existing.DisbandUnit = o.DisbandUnit
		return nil
	}
	return NewGameError(string(gs.Season.Phase()), "no open adjustment slot for "+power.Name)
}
