package diplomacy

import "fmt"

// BuildOrder turns one parsed OrderText into a located, owner-checked
// *Order ready for insertion into an OrderCollection. Movement legality
// itself (adjacency, convoy paths, coast matching) is the resolver's job —
// it gives illegal orders an Illegal status rather than rejecting them
// outright — what belongs here is what the resolver cannot recover from:
// resolving province/coast text to a Location, and confirming the
// submitting power actually owns the named unit.
func BuildOrder(m *Map, gs *GameState, power *Power, ot OrderText) (*Order, error) {
	if ot.Waive {
		return &Order{Kind: KindBuild, Owner: power, BuildLocation: -1}, nil
	}

	force, ok := m.Forces[forceName(ot.Force)]
	if !ok {
		return nil, NewOrderInputError(ot.Province, "unknown force "+ot.Force)
	}

	if ot.Kind == KindBuild {
		loc, err := m.Locate(force, ot.Province, nil, ot.Coast, false)
		if err != nil {
			return nil, err
		}
		return &Order{Kind: KindBuild, Owner: power, BuildForce: force.Name, BuildLocation: loc.ID}, nil
	}

	loc, err := m.Locate(force, ot.Province, nil, ot.Coast, false)
	if err != nil {
		return nil, err
	}
	unit := gs.UnitAt(loc.ProvinceID)
	if unit == nil {
		return nil, NewOrderInputError(ot.Province, "no unit at "+ot.Province)
	}
	if unit.Owner != power {
		return nil, NewOrderInputError(ot.Province, fmt.Sprintf("unit belongs to %s, not %s", unit.Owner.Name, power.Name))
	}

	o := &Order{Kind: ot.Kind, Owner: power, Unit: unit, Source: unit.Location.ID}

	switch ot.Kind {
	case KindHold:
		// nothing further to resolve

	case KindMove:
		o.ConvoyRequested = false
		tgt, err := m.Locate(nil, ot.Target, &loc.ID, ot.TargetCoast, true)
		if err != nil {
			return nil, err
		}
		o.Target = tgt.ID

	case KindRetreat:
		tgt, err := m.Locate(nil, ot.Target, &loc.ID, ot.TargetCoast, true)
		if err != nil {
			return nil, err
		}
		o.RetreatTarget = tgt.ID

	case KindSupport:
		auxForce, ok := m.Forces[forceName(ot.AuxForce)]
		if !ok {
			return nil, NewOrderInputError(ot.AuxProvince, "unknown supported force "+ot.AuxForce)
		}
		auxLoc, err := m.Locate(auxForce, ot.AuxProvince, nil, ot.AuxCoast, false)
		if err != nil {
			return nil, err
		}
		o.AuxSource = auxLoc.ID
		if ot.AuxTarget != "" {
			auxTgt, err := m.Locate(nil, ot.AuxTarget, &auxLoc.ID, ot.AuxTargetCoast, true)
			if err != nil {
				return nil, err
			}
			o.AuxTarget = auxTgt.ID
			o.HasAux = true
		}

	case KindConvoy:
		army := m.Forces["Army"]
		auxLoc, err := m.Locate(army, ot.AuxProvince, nil, ot.AuxCoast, false)
		if err != nil {
			return nil, err
		}
		auxTgt, err := m.Locate(nil, ot.AuxTarget, &auxLoc.ID, ot.AuxTargetCoast, true)
		if err != nil {
			return nil, err
		}
		o.AuxSource, o.AuxTarget, o.HasAux = auxLoc.ID, auxTgt.ID, true

	case KindDisband:
		o.DisbandUnit = unit
	}

	return o, nil
}

func forceName(letter string) string {
	if letter == "F" {
		return "Fleet"
	}
	return "Army"
}
