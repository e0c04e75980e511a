package diplomacy

import "testing"

// unitSpec places one unit for a test scenario: force ("Army"/"Fleet"),
// power name, province abbreviation, and coast specifier ("" unless the
// province has split coasts).
type unitSpec struct {
	force, power, province, coast string
}

// newTestState builds a GameState directly from unit specs, bypassing
// StandardVariant's 1901 deployment, the way a stateWith helper bypasses a
// full game setup for scenario tests.
func newTestState(t *testing.T, specs ...unitSpec) *GameState {
	t.Helper()
	v, err := testVariant()
	if err != nil {
		t.Fatalf("testVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	gs.Season.Progress(1) // Pregame -> Spring Diplomacy
	gs.Orders = NewOrderCollection()

	for _, s := range specs {
		power, ok := v.Power(s.power)
		if !ok {
			t.Fatalf("unknown power %q", s.power)
		}
		prov, ok := v.Map.ProvinceByAbbreviation(s.province)
		if !ok {
			t.Fatalf("unknown province %q", s.province)
		}
		loc, err := locationForForceAtProvince(v.Map, s.force, prov.ID, s.coast)
		if err != nil {
			t.Fatalf("locate %s %s: %v", s.force, s.province, err)
		}
		gs.addUnit(power, v.Map.Forces[s.force], loc.ID)
	}
	return gs
}

// testVariant returns the standard map/powers with no starting deployment,
// so scenario tests can place exactly the units they need.
func testVariant() (*Variant, error) {
	v, err := StandardVariant()
	if err != nil {
		return nil, err
	}
	cp := *v
	cp.StartingUnits = nil
	return &cp, nil
}

func (gs *GameState) unitAt(province string) *Unit {
	prov, ok := gs.Map.ProvinceByAbbreviation(province)
	if !ok {
		return nil
	}
	return gs.UnitAt(prov.ID)
}

// loc resolves a province abbreviation (with optional coast spec) to a
// Location id for the given force, failing the test on error.
func loc(t *testing.T, m *Map, force, province, coast string) int {
	t.Helper()
	f := m.Forces[force]
	l, err := m.Locate(f, province, nil, coast, false)
	if err != nil {
		t.Fatalf("locate %s %s/%s: %v", force, province, coast, err)
	}
	if l == nil {
		t.Fatalf("locate %s %s/%s: no match", force, province, coast)
	}
	return l.ID
}

func holdOrder(gs *GameState, province string) *Order {
	u := gs.unitAt(province)
	return &Order{Kind: KindHold, Owner: u.Owner, Unit: u, Source: u.Location.ID}
}

func moveOrder(t *testing.T, gs *GameState, province, targetProvince, targetCoast string) *Order {
	u := gs.unitAt(province)
	tgt := loc(t, gs.Map, u.Force.Name, targetProvince, targetCoast)
	return &Order{Kind: KindMove, Owner: u.Owner, Unit: u, Source: u.Location.ID, Target: tgt}
}

func convoyMoveOrder(t *testing.T, gs *GameState, province, targetProvince string) *Order {
	o := moveOrder(t, gs, province, targetProvince, "")
	o.ConvoyRequested = true
	return o
}

func supportHoldOrder(t *testing.T, gs *GameState, province, auxProvince string) *Order {
	u := gs.unitAt(province)
	aux := gs.unitAt(auxProvince)
	return &Order{Kind: KindSupport, Owner: u.Owner, Unit: u, Source: u.Location.ID, AuxSource: aux.Location.ID}
}

func supportMoveOrder(t *testing.T, gs *GameState, province, auxProvince, auxTargetProvince, auxTargetCoast string) *Order {
	u := gs.unitAt(province)
	aux := gs.unitAt(auxProvince)
	auxTgt := loc(t, gs.Map, aux.Force.Name, auxTargetProvince, auxTargetCoast)
	return &Order{
		Kind: KindSupport, Owner: u.Owner, Unit: u, Source: u.Location.ID,
		AuxSource: aux.Location.ID, AuxTarget: auxTgt, HasAux: true,
	}
}

func convoyOrder(t *testing.T, gs *GameState, province, auxProvince, auxTargetProvince string) *Order {
	u := gs.unitAt(province)
	aux := gs.unitAt(auxProvince)
	auxTgt := loc(t, gs.Map, "Army", auxTargetProvince, "")
	return &Order{
		Kind: KindConvoy, Owner: u.Owner, Unit: u, Source: u.Location.ID,
		AuxSource: aux.Location.ID, AuxTarget: auxTgt, HasAux: true,
	}
}

func collect(orders ...*Order) *OrderCollection {
	oc := NewOrderCollection()
	for _, o := range orders {
		oc.Insert(o)
	}
	return oc
}
