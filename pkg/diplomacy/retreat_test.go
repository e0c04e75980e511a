package diplomacy

import "testing"

func TestRetreatToDisbandIsAlwaysLegal(t *testing.T) {
	gs := newTestState(t, unitSpec{"Army", "France", "par", ""})
	u := gs.unitAt("par")
	r := NewRetreat(u, map[int]bool{})
	r.RetreatTarget = -1
	oc := collect(r)
	if err := ResolveRetreats(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.retreatLegal != True || r.retreatDisbands != True {
		t.Error("a disband retreat must always resolve legal and disbanding")
	}
}

func TestRetreatToOccupiedForbiddenProvinceFails(t *testing.T) {
	gs := newTestState(t, unitSpec{"Army", "France", "par", ""})
	u := gs.unitAt("par")
	gasLoc := loc(t, gs.Map, "Army", "gas", "")
	gasProv, _ := gs.Map.ProvinceByAbbreviation("gas")
	r := NewRetreat(u, map[int]bool{gasProv.ID: true})
	r.RetreatTarget = gasLoc
	oc := collect(r)
	if err := ResolveRetreats(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r.retreatLegal != False {
		t.Error("a retreat into a forbidden province must be illegal")
	}
}

func TestTwoRetreatsToSameProvinceBothDisband(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "France", "par", ""},
		unitSpec{"Army", "Germany", "mun", ""},
	)
	burLoc := loc(t, gs.Map, "Army", "bur", "")
	r1 := NewRetreat(gs.unitAt("par"), map[int]bool{})
	r1.RetreatTarget = burLoc
	r2 := NewRetreat(gs.unitAt("mun"), map[int]bool{})
	r2.RetreatTarget = burLoc
	oc := collect(r1, r2)
	if err := ResolveRetreats(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if r1.retreatDisbands != True || r2.retreatDisbands != True {
		t.Error("two retreats contesting the same province must both disband")
	}
}
