package diplomacy

import "testing"

func TestDisbandSelectionOrderFarthestFirst(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "France", "par", ""}, // home center itself: distance 0
		unitSpec{"Army", "France", "mun", ""}, // far from any French home center
	)
	france, _ := gs.Variant.Power("France")
	order := disbandSelectionOrder(gs.Map, gs, france)
	if len(order) != 2 {
		t.Fatalf("expected 2 units, got %d", len(order))
	}
	if order[0].ProvinceID() == gs.unitAt("par").ProvinceID() {
		t.Error("the unit farthest from home should be selected for disband first")
	}
}

func TestDisbandSelectionTieBreaksByUnitID(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "France", "mun", ""},
		unitSpec{"Army", "France", "ruh", ""},
	)
	france, _ := gs.Variant.Power("France")
	order := disbandSelectionOrder(gs.Map, gs, france)
	if len(order) != 2 {
		t.Fatalf("expected 2 units, got %d", len(order))
	}
	if order[0].ID > order[1].ID {
		t.Error("equal-distance units should tie-break by ascending unit id")
	}
}

func TestResolveBuildsMatchesOpenHomeCenters(t *testing.T) {
	gs := newTestState(t) // no units: France has 3 open home centers, 0 units
	france, _ := gs.Variant.Power("France")
	parProv, _ := gs.Map.ProvinceByAbbreviation("par")
	parLoc := loc(t, gs.Map, "Army", "par", "")
	oc := NewOrderCollection()
	oc.Insert(&Order{Kind: KindBuild, Owner: france, BuildLocation: parLoc, BuildForce: "Army"})
	oc.Insert(&Order{Kind: KindBuild, Owner: france, BuildLocation: -1})
	oc.Insert(&Order{Kind: KindBuild, Owner: france, BuildLocation: -1})

	ResolveBuilds(gs.Map, gs, oc)

	matched := 0
	for _, o := range oc.All() {
		if o.BuildLocation == parLoc {
			matched++
		}
	}
	if matched != 1 {
		t.Errorf("expected exactly one build matched to Paris, got %d", matched)
	}
	_ = parProv
}
