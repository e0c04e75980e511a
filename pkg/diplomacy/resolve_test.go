package diplomacy

import "testing"

// DATC test cases (Diplomacy Adjudicator Test Cases), reference:
// http://web.inter.nl.net/users/L.B.Kruijswijk/

// 6.A.5: support to hold yourself is not possible; a supported attack
// strong enough to dislodge succeeds.
func TestDATC_6A5_SupportedAttackDislodges(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Italy", "ven", ""},
		unitSpec{"Army", "Austria", "tyr", ""},
		unitSpec{"Army", "Austria", "tri", ""},
	)
	oc := collect(
		holdOrder(gs, "ven"),
		supportMoveOrder(t, gs, "tyr", "tri", "ven", ""),
		moveOrder(t, gs, "tri", "ven", ""),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	tri := oc.OrderOf(gs.unitAt("tri"))
	if !tri.Succeeds() {
		t.Error("Austrian move tri->ven should succeed (2 vs 1)")
	}
}

// 6.A.7: move to self is not possible — modeled here as the attacker's
// own move failing to beat an untouched defending hold at the same
// strength (1 vs 1, no dislodgement).
func TestDATC_6A7_EqualStrengthNoDislodge(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Germany", "ber", ""},
		unitSpec{"Army", "Russia", "pru", ""},
	)
	oc := collect(
		moveOrder(t, gs, "ber", "pru", ""),
		holdOrder(gs, "pru"),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	ber := oc.OrderOf(gs.unitAt("ber"))
	if ber.Succeeds() {
		t.Error("equal-strength attack on a hold must not dislodge")
	}
}

// 6.A.1: a move to a non-adjacent province is an ordinary illegal order,
// not something the resolver should choke on — it must resolve cleanly to
// Illegal instead of surfacing an adjudication error.
func TestDATC_6A1_IllegalMoveToNonAdjacentProvince(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "France", "par", ""},
	)
	oc := collect(
		moveOrder(t, gs, "par", "mos", ""),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	par := oc.OrderOf(gs.unitAt("par"))
	if par.MinStatus() != Illegal || par.MaxStatus() != Illegal {
		t.Errorf("move to a non-adjacent province must resolve to Illegal, got min=%v max=%v", par.MinStatus(), par.MaxStatus())
	}
	if par.Succeeds() {
		t.Error("an illegal move must not succeed")
	}
}

// 6.C.1: three armies moving in a circle, each into the province the next
// one vacates, all succeed.
func TestDATC_6C1_CircularMovement(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Turkey", "ank", ""},
		unitSpec{"Army", "Turkey", "con", ""},
		unitSpec{"Army", "Turkey", "smy", ""},
	)
	oc := collect(
		moveOrder(t, gs, "ank", "con", ""),
		moveOrder(t, gs, "con", "smy", ""),
		moveOrder(t, gs, "smy", "ank", ""),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, p := range []string{"ank", "con", "smy"} {
		o := oc.OrderOf(gs.unitAt(p))
		if !o.Succeeds() {
			t.Errorf("circular move from %s should succeed via the cycle fallback", p)
		}
	}
}

// 6.D.10/6.D.11-style: a head-to-head battle where one side's own power has
// (treacherously) supported the opposing move. The opponent's strength must
// be read undiscounted when judging this side's attack — discounting it by
// the attacker's own power would let the attacker win a battle it actually
// ties and bounces.
func TestDATC_6D10_HeadToHeadOpponentStrengthUndiscounted(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Austria", "vie", ""},
		unitSpec{"Army", "Austria", "tri", ""},
		unitSpec{"Army", "Austria", "gal", ""},
		unitSpec{"Army", "Italy", "tyr", ""},
	)
	oc := collect(
		moveOrder(t, gs, "vie", "tyr", ""),
		supportMoveOrder(t, gs, "tri", "vie", "tyr", ""),
		supportMoveOrder(t, gs, "gal", "tyr", "vie", ""),
		moveOrder(t, gs, "tyr", "vie", ""),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	vieOrder := oc.OrderOf(gs.unitAt("vie"))
	if vieOrder.Succeeds() {
		t.Error("a 2 vs 2 head-to-head must bounce, not succeed merely because Austria's own support for Italy's move was discounted away")
	}
}

// 6.D.17: a supporter that is attacked by a unit that ultimately bounces
// still has its support cut — cutting depends on the attack being made,
// not on whether the attack itself succeeds.
func TestDATC_6D17_SupportCutByFailingAttack(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Russia", "syr", ""},
		unitSpec{"Army", "Russia", "sev", ""},
		unitSpec{"Army", "Austria", "smy", ""},
		unitSpec{"Army", "Turkey", "arm", ""},
	)
	oc := collect(
		supportMoveOrder(t, gs, "syr", "sev", "arm", ""),
		moveOrder(t, gs, "sev", "arm", ""),
		moveOrder(t, gs, "smy", "syr", ""),
		holdOrder(gs, "arm"),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	syrOrder := oc.OrderOf(gs.unitAt("syr"))
	if syrOrder.MaxStatus() != Cut && syrOrder.MinStatus() != Cut {
		t.Error("support from Syria should be cut by the attack from Smyrna")
	}
}

// 6.F.6: a convoyed army whose only fleet is dislodged fails to move.
func TestDATC_6F6_ConvoyDisruptedByDislodgedFleet(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "England", "lon", ""},
		unitSpec{"Fleet", "England", "nth", ""},
		unitSpec{"Fleet", "Germany", "hol", ""},
		unitSpec{"Fleet", "Germany", "bel", ""},
		unitSpec{"Army", "Germany", "ruh", ""},
	)
	oc := collect(
		convoyMoveOrder(t, gs, "lon", "hol"),
		convoyOrder(t, gs, "nth", "lon", "hol"),
		moveOrder(t, gs, "hol", "nth", ""),
		supportMoveOrder(t, gs, "bel", "hol", "nth", ""),
		holdOrder(gs, "ruh"),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	lonOrder := oc.OrderOf(gs.unitAt("lon"))
	if lonOrder.Succeeds() {
		t.Error("convoy through a dislodged fleet must fail")
	}
}

// 6.G.17: a convoy path a unit does not need is irrelevant to whether its
// own ordinary move succeeds.
func TestDATC_6G17_UnneededConvoyIgnored(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "France", "gas", ""},
		unitSpec{"Fleet", "France", "mao", ""},
	)
	oc := collect(
		moveOrder(t, gs, "gas", "spa", "nc"),
		holdOrder(gs, "mao"),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	gasOrder := oc.OrderOf(gs.unitAt("gas"))
	if !gasOrder.Succeeds() {
		t.Error("an ordinary adjacent move must succeed regardless of convoy availability")
	}
}

// 6.H.9: a dislodged unit that retreats cannot retreat to the province
// its attacker came from.
func TestDATC_6H9_RetreatForbiddenToAttackerOrigin(t *testing.T) {
	gs := newTestState(t,
		unitSpec{"Army", "Austria", "bud", ""},
		unitSpec{"Army", "Italy", "vie", ""},
		unitSpec{"Army", "Austria", "boh", ""},
	)
	oc := collect(
		moveOrder(t, gs, "bud", "vie", ""),
		supportMoveOrder(t, gs, "boh", "bud", "vie", ""),
		holdOrder(gs, "vie"),
	)
	if err := ResolveDiplomacy(gs.Map, oc); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	victim := gs.unitAt("vie")
	bud := oc.OrderOf(gs.unitAt("bud"))
	if !bud.Succeeds() {
		t.Fatalf("supported attack should dislodge Vienna")
	}
	budProvince, _ := gs.Map.ProvinceByAbbreviation("bud")
	forbidden := map[int]bool{budProvince.ID: true}
	r := NewRetreat(victim, forbidden)
	retreatOC := collect(r)
	viaTarget := loc(t, gs.Map, "Army", "bud", "")
	r.RetreatTarget = viaTarget
	if err := ResolveRetreats(gs.Map, retreatOC); err != nil {
		t.Fatalf("resolve retreats: %v", err)
	}
	if r.retreatLegal == True {
		t.Error("retreat into the attacker's origin must be illegal")
	}
}
