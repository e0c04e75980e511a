package diplomacy

import "testing"

func TestAdjudicatePregameEntersSpringDiplomacy(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if gs.Season.Phase() != Pregame {
		t.Fatalf("expected Pregame, got %v", gs.Season.Phase())
	}
	if err := gs.Adjudicate(true); err != nil {
		t.Fatalf("Adjudicate: %v", err)
	}
	if gs.Season.Phase() != Diplomacy || gs.Season.Name() != Spring {
		t.Errorf("expected Spring Diplomacy, got %v %v", gs.Season.Name(), gs.Season.Phase())
	}
	if gs.Orders.Len() != len(gs.Units) {
		t.Errorf("expected one Hold order per unit, got %d orders for %d units", gs.Orders.Len(), len(gs.Units))
	}
}

func TestAdjudicateHoldingEveryoneAdvancesWithoutRetreats(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if err := gs.Adjudicate(true); err != nil {
		t.Fatalf("Adjudicate into Spring Diplomacy: %v", err)
	}
	if err := gs.Adjudicate(false); err != nil {
		t.Fatalf("Adjudicate Spring holds: %v", err)
	}
	if gs.Season.Phase() != Diplomacy || gs.Season.Name() != Fall {
		t.Errorf("expected to skip straight to Fall Diplomacy (no dislodgements), got %v %v", gs.Season.Name(), gs.Season.Phase())
	}
}

func TestAdjudicateRefusesOnceWinnerRecorded(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	france, _ := v.Power("France")
	gs.Winner = france
	if err := gs.Adjudicate(true); err == nil {
		t.Error("Adjudicate should refuse to run once a winner is recorded")
	}
}
