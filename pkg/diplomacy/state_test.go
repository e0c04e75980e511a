package diplomacy

import "testing"

func TestNewGameStandardDeployment(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if len(gs.Units) != 22 {
		t.Errorf("expected 22 starting units, got %d", len(gs.Units))
	}
	france, _ := v.Power("France")
	if gs.SupplyCenterCount(france) != 3 {
		t.Errorf("expected France to start with 3 supply centers, got %d", gs.SupplyCenterCount(france))
	}
	if gs.UnitCount(france) != 3 {
		t.Errorf("expected France to start with 3 units, got %d", gs.UnitCount(france))
	}
}

func TestOpenHomeCentersExcludesOccupied(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	france, _ := v.Power("France")
	open := gs.openHomeCenters(france)
	if len(open) != 0 {
		t.Errorf("all French home centers are occupied at game start, expected 0 open, got %d", len(open))
	}
}

func TestCheckWinnerRecordsSolo(t *testing.T) {
	v, err := StandardVariant()
	if err != nil {
		t.Fatalf("StandardVariant: %v", err)
	}
	gs, err := NewGame(v)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	france, _ := v.Power("France")
	for provinceID := range gs.SupplyCenters {
		gs.SupplyCenters[provinceID] = france
	}
	gs.checkWinner()
	if gs.Winner != france {
		t.Error("expected France to be declared winner once it holds every supply center")
	}
}
