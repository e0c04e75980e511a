package diplomacy

import "testing"

func TestStandardMapLocationInvariant(t *testing.T) {
	m := StandardMap()
	for i, loc := range m.Locations {
		if loc.ID != i {
			t.Fatalf("location at index %d has id %d", i, loc.ID)
		}
	}
}

func TestStandardMapProvinceCount(t *testing.T) {
	m := StandardMap()
	if len(m.Provinces) != 75 {
		t.Errorf("expected 75 provinces, got %d", len(m.Provinces))
	}
}

func TestSplitCoastLocationsAreDistinct(t *testing.T) {
	m := StandardMap()
	spa, ok := m.ProvinceByAbbreviation("spa")
	if !ok {
		t.Fatal("spain not found")
	}
	locs := m.LocationsOf(spa.ID)
	if len(locs) != 3 {
		t.Fatalf("expected 3 locations for Spain (inland + 2 coasts), got %d", len(locs))
	}
}

func TestLocateByAbbreviation(t *testing.T) {
	m := StandardMap()
	army := m.Forces["Army"]
	l, err := m.Locate(army, "vie", nil, "", false)
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if l == nil {
		t.Fatal("expected a location for vie")
	}
	prov := m.ProvinceByID(l.ProvinceID)
	if prov.Abbreviation != "vie" {
		t.Errorf("expected vie, got %s", prov.Abbreviation)
	}
}

func TestLocateSplitCoastRequiresSpecifier(t *testing.T) {
	m := StandardMap()
	fleet := m.Forces["Fleet"]
	nc, err := m.Locate(fleet, "stp", nil, "nc", false)
	if err != nil || nc == nil {
		t.Fatalf("locate stp/nc: %v", err)
	}
	sc, err := m.Locate(fleet, "stp", nil, "sc", false)
	if err != nil || sc == nil {
		t.Fatalf("locate stp/sc: %v", err)
	}
	if nc.ID == sc.ID {
		t.Error("stp/nc and stp/sc must be distinct locations")
	}
}

func TestHasPathRequiresIntermediateFleet(t *testing.T) {
	m := StandardMap()
	bre, _ := m.ProvinceByAbbreviation("bre")
	spa, _ := m.ProvinceByAbbreviation("spa")
	mao, _ := m.ProvinceByAbbreviation("mao")
	maoLoc := m.LocationsOf(mao.ID)[0].ID
	if m.HasPath(bre.ID, spa.ID, nil) {
		t.Error("HasPath with no convoying fleets should be false")
	}
	if !m.HasPath(bre.ID, spa.ID, []int{maoLoc}) {
		t.Error("HasPath via mid-atlantic should connect Brest to Spain")
	}
}
