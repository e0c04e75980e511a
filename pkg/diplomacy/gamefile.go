package diplomacy

import (
	"encoding/json"
	"os"
)

// GameFile is the on-disk JSON shape of a GameState: enough to
// resume adjudication from exactly where it left off, plus both archives
// for rollback/replay. Construction from parsed external data (this file)
// and deep validation of untrusted input are explicitly a caller's
// concern, not this package's — LoadGameFile trusts what
// it's given.
type GameFile struct {
	Variant string `json:"variant"`

	Year  int    `json:"year"`
	Name  string `json:"season"`
	Phase string `json:"phase"`
	Count int    `json:"count"`

	Winner string `json:"winner,omitempty"`

	Units         []UnitRecord   `json:"units"`
	SupplyCenters map[int]string `json:"supply_centers"`

	Positions []PositionRecord   `json:"positions"`
	OrderLog  []PhaseOrderRecord `json:"order_log"`
}

// SaveGameFile writes gs to path as indented JSON.
func SaveGameFile(path string, gs *GameState) error {
	gf := GameFile{
		Variant:       gs.Variant.Name,
		Year:          gs.Season.Year(),
		Name:          string(gs.Season.Name()),
		Phase:         string(gs.Season.Phase()),
		Count:         gs.Season.Count(),
		SupplyCenters: map[int]string{},
		Positions:     gs.Positions.All(),
		OrderLog:      gs.OrderLog.All(),
	}
	if gs.Winner != nil {
		gf.Winner = gs.Winner.Name
	}
	for _, u := range gs.Units {
		gf.Units = append(gf.Units, UnitRecord{Force: u.Force.Name, Power: u.Owner.Name, Location: u.Location.ID})
	}
	for provinceID, owner := range gs.SupplyCenters {
		if owner != nil {
			gf.SupplyCenters[provinceID] = owner.Name
		}
	}

	data, err := json.MarshalIndent(gf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadGameFile reconstructs a GameState for the named variant from a file
// written by SaveGameFile.
func LoadGameFile(path string, v *Variant) (*GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var gf GameFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, err
	}

	gs := &GameState{
		Variant:       v,
		Map:           v.Map,
		Season:        &Season{year: gf.Year, name: SeasonName(gf.Name), phase: Phase(gf.Phase), count: gf.Count},
		SupplyCenters: map[int]*Power{},
		Positions:     NewPositionArchive(),
		OrderLog:      NewOrderArchive(),
	}
	for provinceID, name := range gf.SupplyCenters {
		if p, ok := v.Power(name); ok {
			gs.SupplyCenters[provinceID] = p
		}
	}
	if gf.Winner != "" {
		if p, ok := v.Power(gf.Winner); ok {
			gs.Winner = p
		}
	}
	for _, ur := range gf.Units {
		power, ok := v.Power(ur.Power)
		if !ok {
			return nil, NewGameError(gf.Phase, "unknown power "+ur.Power)
		}
		gs.addUnit(power, v.Map.Forces[ur.Force], ur.Location)
	}
	for _, pr := range gf.Positions {
		gs.Positions.Append(pr)
	}
	for _, or := range gf.OrderLog {
		gs.OrderLog.Append(or)
	}
	gs.Orders = gs.nextOrderCollection()
	return gs, nil
}
