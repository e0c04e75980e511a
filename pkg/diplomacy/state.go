package diplomacy

import "sort"

// GameState is the mutable heart of a game: the season ticker, the live
// units, per-power supply-center and home-center sets, the winner (once
// decided), the current phase's order collection, and the two archives.
type GameState struct {
	Variant *Variant
	Map     *Map
	Season  *Season

	Units []*Unit
	nextUnitID int

	SupplyCenters map[int]*Power // province id -> owning power (nil = unowned)

	Orders *OrderCollection

	// dislodged holds, between the end of a Diplomacy phase and the
	// retreat order collection being built, each dislodged unit's
	// attacking order.
	dislodged map[*Unit]*Order

	Winner *Power

	Positions *PositionArchive
	OrderLog  *OrderArchive
}

// NewGame constructs the Pregame state for a variant: each power owns its
// home centers, the variant's starting units are placed, and nothing is
// archived yet. Callers typically follow with Adjudicate(true) from
// Pregame, which performs no resolution but advances straight into Spring
// Diplomacy with one Hold order per unit.
func NewGame(v *Variant) (*GameState, error) {
	gs := &GameState{
		Variant:       v,
		Map:           v.Map,
		Season:        NewSeason(v.StartingYear),
		SupplyCenters: map[int]*Power{},
		Positions:     NewPositionArchive(),
		OrderLog:      NewOrderArchive(),
	}
	for code, power := range v.Powers {
		for _, center := range power.HomeCenters {
			gs.SupplyCenters[center] = v.Powers[code]
		}
	}
	for _, su := range v.StartingUnits {
		power, ok := v.Power(su.Power)
		if !ok {
			return nil, NewGameError("Pregame", "unknown starting power "+su.Power)
		}
		force := v.Map.Forces[su.Force]
		gs.addUnit(power, force, su.LocationID)
	}
	gs.Orders = NewOrderCollection()
	return gs, nil
}

func (gs *GameState) addUnit(power *Power, force *Force, locationID int) *Unit {
	u := &Unit{ID: gs.nextUnitID, Owner: power, Force: force, Location: gs.Map.Locations[locationID]}
	gs.nextUnitID++
	gs.Units = append(gs.Units, u)
	return u
}

// removeUnit deletes a unit from the state and drops any order in the
// current collection still referencing it.
func (gs *GameState) removeUnit(u *Unit) {
	for i, other := range gs.Units {
		if other == u {
			gs.Units = append(gs.Units[:i], gs.Units[i+1:]...)
			break
		}
	}
	if gs.Orders != nil {
		gs.Orders.RemoveUnit(u)
	}
}

// UnitAt returns the unit standing in the given province, or nil.
func (gs *GameState) UnitAt(provinceID int) *Unit {
	for _, u := range gs.Units {
		if u.ProvinceID() == provinceID {
			return u
		}
	}
	return nil
}

func (gs *GameState) SupplyCenterCount(p *Power) int {
	n := 0
	for _, owner := range gs.SupplyCenters {
		if owner == p {
			n++
		}
	}
	return n
}

func (gs *GameState) UnitCount(p *Power) int {
	n := 0
	for _, u := range gs.Units {
		if u.Owner == p {
			n++
		}
	}
	return n
}

func (gs *GameState) UnitsOf(p *Power) []*Unit {
	var out []*Unit
	for _, u := range gs.Units {
		if u.Owner == p {
			out = append(out, u)
		}
	}
	return out
}

func (gs *GameState) PowerIsAlive(p *Power) bool {
	return gs.SupplyCenterCount(p) > 0 || gs.UnitCount(p) > 0
}

// openHomeCenters returns the power's home centers that it currently owns
// and that are unoccupied, in ascending province-id order — the
// deterministic walk order the build-pairing step requires.
func (gs *GameState) openHomeCenters(p *Power) []int {
	var out []int
	for _, home := range p.HomeCenters {
		if gs.SupplyCenters[home] != p {
			continue
		}
		if gs.UnitAt(home) != nil {
			continue
		}
		out = append(out, home)
	}
	sort.Ints(out)
	return out
}

// powersInOrder returns the variant's powers in a stable (name-sorted)
// order, so Builds-phase construction is deterministic regardless of map
// iteration order.
func (gs *GameState) powersInOrder() []*Power {
	names := make([]string, 0, len(gs.Variant.Powers))
	for name := range gs.Variant.Powers {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Power, len(names))
	for i, name := range names {
		out[i] = gs.Variant.Powers[name]
	}
	return out
}

// updateSupplyCenterOwnership recomputes ownership after a Fall turn
// concludes: a power gains a supply center iff one of its
// units occupies it; ownership transfers from whoever held it previously.
func (gs *GameState) updateSupplyCenterOwnership() {
	for _, provinceID := range gs.Map.SupplyCenterIDs {
		if u := gs.UnitAt(provinceID); u != nil {
			gs.SupplyCenters[provinceID] = u.Owner
		}
	}
}

// checkWinner records a winner if any power's supply-center count meets
// the variant's win threshold.
func (gs *GameState) checkWinner() {
	if gs.Winner != nil {
		return
	}
	for _, p := range gs.powersInOrder() {
		if gs.SupplyCenterCount(p) >= gs.Variant.WinThreshold {
			gs.Winner = p
			return
		}
	}
}
