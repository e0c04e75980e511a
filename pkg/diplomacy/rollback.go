package diplomacy

// Rollback undoes the most recently adjudicated phase, restoring the board
// to the position archived just before it. It discards both the
// position and the order-log entries that phase produced; the restored
// order collection is reconstructed the same way nextOrderCollection builds
// it when first entering that phase, so mid-phase order entry can resume.
func (gs *GameState) Rollback() error {
	if gs.Positions.Len() < 2 {
		return NewGameError(string(gs.Season.Phase()), "cannot rollback past the starting position")
	}
	gs.Positions.Pop()
	gs.OrderLog.Pop()
	prev, _ := gs.Positions.Last()
	gs.restoreFromPosition(prev)
	return nil
}

func (gs *GameState) restoreFromPosition(r PositionRecord) {
	gs.Season = &Season{year: r.Year, name: SeasonName(r.Name), phase: Phase(r.Phase), count: r.Count}

	gs.Units = nil
	gs.nextUnitID = 0
	for _, ur := range r.Units {
		if power, ok := gs.Variant.Power(ur.Power); ok {
			gs.addUnit(power, gs.Map.Forces[ur.Force], ur.Location)
		}
	}

	gs.SupplyCenters = map[int]*Power{}
	for provinceID, name := range r.SupplyCenters {
		if power, ok := gs.Variant.Power(name); ok {
			gs.SupplyCenters[provinceID] = power
		}
	}

	gs.Winner = nil
	if r.Winner != "" {
		if power, ok := gs.Variant.Power(r.Winner); ok {
			gs.Winner = power
		}
	}

	gs.dislodged = nil
	gs.Orders = gs.nextOrderCollection()
}
