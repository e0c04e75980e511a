package diplomacy

import "sort"

// NewAdjustmentOrders constructs the Builds-phase order collection for a
// GameState: one Build slot per open home center a power may fill
// (capped by its supply-center surplus), or one Disband slot per unit it
// must shed, numbered 1..k — a Build/Disband may be left unset
// ("postponed") for the player to skip.
func NewAdjustmentOrders(gs *GameState) *OrderCollection {
	oc := NewOrderCollection()
	for _, power := range gs.powersInOrder() {
		scCount := gs.SupplyCenterCount(power)
		unitCount := gs.UnitCount(power)
		diff := scCount - unitCount
		switch {
		case diff > 0:
			open := gs.openHomeCenters(power)
			n := diff
			if len(open) < n {
				n = len(open)
			}
			for i := 0; i < n; i++ {
				oc.Insert(&Order{Kind: KindBuild, Owner: power, BuildLocation: -1})
			}
		case diff < 0:
			for i := 0; i < -diff; i++ {
				oc.Insert(&Order{Kind: KindDisband, Owner: power})
			}
		}
	}
	return oc
}

// ResolveBuilds performs the non-iterative build/disband assignment.
// For each power's build orders, its open home centers are walked
// in deterministic (province id) order and matched to the first order
// that targets them; unmatched orders are postponed in place. For
// disbands, unmatched orders are matched to the power's own units in
// civil-disorder order (farthest from home first — see
// disbandSelectionOrder).
func ResolveBuilds(m *Map, gs *GameState, oc *OrderCollection) {
	byPower := map[*Power][]*Order{}
	for _, o := range oc.All() {
		byPower[o.Owner] = append(byPower[o.Owner], o)
	}

	for power, orders := range byPower {
		var builds, disbands []*Order
		for _, o := range orders {
			switch o.Kind {
			case KindBuild:
				builds = append(builds, o)
			case KindDisband:
				disbands = append(disbands, o)
			}
		}
		if len(builds) > 0 {
			resolvePowerBuilds(m, gs, power, builds)
		}
		if len(disbands) > 0 {
			resolvePowerDisbands(m, gs, power, disbands)
		}
	}
}

func resolvePowerBuilds(m *Map, gs *GameState, power *Power, builds []*Order) {
	used := map[*Order]bool{}
	for _, home := range gs.openHomeCenters(power) {
		for _, b := range builds {
			if used[b] || b.BuildLocation < 0 {
				continue
			}
			if m.Locations[b.BuildLocation].ProvinceID == home {
				used[b] = true
				break
			}
		}
	}
	for _, b := range builds {
		if !used[b] {
			b.BuildLocation = -1
			b.BuildForce = ""
		}
	}
}

func resolvePowerDisbands(m *Map, gs *GameState, power *Power, disbands []*Order) {
	assigned := 0
	for _, d := range disbands {
		if d.DisbandUnit != nil {
			assigned++
		}
	}
	need := len(disbands) - assigned
	if need <= 0 {
		return
	}
	order := disbandSelectionOrder(m, gs, power)
	taken := map[*Unit]bool{}
	for _, d := range disbands {
		if d.DisbandUnit != nil {
			taken[d.DisbandUnit] = true
		}
	}
	i := 0
	for _, d := range disbands {
		if d.DisbandUnit != nil {
			continue
		}
		for i < len(order) && taken[order[i]] {
			i++
		}
		if i >= len(order) {
			break
		}
		d.DisbandUnit = order[i]
		taken[order[i]] = true
		i++
	}
}

// disbandSelectionOrder picks civil-disorder disbands deterministically:
// units are disbanded farthest-from-home first, by BFS distance over the
// map graph, ties broken by ascending unit id.
func disbandSelectionOrder(m *Map, gs *GameState, power *Power) []*Unit {
	units := gs.UnitsOf(power)
	type scored struct {
		u    *Unit
		dist int
	}
	var scoredUnits []scored
	for _, u := range units {
		scoredUnits = append(scoredUnits, scored{u, minDistanceToHome(m, u.ProvinceID(), power.HomeCenters)})
	}
	sort.SliceStable(scoredUnits, func(i, j int) bool {
		if scoredUnits[i].dist != scoredUnits[j].dist {
			return scoredUnits[i].dist > scoredUnits[j].dist
		}
		return scoredUnits[i].u.ID < scoredUnits[j].u.ID
	})
	out := make([]*Unit, len(scoredUnits))
	for i, s := range scoredUnits {
		out[i] = s.u
	}
	return out
}

func minDistanceToHome(m *Map, fromProvince int, homes []int) int {
	if len(homes) == 0 {
		return 1 << 30
	}
	homeSet := map[int]bool{}
	for _, h := range homes {
		homeSet[h] = true
	}
	if homeSet[fromProvince] {
		return 0
	}
	visited := map[int]bool{fromProvince: true}
	frontier := []int{fromProvince}
	dist := 0
	for len(frontier) > 0 {
		dist++
		var next []int
		for _, p := range frontier {
			for _, loc := range m.LocationsOf(p) {
				for _, adjID := range loc.Connections {
					adjProvince := m.Locations[adjID].ProvinceID
					if visited[adjProvince] {
						continue
					}
					if homeSet[adjProvince] {
						return dist
					}
					visited[adjProvince] = true
					next = append(next, adjProvince)
				}
			}
		}
		frontier = next
	}
	return 1 << 30
}
