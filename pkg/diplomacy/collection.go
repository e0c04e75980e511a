package diplomacy

import "sort"

// OrderCollection is the phase-scoped container of all orders for one
// phase, indexed by unit and by province, with the helpers the resolver
// and the retreat/build resolvers need.
type OrderCollection struct {
	orders     []*Order
	byUnit     map[*Unit]*Order
	byProvince map[int]*Order // keyed by the ordered unit's province id
	nextID     int
}

func NewOrderCollection() *OrderCollection {
	return &OrderCollection{
		byUnit:     map[*Unit]*Order{},
		byProvince: map[int]*Order{},
	}
}

func (c *OrderCollection) Insert(o *Order) {
	o.ID = c.nextID
	c.nextID++
	c.orders = append(c.orders, o)
	if o.Unit != nil {
		c.byUnit[o.Unit] = o
		c.byProvince[o.Unit.ProvinceID()] = o
	}
}

func (c *OrderCollection) Remove(o *Order) {
	for i, other := range c.orders {
		if other == o {
			c.orders = append(c.orders[:i], c.orders[i+1:]...)
			break
		}
	}
	if o.Unit != nil {
		delete(c.byUnit, o.Unit)
		delete(c.byProvince, o.Unit.ProvinceID())
	}
}

// RemoveUnit drops whatever order is standing for the given unit — used
// when a unit is removed mid-phase (dislodged, disbanded) so no stale
// order references it afterward.
func (c *OrderCollection) RemoveUnit(u *Unit) {
	if o, ok := c.byUnit[u]; ok {
		c.Remove(o)
	}
}

func (c *OrderCollection) All() []*Order { return c.orders }

func (c *OrderCollection) Len() int { return len(c.orders) }

// OrderOf returns the order standing for the given unit, or nil.
func (c *OrderCollection) OrderOf(u *Unit) *Order {
	return c.byUnit[u]
}

// OrderIn returns the order whose ordered unit stands in the given
// province, or nil.
func (c *OrderCollection) OrderIn(provinceID int) *Order {
	return c.byProvince[provinceID]
}

// Aids returns every Support order in the collection whose object order is
// object-equivalent to o — "every support of o": for a Move, the
// support must name the same source province and the same target
// province; for a non-Move, the support must name the same source
// province and itself be a support-hold (no declared move target).
func (c *OrderCollection) Aids(o *Order, m *Map) []*Order {
	srcProvince := o.Unit.ProvinceID()
	isMove := o.Kind == KindMove
	var tgtProvince int
	if isMove {
		tgtProvince = m.Locations[o.Target].ProvinceID
	}

	var out []*Order
	for _, cand := range c.orders {
		if cand.Kind != KindSupport {
			continue
		}
		if m.Locations[cand.AuxSource].ProvinceID != srcProvince {
			continue
		}
		if cand.HasAux != isMove {
			continue
		}
		if isMove && m.Locations[cand.AuxTarget].ProvinceID != tgtProvince {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// AllMovesTo returns every Move order targeting the given province.
func (c *OrderCollection) AllMovesTo(provinceID int, m *Map) []*Order {
	var out []*Order
	for _, o := range c.orders {
		if o.Kind == KindMove && m.Locations[o.Target].ProvinceID == provinceID {
			out = append(out, o)
		}
	}
	return out
}

// Blocks returns the union of every order's Blocks(): the target location
// ids of Moves known to succeed.
func (c *OrderCollection) Blocks() map[int]bool {
	out := map[int]bool{}
	for _, o := range c.orders {
		for _, p := range o.Blocks() {
			out[p] = true
		}
	}
	return out
}

// Sort orders the collection by relevance (Convoy, Move, Support, Hold)
// for fixed-point iteration speed; the result of resolution never depends
// on this order, only its cost.
func (c *OrderCollection) Sort() {
	sort.SliceStable(c.orders, func(i, j int) bool {
		return c.orders[i].Kind.relevance() < c.orders[j].Kind.relevance()
	})
}

// Unresolved returns every order not yet fully resolved.
func (c *OrderCollection) Unresolved() []*Order {
	var out []*Order
	for _, o := range c.orders {
		if !o.Resolved() {
			out = append(out, o)
		}
	}
	return out
}
