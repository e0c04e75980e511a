package diplomacy

// Force is a unit kind: Army or Fleet in the standard variant, but the set
// is data-driven per map so a variant may introduce its own.
type Force struct {
	Name string

	// MayReceive lists the order kinds (by name: "hold", "move", "support",
	// "convoy") a unit of this Force may be the object of.
	MayReceive []string

	// Specifiers is the ordered list of coast specifiers a location of this
	// Force may carry, e.g. "north coast", "south coast".
	Specifiers []string

	// ShortForms maps a specifier's abbreviation ("nc") to its full form
	// ("north coast").
	ShortForms map[string]string
}

func (f *Force) String() string { return f.Name }

// Receives reports whether a unit of this Force may be the object of the
// named order kind.
func (f *Force) Receives(orderKind string) bool {
	for _, k := range f.MayReceive {
		if k == orderKind {
			return true
		}
	}
	return false
}

// Geography is a container kind pairing a Force with the orders available
// to a unit stationed there. The standard map has three: inland (Army;
// Hold, Move, Support), coast (Fleet; Hold, Move, Support), and sea (Fleet;
// Hold, Move, Support, Convoy).
type Geography struct {
	Name   string
	Force  *Force
	Orders []string
}

func (g *Geography) String() string { return g.Name }

// Allows reports whether a unit stationed at this Geography may issue the
// named order kind.
func (g *Geography) Allows(orderKind string) bool {
	for _, o := range g.Orders {
		if o == orderKind {
			return true
		}
	}
	return false
}
