package diplomacy

// Power is a player slot: name, genitive form for display ("Austria's"),
// and the list of home-center province ids. Powers are part of the
// Variant, not the Map, since a map may be played by several variants with
// different home-center assignments.
type Power struct {
	Name        string
	Genitive    string
	HomeCenters []int
}

func (p *Power) String() string { return p.Name }

// Unit is a playing piece: a monotonic id, an owning Power, a Force, and a
// current Location. Its province is derived from its location. Equality is
// by identity (pointer), never by attribute comparison — two units of the
// same power and force standing in the same province over the game's
// lifetime are still distinct units if their ids differ.
type Unit struct {
	ID       int
	Owner    *Power
	Force    *Force
	Location *Location
}

func (u *Unit) ProvinceID() int { return u.Location.ProvinceID }
