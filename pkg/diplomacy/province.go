package diplomacy

// Province is a stable-id, named region of the map. Immutable for the
// duration of a game; a three-letter abbreviation and a supply-center flag
// travel with it.
type Province struct {
	ID             int
	Name           string
	Abbreviation   string
	IsSupplyCenter bool

	// HomePower is the power whose home center this is, or "" if none.
	HomePower string
}
