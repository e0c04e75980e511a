package diplomacy

import (
	"math/rand"
	"testing"
)

// FuzzResolveDiplomacy checks that resolving a random set of legally-typed
// orders never panics and always leaves every order's status bounds both
// resolved (min == max) and ordered (min <= max). It checks only the end
// state, not how the bounds move between passes.
func FuzzResolveDiplomacy(f *testing.F) {
	f.Add(int64(42))
	f.Add(int64(123456))
	f.Add(int64(0))

	f.Fuzz(func(t *testing.T, seed int64) {
		rng := rand.New(rand.NewSource(seed))
		v, err := StandardVariant()
		if err != nil {
			t.Fatal(err)
		}
		gs, err := NewGame(v)
		if err != nil {
			t.Fatal(err)
		}

		oc := NewOrderCollection()
		for _, u := range gs.Units {
			oc.Insert(randomOrder(rng, u, gs))
		}

		if err := ResolveDiplomacy(gs.Map, oc); err != nil {
			t.Fatalf("resolve: %v", err)
		}

		for _, o := range oc.All() {
			if o.MinStatus() > o.MaxStatus() {
				t.Errorf("order %d: minStatus %v > maxStatus %v", o.ID, o.MinStatus(), o.MaxStatus())
			}
			if !o.StatusResolved() {
				t.Errorf("order %d: left unresolved (min %v, max %v)", o.ID, o.MinStatus(), o.MaxStatus())
			}
		}
	})
}

// randomOrder builds a syntactically well-formed but semantically arbitrary
// order for u: mostly Hold/Move to an adjacent location, occasionally a
// Support of some other unit, so the fuzzer exercises support-cutting and
// head-to-head paths without ever needing to construct a legal convoy.
func randomOrder(rng *rand.Rand, u *Unit, gs *GameState) *Order {
	hold := &Order{Kind: KindHold, Owner: u.Owner, Unit: u, Source: u.Location.ID}
	adj := gs.Map.Locations[u.Location.ID].Connections
	if len(adj) == 0 {
		return hold
	}

	switch rng.Intn(3) {
	case 0:
		return hold
	case 1:
		target := adj[rng.Intn(len(adj))]
		return &Order{Kind: KindMove, Owner: u.Owner, Unit: u, Source: u.Location.ID, Target: target}
	default:
		auxLoc := adj[rng.Intn(len(adj))]
		supported := gs.UnitAt(gs.Map.Locations[auxLoc].ProvinceID)
		if supported == nil {
			return hold
		}
		return &Order{
			Kind: KindSupport, Owner: u.Owner, Unit: u, Source: u.Location.ID,
			AuxSource: supported.Location.ID, HasAux: false,
		}
	}
}
