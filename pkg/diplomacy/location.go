package diplomacy

import (
	"strconv"
	"strings"
)

// Location is a (Province, Geography) pair: a place a unit of a specific
// Force may stand. Its id is a dense array index — the location at index k
// must have ID==k, checked once at Map construction (see Map.checkInvariant).
// Adjacency is recorded per-location, not per-province, because a coastal
// province may have several locations (one per coast) with distinct
// neighborhoods.
type Location struct {
	ID          int
	Name        string
	ProvinceID  int
	Geography   *Geography
	Connections []int
}

func (l *Location) String() string { return l.Name }

// Force is the kind of unit this Location may contain, derived from its
// Geography.
func (l *Location) Force() *Force { return l.Geography.Force }

// ReachesLocation reports whether b is adjacent to a, i.e. b.ID is in a's
// connection list.
func (m *Map) ReachesLocation(a, b *Location) bool {
	for _, id := range a.Connections {
		if id == b.ID {
			return true
		}
	}
	return false
}

// ReachesProvince reports whether some location of province p is adjacent
// to a.
func (m *Map) ReachesProvince(a *Location, p int) bool {
	for _, id := range a.Connections {
		if m.Locations[id].ProvinceID == p {
			return true
		}
	}
	return false
}

// HasPath reports whether a non-empty chain of locations drawn from via
// connects sourceProvince to targetProvince: the first element of the chain
// is adjacent to a location of sourceProvince, each consecutive pair is
// adjacent, and the last is adjacent to a location of targetProvince. It
// never returns true for source and target themselves being adjacent — a
// convoy demands at least one intermediate fleet. Implemented as iterative
// frontier expansion over via, which terminates because the frontier only
// grows and is bounded by len(via).
func (m *Map) HasPath(sourceProvince, targetProvince int, via []int) bool {
	viaSet := make(map[int]bool, len(via))
	for _, id := range via {
		viaSet[id] = true
	}

	frontier := map[int]bool{}
	for _, id := range via {
		loc := m.Locations[id]
		if m.ReachesProvince(loc, sourceProvince) {
			frontier[id] = true
		}
	}

	visited := map[int]bool{}
	for len(frontier) > 0 {
		next := map[int]bool{}
		reachedTarget := false
		for id := range frontier {
			if visited[id] {
				continue
			}
			visited[id] = true
			loc := m.Locations[id]
			if m.ReachesProvince(loc, targetProvince) {
				reachedTarget = true
			}
			for _, adjID := range loc.Connections {
				if viaSet[adjID] && !visited[adjID] {
					next[adjID] = true
				}
			}
		}
		if reachedTarget {
			return true
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return false
}

// Locate resolves partial identifying information into a single Location,
// per the parser-facing locate() contract: an exact location id always
// wins; otherwise candidates are filtered by name and force, then (if still
// ambiguous) by adjacency to origin, then by coast specifier, then — if
// either is true — the first remaining candidate is accepted; otherwise
// ambiguity is an error. An empty candidate set returns (nil, nil): "none"
// is not itself an error.
func (m *Map) Locate(force *Force, identifier string, originID *int, specifier string, either bool) (*Location, error) {
	if id, ok := m.locationIDByExactID(identifier); ok {
		return m.Locations[id], nil
	}

	var candidates []*Location
	lower := strings.ToLower(strings.TrimSpace(identifier))
	for _, loc := range m.Locations {
		if force != nil && loc.Geography.Force != force {
			continue
		}
		prov := m.Provinces[loc.ProvinceID]
		if strings.HasPrefix(strings.ToLower(loc.Name), lower) ||
			strings.EqualFold(prov.Name, identifier) ||
			strings.EqualFold(prov.Abbreviation, identifier) {
			candidates = append(candidates, loc)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if originID != nil {
		origin := m.Locations[*originID]
		var filtered []*Location
		for _, loc := range candidates {
			if m.ReachesLocation(origin, loc) {
				filtered = append(filtered, loc)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if specifier != "" {
		var filtered []*Location
		spec := strings.ToLower(specifier)
		for _, loc := range candidates {
			full := spec
			if f := loc.Geography.Force; f != nil && f.ShortForms[spec] != "" {
				full = "(" + f.ShortForms[spec] + ")"
			}
			if strings.HasSuffix(strings.ToLower(loc.Name), full) {
				filtered = append(filtered, loc)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if either {
		return candidates[0], nil
	}
	return nil, NewMapError("locate", "ambiguous location identifier: "+identifier)
}

// locationIDByExactID implements locate() rule 1: identifier is itself a
// location id.
func (m *Map) locationIDByExactID(identifier string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(identifier))
	if err != nil || id < 0 || id >= len(m.Locations) {
		return 0, false
	}
	return id, true
}
