package diplomacy

import "fmt"

// Map is the immutable topology for one board: provinces, locations,
// forces, and geographies. Constructed once per game and never mutated
// afterward; NewMap checks the location-id-contiguity invariant ("the
// location at index k has id k") once at construction rather than on
// every lookup.
type Map struct {
	Name string

	Forces      map[string]*Force
	Geographies map[string]*Geography
	Provinces   []*Province
	Locations   []*Location

	SupplyCenterIDs []int

	provinceByName map[string]*Province
	provinceByAbbr map[string]*Province
}

// NewMap assembles a Map from already-built components.
func NewMap(name string, forces map[string]*Force, geographies map[string]*Geography, provinces []*Province, locations []*Location) (*Map, error) {
	m := &Map{
		Name:           name,
		Forces:         forces,
		Geographies:    geographies,
		Provinces:      provinces,
		Locations:      locations,
		provinceByName: map[string]*Province{},
		provinceByAbbr: map[string]*Province{},
	}
	for _, p := range provinces {
		m.provinceByName[p.Name] = p
		if p.Abbreviation != "" {
			m.provinceByAbbr[p.Abbreviation] = p
		}
		if p.IsSupplyCenter {
			m.SupplyCenterIDs = append(m.SupplyCenterIDs, p.ID)
		}
	}
	if err := m.checkInvariant(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) checkInvariant() error {
	for k, loc := range m.Locations {
		if loc.ID != k {
			return NewMapError("NewMap", fmt.Sprintf("location at index %d has id %d", k, loc.ID))
		}
	}
	return nil
}

func (m *Map) ProvinceByID(id int) *Province { return m.Provinces[id] }

func (m *Map) ProvinceByName(name string) (*Province, bool) {
	p, ok := m.provinceByName[name]
	return p, ok
}

func (m *Map) ProvinceByAbbreviation(abbr string) (*Province, bool) {
	p, ok := m.provinceByAbbr[abbr]
	return p, ok
}

// LocationsOf returns every location belonging to the given province.
func (m *Map) LocationsOf(provinceID int) []*Location {
	var out []*Location
	for _, loc := range m.Locations {
		if loc.ProvinceID == provinceID {
			out = append(out, loc)
		}
	}
	return out
}

// Instance is the map's generic by-name registry lookup, used by the
// parser-facing contract to resolve a force or geography by name
// without the caller knowing which kind of thing it is.
func (m *Map) Instance(name, class string) (interface{}, error) {
	switch class {
	case "force":
		if f, ok := m.Forces[name]; ok {
			return f, nil
		}
	case "geography":
		if g, ok := m.Geographies[name]; ok {
			return g, nil
		}
	default:
		return nil, NewMapError("Instance", "unknown class "+class)
	}
	return nil, NewMapError("Instance", fmt.Sprintf("no %s named %q", class, name))
}
