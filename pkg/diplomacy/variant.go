package diplomacy

import "strings"

// Variant is the immutable set of game parameters layered on top of a Map:
// the powers playing, their home centers, the starting deployment, the
// starting year, and the win threshold.
type Variant struct {
	Name         string
	Map          *Map
	StartingYear int
	WinThreshold int

	Powers        map[string]*Power
	StartingUnits []StartingUnit
}

// StartingUnit places one unit at game start.
type StartingUnit struct {
	Force      string
	Power      string
	LocationID int
}

func (v *Variant) Power(name string) (*Power, bool) {
	p, ok := v.Powers[name]
	return p, ok
}

// standardStartingUnits lists the classic 1901 deployment, expressed as
// province codes with an explicit coast for the Russian fleet at St.
// Petersburg.
var standardStartingUnits = []struct {
	force, power, province, coast string
}{
	{"Army", "Austria", "vie", ""}, {"Army", "Austria", "bud", ""}, {"Fleet", "Austria", "tri", ""},
	{"Fleet", "England", "lon", ""}, {"Fleet", "England", "edi", ""}, {"Army", "England", "lvp", ""},
	{"Fleet", "France", "bre", ""}, {"Army", "France", "par", ""}, {"Army", "France", "mar", ""},
	{"Fleet", "Germany", "kie", ""}, {"Army", "Germany", "ber", ""}, {"Army", "Germany", "mun", ""},
	{"Fleet", "Italy", "nap", ""}, {"Army", "Italy", "rom", ""}, {"Army", "Italy", "ven", ""},
	{"Fleet", "Russia", "stp", "sc"}, {"Army", "Russia", "mos", ""}, {"Army", "Russia", "war", ""}, {"Fleet", "Russia", "sev", ""},
	{"Fleet", "Turkey", "ank", ""}, {"Army", "Turkey", "con", ""}, {"Army", "Turkey", "smy", ""},
}

// standardHomeCenters mirrors the supply-center ownership assigned to each
// power at game start; centers with no power ("") are neutral.
var standardHomeCenters = map[string][]string{
	"Austria": {"vie", "bud", "tri"},
	"England": {"lon", "edi", "lvp"},
	"France":  {"bre", "par", "mar"},
	"Germany": {"kie", "ber", "mun"},
	"Italy":   {"nap", "rom", "ven"},
	"Russia":  {"stp", "mos", "war", "sev"},
	"Turkey":  {"ank", "con", "smy"},
}

var standardGenitives = map[string]string{
	"Austria": "Austria's", "England": "England's", "France": "France's",
	"Germany": "Germany's", "Italy": "Italy's", "Russia": "Russia's", "Turkey": "Turkey's",
}

// StandardVariant builds the classic seven-power variant on the standard map.
func StandardVariant() (*Variant, error) {
	m := StandardMap()

	powers := map[string]*Power{}
	for name, centers := range standardHomeCenters {
		var ids []int
		for _, code := range centers {
			p, ok := m.ProvinceByAbbreviation(code)
			if !ok {
				return nil, NewMapError("StandardVariant", "unknown home center "+code)
			}
			ids = append(ids, p.ID)
		}
		powers[name] = &Power{Name: name, Genitive: standardGenitives[name], HomeCenters: ids}
	}

	var units []StartingUnit
	for _, su := range standardStartingUnits {
		prov, ok := m.ProvinceByAbbreviation(su.province)
		if !ok {
			return nil, NewMapError("StandardVariant", "unknown starting province "+su.province)
		}
		loc, err := locationForForceAtProvince(m, su.force, prov.ID, su.coast)
		if err != nil {
			return nil, err
		}
		units = append(units, StartingUnit{Force: su.force, Power: su.power, LocationID: loc.ID})
	}

	return &Variant{
		Name:          "standard",
		Map:           m,
		StartingYear:  1901,
		WinThreshold:  18,
		Powers:        powers,
		StartingUnits: units,
	}, nil
}

func locationForForceAtProvince(m *Map, force string, provinceID int, coastSpec string) (*Location, error) {
	for _, loc := range m.LocationsOf(provinceID) {
		if loc.Geography.Force.Name != force {
			continue
		}
		if coastSpec == "" {
			return loc, nil
		}
		full := loc.Geography.Force.ShortForms[coastSpec]
		if full != "" && strings.HasSuffix(loc.Name, "("+full+")") {
			return loc, nil
		}
		if coastSpec != "" && full == "" {
			return loc, nil
		}
	}
	return nil, NewMapError("locationForForceAtProvince", "no location found")
}
