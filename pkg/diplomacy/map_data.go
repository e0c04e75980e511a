package diplomacy

import (
	"fmt"
	"sort"
	"sync"
)

// pdata and edata are the raw standard-map facts: which provinces exist,
// their kind and supply-center status, and which pairs of provinces admit
// army and/or fleet movement (with coast specifiers where a province has
// split coasts). This is the same province/adjacency information the
// teacher's original hand-built DiplomacyMap carried; it is restructured
// here into the dense Location-graph model rather than kept as a
// province-keyed adjacency table, since split coasts need distinct
// locations with distinct neighborhoods.
type pdata struct {
	code   string
	name   string
	kind   string // "land", "coastal", "sea"
	sc     bool
	home   string
	coasts []string // coast specifier short forms, only for split-coast provinces
}

type edata struct {
	fromCode, toCode   string
	fromCoast, toCoast string // "" unless the endpoint is a split-coast province
	army, fleet        bool
}

var standardProvinces = []pdata{
	// inland (14)
	{"boh", "Bohemia", "land", false, "", nil},
	{"bud", "Budapest", "land", true, "Austria", nil},
	{"bur", "Burgundy", "land", false, "", nil},
	{"gal", "Galicia", "land", false, "", nil},
	{"mos", "Moscow", "land", true, "Russia", nil},
	{"mun", "Munich", "land", true, "Germany", nil},
	{"par", "Paris", "land", true, "France", nil},
	{"ruh", "Ruhr", "land", false, "", nil},
	{"ser", "Serbia", "land", true, "", nil},
	{"sil", "Silesia", "land", false, "", nil},
	{"tyr", "Tyrolia", "land", false, "", nil},
	{"ukr", "Ukraine", "land", false, "", nil},
	{"vie", "Vienna", "land", true, "Austria", nil},
	{"war", "Warsaw", "land", true, "Russia", nil},

	// coastal without split coasts (39)
	{"alb", "Albania", "coastal", false, "", nil},
	{"ank", "Ankara", "coastal", true, "Turkey", nil},
	{"apu", "Apulia", "coastal", false, "", nil},
	{"arm", "Armenia", "coastal", false, "", nil},
	{"bel", "Belgium", "coastal", true, "", nil},
	{"ber", "Berlin", "coastal", true, "Germany", nil},
	{"bre", "Brest", "coastal", true, "France", nil},
	{"cly", "Clyde", "coastal", false, "", nil},
	{"con", "Constantinople", "coastal", true, "Turkey", nil},
	{"den", "Denmark", "coastal", true, "", nil},
	{"edi", "Edinburgh", "coastal", true, "England", nil},
	{"fin", "Finland", "coastal", false, "", nil},
	{"gas", "Gascony", "coastal", false, "", nil},
	{"gre", "Greece", "coastal", true, "", nil},
	{"hol", "Holland", "coastal", true, "", nil},
	{"kie", "Kiel", "coastal", true, "Germany", nil},
	{"lon", "London", "coastal", true, "England", nil},
	{"lvn", "Livonia", "coastal", false, "", nil},
	{"lvp", "Liverpool", "coastal", true, "England", nil},
	{"mar", "Marseilles", "coastal", true, "France", nil},
	{"naf", "North Africa", "coastal", false, "", nil},
	{"nap", "Naples", "coastal", true, "Italy", nil},
	{"nwy", "Norway", "coastal", true, "", nil},
	{"pic", "Picardy", "coastal", false, "", nil},
	{"pie", "Piedmont", "coastal", false, "", nil},
	{"por", "Portugal", "coastal", true, "", nil},
	{"pru", "Prussia", "coastal", false, "", nil},
	{"rom", "Rome", "coastal", true, "Italy", nil},
	{"rum", "Rumania", "coastal", true, "", nil},
	{"sev", "Sevastopol", "coastal", true, "Russia", nil},
	{"smy", "Smyrna", "coastal", true, "Turkey", nil},
	{"swe", "Sweden", "coastal", true, "", nil},
	{"syr", "Syria", "coastal", false, "", nil},
	{"tri", "Trieste", "coastal", true, "Austria", nil},
	{"tun", "Tunisia", "coastal", true, "", nil},
	{"tus", "Tuscany", "coastal", false, "", nil},
	{"ven", "Venice", "coastal", true, "Italy", nil},
	{"wal", "Wales", "coastal", false, "", nil},
	{"yor", "Yorkshire", "coastal", false, "", nil},

	// split-coast (3)
	{"bul", "Bulgaria", "coastal", true, "", []string{"ec", "sc"}},
	{"spa", "Spain", "coastal", true, "", []string{"nc", "sc"}},
	{"stp", "St. Petersburg", "coastal", true, "Russia", []string{"nc", "sc"}},

	// sea (19)
	{"adr", "Adriatic Sea", "sea", false, "", nil},
	{"aeg", "Aegean Sea", "sea", false, "", nil},
	{"bal", "Baltic Sea", "sea", false, "", nil},
	{"bar", "Barents Sea", "sea", false, "", nil},
	{"bla", "Black Sea", "sea", false, "", nil},
	{"bot", "Gulf of Bothnia", "sea", false, "", nil},
	{"eas", "Eastern Mediterranean", "sea", false, "", nil},
	{"eng", "English Channel", "sea", false, "", nil},
	{"gol", "Gulf of Lyon", "sea", false, "", nil},
	{"hel", "Heligoland Bight", "sea", false, "", nil},
	{"ion", "Ionian Sea", "sea", false, "", nil},
	{"iri", "Irish Sea", "sea", false, "", nil},
	{"mao", "Mid-Atlantic Ocean", "sea", false, "", nil},
	{"nao", "North Atlantic Ocean", "sea", false, "", nil},
	{"nrg", "Norwegian Sea", "sea", false, "", nil},
	{"nth", "North Sea", "sea", false, "", nil},
	{"ska", "Skagerrak", "sea", false, "", nil},
	{"tys", "Tyrrhenian Sea", "sea", false, "", nil},
	{"wes", "Western Mediterranean", "sea", false, "", nil},
}

func e(from, to string, army, fleet bool) edata {
	return edata{fromCode: from, toCode: to, army: army, fleet: fleet}
}

func ec(from, fc, to, tc string) edata {
	return edata{fromCode: from, toCode: to, fromCoast: fc, toCoast: tc, fleet: true}
}

var standardEdges = buildStandardEdges()

func buildStandardEdges() []edata {
	var edges []edata
	fleetOnly := func(a, b string) { edges = append(edges, e(a, b, false, true)) }
	armyOnly := func(a, b string) { edges = append(edges, e(a, b, true, false)) }
	both := func(a, b string) { edges = append(edges, e(a, b, true, true)) }

	// sea-to-sea
	for _, p := range [][2]string{
		{"adr", "ion"}, {"aeg", "eas"}, {"aeg", "ion"}, {"bal", "bot"},
		{"eng", "iri"}, {"eng", "mao"}, {"eng", "nth"}, {"gol", "tys"},
		{"gol", "wes"}, {"hel", "nth"}, {"ion", "eas"}, {"ion", "tys"},
		{"iri", "mao"}, {"iri", "nao"}, {"mao", "nao"}, {"mao", "wes"},
		{"nao", "nrg"}, {"nth", "nrg"}, {"nth", "ska"}, {"nrg", "bar"},
		{"tys", "wes"},
	} {
		fleetOnly(p[0], p[1])
	}

	// sea-to-coastal (fleet only)
	for _, p := range [][2]string{
		{"adr", "alb"}, {"adr", "apu"}, {"adr", "tri"}, {"adr", "ven"},
		{"aeg", "con"}, {"aeg", "gre"}, {"aeg", "smy"},
		{"bal", "ber"}, {"bal", "den"}, {"bal", "kie"}, {"bal", "lvn"}, {"bal", "pru"}, {"bal", "swe"},
		{"bar", "nwy"},
		{"bla", "ank"}, {"bla", "arm"}, {"bla", "con"}, {"bla", "rum"}, {"bla", "sev"},
		{"bot", "fin"}, {"bot", "lvn"}, {"bot", "swe"},
		{"eas", "smy"}, {"eas", "syr"},
		{"eng", "bel"}, {"eng", "bre"}, {"eng", "lon"}, {"eng", "pic"}, {"eng", "wal"},
		{"gol", "mar"}, {"gol", "pie"}, {"gol", "tus"},
		{"hel", "den"}, {"hel", "hol"}, {"hel", "kie"},
		{"ion", "alb"}, {"ion", "apu"}, {"ion", "gre"}, {"ion", "nap"}, {"ion", "tun"},
		{"iri", "lvp"}, {"iri", "wal"},
		{"mao", "bre"}, {"mao", "gas"}, {"mao", "naf"}, {"mao", "por"},
		{"nao", "cly"}, {"nao", "lvp"},
		{"nth", "bel"}, {"nth", "den"}, {"nth", "edi"}, {"nth", "hol"}, {"nth", "lon"}, {"nth", "nwy"}, {"nth", "yor"},
		{"nrg", "cly"}, {"nrg", "edi"}, {"nrg", "nwy"},
		{"ska", "den"}, {"ska", "nwy"}, {"ska", "swe"},
		{"tys", "nap"}, {"tys", "rom"}, {"tys", "tun"}, {"tys", "tus"},
		{"wes", "naf"}, {"wes", "tun"},
	} {
		fleetOnly(p[0], p[1])
	}

	// split-coast sea adjacencies
	edges = append(edges,
		ec("aeg", "", "bul", "sc"),
		ec("bar", "", "stp", "nc"),
		ec("bla", "", "bul", "ec"),
		ec("bot", "", "stp", "sc"),
		ec("gol", "", "spa", "sc"),
		ec("mao", "", "spa", "nc"),
		ec("mao", "", "spa", "sc"),
		ec("wes", "", "spa", "sc"),
	)

	// inland-to-inland (army only)
	for _, p := range [][2]string{
		{"boh", "gal"}, {"boh", "mun"}, {"boh", "sil"}, {"boh", "tyr"}, {"boh", "vie"},
		{"bud", "gal"}, {"bud", "vie"},
		{"bur", "mun"}, {"bur", "par"}, {"bur", "ruh"},
		{"gal", "sil"}, {"gal", "ukr"}, {"gal", "vie"}, {"gal", "war"},
		{"mos", "ukr"}, {"mos", "war"},
		{"mun", "ruh"}, {"mun", "sil"}, {"mun", "tyr"},
		{"sil", "war"}, {"tyr", "vie"}, {"ukr", "war"},
	} {
		armyOnly(p[0], p[1])
	}

	// inland-to-coastal (army only)
	for _, p := range [][2]string{
		{"bud", "rum"}, {"bud", "ser"}, {"bud", "tri"},
		{"bur", "bel"}, {"bur", "gas"}, {"bur", "mar"}, {"bur", "pic"},
		{"gal", "rum"}, {"gas", "mar"},
		{"mos", "lvn"}, {"mos", "sev"}, {"mos", "stp"},
		{"mun", "ber"}, {"mun", "kie"},
		{"par", "bre"}, {"par", "gas"}, {"par", "pic"},
		{"ruh", "bel"}, {"ruh", "hol"}, {"ruh", "kie"},
		{"ser", "alb"}, {"ser", "bul"}, {"ser", "gre"}, {"ser", "rum"}, {"ser", "tri"},
		{"sil", "ber"}, {"sil", "pru"},
		{"tyr", "pie"}, {"tyr", "tri"}, {"tyr", "ven"},
		{"ukr", "rum"}, {"ukr", "sev"},
		{"vie", "tri"}, {"war", "lvn"}, {"war", "pru"},
	} {
		armyOnly(p[0], p[1])
	}

	// coastal-to-coastal: both army and fleet
	for _, p := range [][2]string{
		{"alb", "gre"}, {"alb", "tri"}, {"ank", "arm"}, {"ank", "con"},
		{"apu", "nap"}, {"apu", "ven"}, {"bel", "hol"}, {"bel", "pic"},
		{"ber", "kie"}, {"ber", "pru"}, {"bre", "gas"}, {"bre", "pic"},
		{"cly", "edi"}, {"cly", "lvp"}, {"con", "smy"}, {"den", "kie"},
		{"den", "swe"}, {"edi", "yor"}, {"fin", "swe"}, {"hol", "kie"},
		{"lon", "wal"}, {"lon", "yor"}, {"lvp", "wal"}, {"mar", "pie"},
		{"naf", "tun"}, {"nwy", "swe"}, {"pie", "tus"}, {"pru", "lvn"},
		{"rom", "nap"}, {"rom", "tus"}, {"sev", "arm"}, {"sev", "rum"},
		{"smy", "syr"}, {"tri", "ven"},
	} {
		both(p[0], p[1])
	}

	// coastal-to-coastal army-only (share land border, face different seas)
	for _, p := range [][2]string{
		{"ank", "smy"}, {"apu", "rom"}, {"arm", "smy"}, {"arm", "syr"},
		{"edi", "lvp"}, {"fin", "nwy"}, {"lvp", "yor"}, {"pie", "ven"},
		{"rom", "ven"}, {"tus", "ven"}, {"wal", "yor"},
	} {
		armyOnly(p[0], p[1])
	}

	// coastal-to-coastal fleet-only (sea border, no shared land border)
	edges = append(edges,
		ec("con", "", "bul", "ec"), ec("con", "", "bul", "sc"),
		ec("gre", "", "bul", "sc"), ec("rum", "", "bul", "ec"),
		ec("gas", "", "spa", "nc"), ec("mar", "", "spa", "sc"),
		ec("por", "", "spa", "nc"), ec("por", "", "spa", "sc"),
		ec("fin", "", "stp", "sc"), ec("lvn", "", "stp", "sc"),
		ec("nwy", "", "stp", "nc"),
	)

	// coastal-to-split-coast army-only (land border, no shared fleet passage)
	for _, p := range [][2]string{
		{"con", "bul"}, {"gre", "bul"}, {"rum", "bul"},
		{"gas", "spa"}, {"mar", "spa"}, {"por", "spa"},
		{"fin", "stp"}, {"lvn", "stp"}, {"nwy", "stp"},
	} {
		armyOnly(p[0], p[1])
	}

	return edges
}

var (
	stdMapOnce sync.Once
	stdMapInst *Map
)

// StandardMap returns the standard 75-province Diplomacy map, built once
// and cached. Callers must not mutate the returned map.
func StandardMap() *Map {
	stdMapOnce.Do(func() {
		var err error
		stdMapInst, err = buildStandardMap()
		if err != nil {
			panic(err)
		}
	})
	return stdMapInst
}

func buildStandardMap() (*Map, error) {
	army := &Force{
		Name:       "Army",
		MayReceive: []string{"hold", "move", "support", "convoy"},
	}
	fleet := &Force{
		Name:       "Fleet",
		MayReceive: []string{"hold", "move", "support"},
		Specifiers: []string{"north coast", "south coast", "east coast", "west coast"},
		ShortForms: map[string]string{
			"nc": "north coast", "sc": "south coast",
			"ec": "east coast", "wc": "west coast",
		},
	}
	forces := map[string]*Force{"Army": army, "Fleet": fleet}

	inland := &Geography{Name: "inland", Force: army, Orders: []string{"hold", "move", "support"}}
	coast := &Geography{Name: "coast", Force: fleet, Orders: []string{"hold", "move", "support"}}
	sea := &Geography{Name: "sea", Force: fleet, Orders: []string{"hold", "move", "support", "convoy"}}
	geographies := map[string]*Geography{"inland": inland, "coast": coast, "sea": sea}

	sorted := make([]pdata, len(standardProvinces))
	copy(sorted, standardProvinces)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].code < sorted[j].code })

	provinces := make([]*Province, len(sorted))
	codeToProvinceID := map[string]int{}
	for i, p := range sorted {
		codeToProvinceID[p.code] = i
		provinces[i] = &Province{
			ID:             i,
			Name:           p.name,
			Abbreviation:   p.code,
			IsSupplyCenter: p.sc,
			HomePower:      p.home,
		}
	}

	// inlandLoc[provinceID], coastLoc[provinceID][coastSpecifier] ("" for
	// unsplit coastal provinces), seaLoc[provinceID].
	var locations []*Location
	inlandLoc := map[int]int{}
	coastLoc := map[int]map[string]int{}
	seaLoc := map[int]int{}

	newLoc := func(name string, provinceID int, geo *Geography) int {
		id := len(locations)
		locations = append(locations, &Location{ID: id, Name: name, ProvinceID: provinceID, Geography: geo})
		return id
	}

	for i, p := range sorted {
		switch p.kind {
		case "land":
			inlandLoc[i] = newLoc(p.name, i, inland)
		case "coastal":
			inlandLoc[i] = newLoc(p.name, i, inland)
			if len(p.coasts) == 0 {
				coastLoc[i] = map[string]int{"": newLoc(p.name, i, coast)}
			} else {
				m := map[string]int{}
				for _, spec := range p.coasts {
					full := fleet.ShortForms[spec]
					m[spec] = newLoc(fmt.Sprintf("%s (%s)", p.name, full), i, coast)
				}
				coastLoc[i] = m
			}
		case "sea":
			seaLoc[i] = newLoc(p.name, i, sea)
		}
	}

	connect := func(a, b int) {
		la, lb := locations[a], locations[b]
		la.Connections = append(la.Connections, b)
		lb.Connections = append(lb.Connections, a)
	}

	coastLocOf := func(provinceID int, coastSpec string) int {
		m := coastLoc[provinceID]
		if id, ok := m[coastSpec]; ok {
			return id
		}
		// unsplit province referenced with a coast spec: only one coast location.
		for _, id := range m {
			return id
		}
		panic(fmt.Sprintf("no coast location for province %d spec %q", provinceID, coastSpec))
	}

	fleetLocOf := func(provinceID int, coastSpec string) int {
		if id, ok := seaLoc[provinceID]; ok {
			return id
		}
		return coastLocOf(provinceID, coastSpec)
	}

	for _, edge := range standardEdges {
		fromID := codeToProvinceID[edge.fromCode]
		toID := codeToProvinceID[edge.toCode]
		if edge.army {
			connect(inlandLoc[fromID], inlandLoc[toID])
		}
		if edge.fleet {
			connect(fleetLocOf(fromID, edge.fromCoast), fleetLocOf(toID, edge.toCoast))
		}
	}

	return NewMap("standard", forces, geographies, provinces, locations)
}
