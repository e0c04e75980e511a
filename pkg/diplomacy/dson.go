package diplomacy

import (
	"fmt"
	"strings"
)

// OrderText is the parsed-but-not-yet-resolved shape of one order line in
// DSON notation, the form a parser hands the core a located order in: province
// codes and coast specifiers as plain strings, ready to be turned into
// Locations via Map.Locate. Locating and legality are deliberately not
// done here — that is this package's job once OrderText is handed off,
// not the notation layer's.
type OrderText struct {
	Kind     OrderKind
	Force    string // "A" or "F"
	Province string
	Coast    string // "", "nc", "sc", "ec", "wc"

	Target      string
	TargetCoast string

	AuxForce    string
	AuxProvince string
	AuxCoast    string

	AuxTarget      string
	AuxTargetCoast string

	Waive bool // Builds phase: "waive" in place of a Build
}

// FormatOrders renders a slice of live Orders to DSON text, one order
// per archive entry, joined by " ; " the way an order log reads back,
// covering all seven order kinds rather than movement-only notation.
func FormatOrders(m *Map, orders []*Order) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		parts = append(parts, FormatOrder(m, o))
	}
	return strings.Join(parts, " ; ")
}

// FormatOrder renders one live Order to its DSON text form.
func FormatOrder(m *Map, o *Order) string {
	var b strings.Builder

	if o.Kind == KindBuild && o.BuildLocation < 0 {
		return "W"
	}

	switch o.Kind {
	case KindBuild:
		writeForceLocation(&b, m, o.BuildForce, o.BuildLocation)
		b.WriteString(" B")
		return b.String()
	case KindDisband:
		if o.DisbandUnit != nil {
			writeUnitLocation(&b, m, o.DisbandUnit)
		}
		b.WriteString(" D")
		return b.String()
	}

	writeUnitLocation(&b, m, o.Unit)

	switch o.Kind {
	case KindHold:
		b.WriteString(" H")
	case KindMove:
		b.WriteString(" - ")
		writeLocationID(&b, m, o.Target)
	case KindSupport:
		b.WriteString(" S ")
		writeLocationID(&b, m, o.AuxSource)
		if o.HasAux {
			b.WriteString(" - ")
			writeLocationID(&b, m, o.AuxTarget)
		} else {
			b.WriteString(" H")
		}
	case KindConvoy:
		b.WriteString(" C ")
		writeLocationID(&b, m, o.AuxSource)
		b.WriteString(" - ")
		writeLocationID(&b, m, o.AuxTarget)
	case KindRetreat:
		if o.RetreatTarget < 0 {
			b.WriteString(" D")
		} else {
			b.WriteString(" R ")
			writeLocationID(&b, m, o.RetreatTarget)
		}
	}
	return b.String()
}

func writeUnitLocation(b *strings.Builder, m *Map, u *Unit) {
	b.WriteString(forceLetter(u.Force.Name))
	b.WriteByte(' ')
	writeLocationID(b, m, u.Location.ID)
}

func writeForceLocation(b *strings.Builder, m *Map, force string, locID int) {
	b.WriteString(forceLetter(force))
	b.WriteByte(' ')
	writeLocationID(b, m, locID)
}

func forceLetter(force string) string {
	if force == "Fleet" {
		return "F"
	}
	return "A"
}

func writeLocationID(b *strings.Builder, m *Map, locID int) {
	loc := m.Locations[locID]
	prov := m.ProvinceByID(loc.ProvinceID)
	b.WriteString(prov.Abbreviation)
	if spec := coastSpecOf(loc); spec != "" {
		b.WriteByte('/')
		b.WriteString(spec)
	}
}

// coastSpecOf returns the short coast specifier ("nc", "sc", ...) for a
// split-coast Location, or "" for every other Location.
func coastSpecOf(loc *Location) string {
	if loc.Geography == nil || loc.Geography.Force == nil {
		return ""
	}
	for spec, full := range loc.Geography.Force.ShortForms {
		if strings.HasSuffix(loc.Name, "("+full+")") {
			return spec
		}
	}
	return ""
}

// ParseOrders splits a " ; "-separated DSON line into individual OrderText
// values.
func ParseOrders(s string) ([]OrderText, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []OrderText
	for _, part := range strings.Split(s, " ; ") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ot, err := ParseOrder(part)
		if err != nil {
			return nil, fmt.Errorf("dson: parsing %q: %w", part, err)
		}
		out = append(out, ot)
	}
	return out, nil
}

// ParseOrder parses one DSON order line into an OrderText.
func ParseOrder(s string) (OrderText, error) {
	if s == "W" {
		return OrderText{Waive: true}, nil
	}

	tokens := strings.Fields(s)
	if len(tokens) < 2 {
		return OrderText{}, fmt.Errorf("too few tokens")
	}

	force, err := parseForceLetter(tokens[0])
	if err != nil {
		return OrderText{}, err
	}
	province, coast, err := parseLocationText(tokens[1])
	if err != nil {
		return OrderText{}, fmt.Errorf("unit location: %w", err)
	}
	ot := OrderText{Force: force, Province: province, Coast: coast}

	if len(tokens) < 3 {
		return OrderText{}, fmt.Errorf("missing action")
	}
	action, rest := tokens[2], tokens[3:]

	switch action {
	case "H":
		ot.Kind = KindHold
		return ot, nil

	case "-":
		ot.Kind = KindMove
		if len(rest) < 1 {
			return OrderText{}, fmt.Errorf("move missing target")
		}
		ot.Target, ot.TargetCoast, err = parseLocationText(rest[0])
		return ot, err

	case "S":
		return parseSupportText(ot, rest)

	case "C":
		return parseConvoyText(ot, rest)

	case "R":
		ot.Kind = KindRetreat
		if len(rest) < 1 {
			return OrderText{}, fmt.Errorf("retreat missing target")
		}
		ot.Target, ot.TargetCoast, err = parseLocationText(rest[0])
		return ot, err

	case "D":
		ot.Kind = KindDisband
		return ot, nil

	case "B":
		ot.Kind = KindBuild
		return ot, nil

	default:
		return OrderText{}, fmt.Errorf("unknown action %q", action)
	}
}

func parseSupportText(ot OrderText, tokens []string) (OrderText, error) {
	if len(tokens) < 3 {
		return OrderText{}, fmt.Errorf("support order too short")
	}
	auxForce, err := parseForceLetter(tokens[0])
	if err != nil {
		return OrderText{}, fmt.Errorf("supported unit: %w", err)
	}
	auxProv, auxCoast, err := parseLocationText(tokens[1])
	if err != nil {
		return OrderText{}, fmt.Errorf("supported unit location: %w", err)
	}
	ot.Kind = KindSupport
	ot.AuxForce, ot.AuxProvince, ot.AuxCoast = auxForce, auxProv, auxCoast

	switch tokens[2] {
	case "H":
		return ot, nil
	case "-":
		if len(tokens) < 4 {
			return OrderText{}, fmt.Errorf("support move missing destination")
		}
		ot.AuxTarget, ot.AuxTargetCoast, err = parseLocationText(tokens[3])
		return ot, err
	default:
		return OrderText{}, fmt.Errorf("support: expected H or -, got %q", tokens[2])
	}
}

func parseConvoyText(ot OrderText, tokens []string) (OrderText, error) {
	if len(tokens) < 4 {
		return OrderText{}, fmt.Errorf("convoy order too short")
	}
	if tokens[0] != "A" {
		return OrderText{}, fmt.Errorf("convoy: expected convoyed unit type A, got %q", tokens[0])
	}
	ot.Kind = KindConvoy
	ot.AuxForce = "A"
	var err error
	ot.AuxProvince, ot.AuxCoast, err = parseLocationText(tokens[1])
	if err != nil {
		return OrderText{}, fmt.Errorf("convoy source: %w", err)
	}
	if tokens[2] != "-" {
		return OrderText{}, fmt.Errorf("convoy: expected '-', got %q", tokens[2])
	}
	ot.AuxTarget, ot.AuxTargetCoast, err = parseLocationText(tokens[3])
	return ot, err
}

func parseForceLetter(s string) (string, error) {
	switch s {
	case "A":
		return "A", nil
	case "F":
		return "F", nil
	default:
		return "", fmt.Errorf("invalid unit type %q (expected A or F)", s)
	}
}

func parseLocationText(s string) (string, string, error) {
	parts := strings.SplitN(s, "/", 2)
	province := parts[0]
	if len(province) != 3 {
		return "", "", fmt.Errorf("invalid province %q (must be 3 lowercase letters)", province)
	}
	coast := ""
	if len(parts) == 2 {
		switch parts[1] {
		case "nc", "sc", "ec", "wc":
			coast = parts[1]
		default:
			return "", "", fmt.Errorf("invalid coast %q", parts[1])
		}
	}
	return province, coast, nil
}
