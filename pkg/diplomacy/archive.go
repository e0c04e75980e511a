package diplomacy

// PositionRecord is one JSON-serializable snapshot of the board: the
// season at the time of the snapshot, every unit's owner/force/location,
// and supply-center ownership.
type PositionRecord struct {
	Year   int    `json:"year"`
	Name   string `json:"season"`
	Phase  string `json:"phase"`
	Count  int    `json:"count"`
	Winner string `json:"winner,omitempty"`

	Units []UnitRecord `json:"units"`

	SupplyCenters map[int]string `json:"supply_centers"`
}

type UnitRecord struct {
	Force    string `json:"force"`
	Power    string `json:"power"`
	Location int    `json:"location"`
}

// PositionArchive is the append-only (until Pop) sequence of board
// snapshots, one per phase transition, that backs Rollback.
type PositionArchive struct {
	records []PositionRecord
}

func NewPositionArchive() *PositionArchive { return &PositionArchive{} }

func (a *PositionArchive) Append(r PositionRecord) { a.records = append(a.records, r) }

func (a *PositionArchive) Len() int { return len(a.records) }

func (a *PositionArchive) Last() (PositionRecord, bool) {
	if len(a.records) == 0 {
		return PositionRecord{}, false
	}
	return a.records[len(a.records)-1], true
}

// Pop removes and returns the most recent snapshot.
func (a *PositionArchive) Pop() (PositionRecord, bool) {
	if len(a.records) == 0 {
		return PositionRecord{}, false
	}
	r := a.records[len(a.records)-1]
	a.records = a.records[:len(a.records)-1]
	return r, true
}

func (a *PositionArchive) All() []PositionRecord { return a.records }

// OrderRecord is one archived order, flattened to primitive fields so the
// archive can be serialized without depending on the live Order's pointer
// graph.
type OrderRecord struct {
	Kind      string `json:"kind"`
	Owner     string `json:"owner"`
	Unit      int    `json:"unit,omitempty"` // location id of the ordered unit, 0 if none
	Source    int    `json:"source,omitempty"`
	Target    int    `json:"target,omitempty"`
	AuxSource int    `json:"aux_source,omitempty"`
	AuxTarget int    `json:"aux_target,omitempty"`
	HasAux    bool   `json:"has_aux,omitempty"`
	Via       bool   `json:"via_convoy,omitempty"`

	BuildForce    string `json:"build_force,omitempty"`
	BuildLocation int    `json:"build_location,omitempty"`
	DisbandUnit   int    `json:"disband_unit,omitempty"` // location id

	RetreatTarget int `json:"retreat_target,omitempty"`

	Succeeded bool `json:"succeeded"`
}

// PhaseOrderRecord bundles one phase's archived orders with the phase
// descriptor they were resolved under.
type PhaseOrderRecord struct {
	Year   int    `json:"year"`
	Name   string `json:"season"`
	Phase  string `json:"phase"`
	Orders []OrderRecord `json:"orders"`
}

// OrderArchive is the append-only (until Pop) sequence of resolved order
// sets, one per adjudicated phase.
type OrderArchive struct {
	records []PhaseOrderRecord
}

func NewOrderArchive() *OrderArchive { return &OrderArchive{} }

func (a *OrderArchive) Append(r PhaseOrderRecord) { a.records = append(a.records, r) }

func (a *OrderArchive) Len() int { return len(a.records) }

func (a *OrderArchive) Pop() (PhaseOrderRecord, bool) {
	if len(a.records) == 0 {
		return PhaseOrderRecord{}, false
	}
	r := a.records[len(a.records)-1]
	a.records = a.records[:len(a.records)-1]
	return r, true
}

func (a *OrderArchive) All() []PhaseOrderRecord { return a.records }

// snapshotPosition captures the current GameState as a PositionRecord.
func snapshotPosition(gs *GameState) PositionRecord {
	r := PositionRecord{
		Year:          gs.Season.Year(),
		Name:          string(gs.Season.Name()),
		Phase:         string(gs.Season.Phase()),
		Count:         gs.Season.Count(),
		SupplyCenters: map[int]string{},
	}
	if gs.Winner != nil {
		r.Winner = gs.Winner.Name
	}
	for _, u := range gs.Units {
		r.Units = append(r.Units, UnitRecord{Force: u.Force.Name, Power: u.Owner.Name, Location: u.Location.ID})
	}
	for provinceID, owner := range gs.SupplyCenters {
		if owner != nil {
			r.SupplyCenters[provinceID] = owner.Name
		}
	}
	return r
}

// snapshotOrders flattens a resolved OrderCollection into a PhaseOrderRecord.
func snapshotOrders(gs *GameState, oc *OrderCollection) PhaseOrderRecord {
	rec := PhaseOrderRecord{
		Year:  gs.Season.Year(),
		Name:  string(gs.Season.Name()),
		Phase: string(gs.Season.Phase()),
	}
	for _, o := range oc.All() {
		or := OrderRecord{
			Kind:          o.Kind.String(),
			Owner:         o.Owner.Name,
			Source:        o.Source,
			Target:        o.Target,
			AuxSource:     o.AuxSource,
			AuxTarget:     o.AuxTarget,
			HasAux:        o.HasAux,
			Via:           o.ConvoyRequested,
			BuildForce:    o.BuildForce,
			BuildLocation: o.BuildLocation,
			RetreatTarget: o.RetreatTarget,
		}
		if o.Unit != nil {
			or.Unit = o.Unit.Location.ID
		}
		if o.DisbandUnit != nil {
			or.DisbandUnit = o.DisbandUnit.Location.ID
		}
		switch o.Kind {
		case KindMove:
			or.Succeeded = o.Succeeds()
		case KindRetreat:
			or.Succeeded = o.retreatLegal == True && o.retreatDisbands == False
		default:
			or.Succeeded = o.MaxStatus() == Valid
		}
		rec.Orders = append(rec.Orders, or)
	}
	return rec
}
