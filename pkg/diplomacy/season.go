package diplomacy

// Phase names the kind of phase within a season.
type Phase string

const (
	Pregame   Phase = "Pregame"
	Diplomacy Phase = "Diplomacy"
	Retreats  Phase = "Retreats"
	Builds    Phase = "Builds"
	Postgame  Phase = "Postgame"
)

// SeasonName is Spring or Fall.
type SeasonName string

const (
	Spring SeasonName = "Spring"
	Fall   SeasonName = "Fall"
)

// phaseCycle and nameCycle repeat every five phases, indexed by count%5:
// Builds, Diplomacy, Retreats, Diplomacy, Retreats — Fall, Spring, Spring,
// Fall, Fall. count=0 is the Pregame phase handled separately below.
var phaseCycle = [5]Phase{Builds, Diplomacy, Retreats, Diplomacy, Retreats}
var nameCycle = [5]SeasonName{Fall, Spring, Spring, Fall, Fall}

// Season is a counter of phases since game start, encoding (year, name,
// phase) deterministically. Phase 0 is Pregame; thereafter five phases
// repeat per year.
type Season struct {
	year  int
	name  SeasonName
	phase Phase
	count int
}

// NewSeason constructs the Pregame season for a variant starting in the
// given year. The year is stored as startingYear-1 so that the first call
// to Progress (into Spring Diplomacy) yields the correct starting year,
// keeping yearDiff's arithmetic free of a special case for the very first
// phase.
func NewSeason(startingYear int) *Season {
	return &Season{year: startingYear - 1, name: Spring, phase: Pregame, count: 0}
}

func (s *Season) Year() int        { return s.year }
func (s *Season) Name() SeasonName { return s.name }
func (s *Season) Phase() Phase     { return s.phase }
func (s *Season) Count() int       { return s.count }

func (s *Season) setNamePhase() {
	if s.count == 0 {
		s.phase = Pregame
		s.name = Spring
		return
	}
	idx := s.count % 5
	s.phase = phaseCycle[idx]
	s.name = nameCycle[idx]
}

// yearDiff computes, by floor division, the number of Builds->Spring-
// Diplomacy year boundaries crossed when moving k phases from the current
// count.
func yearDiff(count, k int) int {
	return floorDiv(4+count+k, 5) - floorDiv(4+count, 5)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Progress advances the season by k phases (k=1 by default via callers).
// Panics if called after Postgame.
func (s *Season) Progress(k int) {
	if s.phase == Postgame {
		panic("diplomacy: cannot progress a season past Postgame")
	}
	s.year += yearDiff(s.count, k)
	s.count += k
	s.setNamePhase()
}

// Rollback reverses the season by k phases. The guard count > k prevents
// rolling back before the starting (Pregame) season.
func (s *Season) Rollback(k int) {
	if s.count <= k {
		panic("diplomacy: rollback would precede the starting season")
	}
	s.year -= yearDiff(s.count-k, k)
	s.count -= k
	s.setNamePhase()
}

// Conclude marks the season Postgame; used once a winner is recorded.
func (s *Season) Conclude() {
	s.phase = Postgame
	s.count++
}

func (s *Season) Clone() *Season {
	c := *s
	return &c
}
