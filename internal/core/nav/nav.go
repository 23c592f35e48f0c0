// Package nav implements the event navigation state machine: a per-session
// cursor paging through a day's events grouped by year.
//
// The cursor holds only two integers, so it can survive between turns as
// primitive session attributes. It is re-derived against a fresh Snapshot on
// every operation; deletions may have reshaped the collection since the
// cursor was written and its invariant is never assumed.
package nav

import "sort"

// Cursor points at one event within a day's year-grouped collection
type Cursor struct {
	YearIdx  int
	EventIdx int
}

// Snapshot is one day's events at a single instant: year keys sorted
// lexicographically (numeric for 4-digit years), events in insertion order.
// Build a fresh one per operation; never cache across turns.
type Snapshot struct {
	years  []string
	events map[string][]string
}

// NewSnapshot builds a Snapshot from a day's year -> events map
func NewSnapshot(byYear map[string][]string) Snapshot {
	years := make([]string, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Strings(years)
	return Snapshot{years: years, events: byYear}
}

// Empty reports whether the day has no events at all
func (s Snapshot) Empty() bool { return len(s.years) == 0 }

// Years returns the sorted year keys
func (s Snapshot) Years() []string { return s.years }

// EventsOf returns the events for a year, insertion order preserved
func (s Snapshot) EventsOf(year string) []string { return s.events[year] }

// At resolves a cursor to its (year, event); ok is false when the cursor is
// outside the snapshot (stale after a deletion, or never initialized)
func (s Snapshot) At(c Cursor) (year, event string, ok bool) {
	if c.YearIdx < 0 || c.YearIdx >= len(s.years) {
		return "", "", false
	}
	year = s.years[c.YearIdx]
	evs := s.events[year]
	if c.EventIdx < 0 || c.EventIdx >= len(evs) {
		return "", "", false
	}
	return year, evs[c.EventIdx], true
}

// StepKind discriminates a transition result
type StepKind uint8

const (
	// StepEvent lands on an event; Year and Event are set
	StepEvent StepKind = iota

	// StepNoMore means navigation ran past the last event; cursor unchanged
	StepNoMore

	// StepNoPrevious means navigation ran before the first event; cursor unchanged
	StepNoPrevious

	// StepNoContext means the cursor no longer resolves against the snapshot
	StepNoContext
)

// Step is the outcome of a cursor transition
type Step struct {
	Kind  StepKind
	Year  string
	Event string
}

func eventStep(year, event string) Step {
	return Step{Kind: StepEvent, Year: year, Event: event}
}

// Start positions the cursor at the first event of the first year.
// The store invariant guarantees present years have non-empty lists, so a
// non-empty snapshot always yields an event. An empty snapshot reports
// StepNoMore with the zero cursor; callers decide how to phrase a day
// that has nothing in it.
func Start(s Snapshot) (Cursor, Step) {
	c := Cursor{}
	if s.Empty() {
		return c, Step{Kind: StepNoMore}
	}
	year := s.years[0]
	return c, eventStep(year, s.events[year][0])
}

// Next advances within the current year, then into the next year at its
// first event, else reports no more events with the cursor unchanged.
func Next(s Snapshot, c Cursor) (Cursor, Step) {
	year, _, ok := s.At(c)
	if !ok {
		return c, Step{Kind: StepNoContext}
	}
	if evs := s.events[year]; c.EventIdx+1 < len(evs) {
		c.EventIdx++
		return c, eventStep(year, evs[c.EventIdx])
	}
	if c.YearIdx+1 < len(s.years) {
		c.YearIdx++
		c.EventIdx = 0
		year = s.years[c.YearIdx]
		return c, eventStep(year, s.events[year][0])
	}
	return c, Step{Kind: StepNoMore}
}

// Prev steps back within the current year, then into the previous year at
// its last event, else reports no previous events with the cursor unchanged.
func Prev(s Snapshot, c Cursor) (Cursor, Step) {
	year, _, ok := s.At(c)
	if !ok {
		return c, Step{Kind: StepNoContext}
	}
	if c.EventIdx > 0 {
		c.EventIdx--
		return c, eventStep(year, s.events[year][c.EventIdx])
	}
	if c.YearIdx > 0 {
		c.YearIdx--
		year = s.years[c.YearIdx]
		evs := s.events[year]
		c.EventIdx = len(evs) - 1
		return c, eventStep(year, evs[c.EventIdx])
	}
	return c, Step{Kind: StepNoPrevious}
}

// AfterDelete re-derives the cursor against the refreshed snapshot once the
// event under the cursor has been removed. Priority: the event shifted into
// the deleted slot, else the first event still in the deleted year, else the
// first event of the next year, else no more events.
func AfterDelete(refreshed Snapshot, deletedYear string, c Cursor) (Cursor, Step) {
	if idx := indexOf(refreshed.years, deletedYear); idx >= 0 {
		evs := refreshed.events[deletedYear]
		if c.EventIdx < len(evs) {
			nc := Cursor{YearIdx: idx, EventIdx: c.EventIdx}
			return nc, eventStep(deletedYear, evs[c.EventIdx])
		}
		nc := Cursor{YearIdx: idx, EventIdx: 0}
		return nc, eventStep(deletedYear, evs[0])
	}

	// Year emptied out and was removed; pick up at the first later year.
	for i, y := range refreshed.years {
		if y > deletedYear {
			nc := Cursor{YearIdx: i, EventIdx: 0}
			return nc, eventStep(y, refreshed.events[y][0])
		}
	}
	return c, Step{Kind: StepNoMore}
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
