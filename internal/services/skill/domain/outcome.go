package domain

// OutcomeKind discriminates what the turn produced
type OutcomeKind uint8

// Outcome kinds
const (
	// OutcomeNone is an empty response (session ended)
	OutcomeNone OutcomeKind = iota
	OutcomeLaunch
	OutcomeHelp
	OutcomeStop
	OutcomeFallback
	// OutcomeError is the generic recovered-error reply
	OutcomeError

	OutcomeAddPrompt
	OutcomeEventAdded

	// OutcomeEventList carries every year group of a day, ascending
	OutcomeEventList
	// OutcomeNoEventsForDate carries the spoken date that had nothing
	OutcomeNoEventsForDate

	// OutcomeEvent is the navigation prompt naming one event
	OutcomeEvent
	OutcomeNoMoreEvents
	OutcomeNoPreviousEvents

	OutcomeDeleteConfirm
	OutcomeEventDeleted
	OutcomeDeleteCancelled

	OutcomeEditPrompt
	OutcomeEventUpdated
)

// YearGroup is one year's events for list output, insertion order preserved
type YearGroup struct {
	Year   string
	Events []string
}

// Outcome is the discriminated result of one turn. Which fields are set
// depends on Kind; the render layer turns it into speech.
type Outcome struct {
	Kind OutcomeKind

	// event prompt and delete confirm
	Year  string
	Event string

	// date-bearing outcomes
	Month int
	Day   int

	// OutcomeEventList
	List []YearGroup

	// Next chains a follow-up spoken after this outcome's phrase,
	// e.g. the event shown right after a confirmed delete
	Next *Outcome

	// EndSession closes the conversation after speaking
	EndSession bool
}

// EventPrompt builds the navigation prompt outcome
func EventPrompt(year, event string) Outcome {
	return Outcome{Kind: OutcomeEvent, Year: year, Event: event}
}
