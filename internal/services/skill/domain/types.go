// Package domain defines the skill conversation model.
//
// A turn comes in as a Request plus the Session carried over from the last
// turn, and leaves as an Outcome plus the updated Session. Nothing here
// touches the wire format; the envelope adapter converts both ways.
package domain

// Request types from the voice platform
const (
	TypeLaunch       = "LaunchRequest"
	TypeIntent       = "IntentRequest"
	TypeSessionEnded = "SessionEndedRequest"
)

// Intent names from the interaction model
const (
	IntentAddEventRequest      = "AddEventRequest"
	IntentAddEventType         = "AddEventType"
	IntentRetrieveEvents       = "RetrieveEvents"
	IntentModifyEvents         = "ModifyEventsRequest"
	IntentNextEvent            = "NextEvent"
	IntentPreviousEvent        = "PreviousEvent"
	IntentDeleteEvent          = "DeleteEvent"
	IntentEditEvent            = "EditEvent"
	IntentEditEventDescription = "EditEventDescription"
	IntentYes                  = "AMAZON.YesIntent"
	IntentNo                   = "AMAZON.NoIntent"
	IntentHelp                 = "AMAZON.HelpIntent"
	IntentCancel               = "AMAZON.CancelIntent"
	IntentStop                 = "AMAZON.StopIntent"
	IntentFallback             = "AMAZON.FallbackIntent"
)

// Slot names
const (
	SlotDate  = "date"
	SlotEvent = "event"
)

// Request is one distilled turn from the voice platform
type Request struct {
	Type   string
	Intent string
	Slots  map[string]string
	Locale string
	UserID string
}

// Slot returns a slot value, empty when absent
func (r Request) Slot(name string) string { return r.Slots[name] }

// Session is the typed per-conversation state. The envelope adapter converts
// it to and from the untyped attribute map at the boundary; handlers never
// see raw maps.
type Session struct {
	// CurrEventDate stages the date between the add flow's two turns
	CurrEventDate string

	// navigation cursor; Day empty means no cursor was ever set
	Day      string
	YearIdx  int
	EventIdx int

	PendingDelete bool
	PendingEdit   bool
}

// HasCursor reports whether navigation was started this conversation
func (s Session) HasCursor() bool { return s.Day != "" }
