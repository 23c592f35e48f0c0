package alexa

import (
	dom "almanacco/internal/services/skill/domain"
)

// Session attribute keys. These are the wire names Alexa replays between
// turns; the typed dom.Session never leaves this package as a map.
const (
	attrCurrEventDate = "curr_event_date"
	attrEventDay      = "event_day"
	attrYearIdx       = "curr_year_idx"
	attrEventIdx      = "curr_event_idx"
	attrPendingDelete = "pending_delete"
	attrPendingEdit   = "pending_edit"
)

// SessionFromAttributes decodes a replayed attribute map. Unknown keys are
// ignored and malformed values fall back to the zero value, so a session
// written by an older deployment never breaks a turn.
func SessionFromAttributes(attrs map[string]any) dom.Session {
	var s dom.Session
	if len(attrs) == 0 {
		return s
	}
	s.CurrEventDate = str(attrs[attrCurrEventDate])
	s.Day = str(attrs[attrEventDay])
	s.YearIdx = num(attrs[attrYearIdx])
	s.EventIdx = num(attrs[attrEventIdx])
	s.PendingDelete = boolean(attrs[attrPendingDelete])
	s.PendingEdit = boolean(attrs[attrPendingEdit])
	return s
}

// AttributesFromSession encodes the typed session for the response
// envelope. Zero-valued fields are omitted so an idle session round-trips
// as an empty map.
func AttributesFromSession(s dom.Session) map[string]any {
	attrs := map[string]any{}
	if s.CurrEventDate != "" {
		attrs[attrCurrEventDate] = s.CurrEventDate
	}
	if s.Day != "" {
		attrs[attrEventDay] = s.Day
		attrs[attrYearIdx] = s.YearIdx
		attrs[attrEventIdx] = s.EventIdx
	}
	if s.PendingDelete {
		attrs[attrPendingDelete] = true
	}
	if s.PendingEdit {
		attrs[attrPendingEdit] = true
	}
	return attrs
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// num accepts both float64 (what encoding/json produces) and int (what
// our own tests and in-process callers pass)
func num(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}

func boolean(v any) bool {
	b, _ := v.(bool)
	return b
}
