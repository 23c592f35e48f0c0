// Package prompts renders the skill's spoken output in the user's locale.
//
// Italian is the primary catalog, English the fallback. Keys are registered
// once on a universal-translator instance; callers address them through the
// exported constants so a missing key is a compile-time typo, not a silent
// fallback at runtime.
package prompts

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"almanacco/internal/platform/logger"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/it"
	ut "github.com/go-playground/universal-translator"
)

// Prompt keys
const (
	Launch           = "launch"
	Help             = "help"
	HelpReprompt     = "help_reprompt"
	Stop             = "stop"
	Fallback         = "fallback"
	Error            = "error"
	AddWhat          = "add_what"
	EventAdded       = "event_added"
	AddAnother       = "add_another"
	Event            = "event"
	YearEvents       = "year_events"
	NoEventsForDate  = "no_events_for_date"
	NoMoreEvents     = "no_more_events"
	NoPreviousEvents = "no_previous_events"
	DeleteConfirm    = "delete_confirm"
	EventDeleted     = "event_deleted"
	DeleteCancelled  = "delete_cancelled"
	EditWhat         = "edit_what"
	EventUpdated     = "event_updated"
	InvalidDate      = "invalid_date"
	MissingSlot      = "missing_slot"
	BrokenFlow       = "broken_flow"
	NoContext        = "no_context"
	CardTitle        = "card_title"
)

type entry struct {
	key  string
	text string
}

var itCatalog = []entry{
	{Launch, "Benvenuto nel tuo almanacco. Puoi aggiungere un evento o chiedermi cosa è successo in una data."},
	{Help, "Puoi dire: aggiungi un evento, oppure chiedimi cosa è successo in una data. Come posso aiutarti?"},
	{HelpReprompt, "Come posso aiutarti?"},
	{Stop, "A presto!"},
	{Fallback, "Non ho capito. Puoi aggiungere un evento o chiedermi cosa è successo in una data."},
	{Error, "Si è verificato un errore. Riprova."},
	{AddWhat, "Cosa?"},
	{EventAdded, "Fatto!"},
	{AddAnother, "Vuoi aggiungere un altro evento?"},
	{Event, "Nel {0} {1}; cosa vuoi fare?"},
	{YearEvents, "Nel {0} {1}."},
	{NoEventsForDate, "Non ci sono eventi per il {0}."},
	{NoMoreEvents, "Non ci sono altri eventi."},
	{NoPreviousEvents, "Non ci sono eventi precedenti."},
	{DeleteConfirm, "Vuoi davvero eliminare l'evento {0}?"},
	{EventDeleted, "Evento eliminato."},
	{DeleteCancelled, "Ok, non ho eliminato nulla."},
	{EditWhat, "Come vuoi chiamare l'evento?"},
	{EventUpdated, "Evento aggiornato."},
	{InvalidDate, "Non ho capito la data."},
	{MissingSlot, "Non ho capito. Ripeti per favore."},
	{BrokenFlow, "Qualcosa è andato storto, ricominciamo. Cosa vuoi fare?"},
	{NoContext, "Prima chiedimi gli eventi di una data."},
	{CardTitle, "Almanacco"},
}

var enCatalog = []entry{
	{Launch, "Welcome to your almanac. You can add an event or ask what happened on a date."},
	{Help, "You can say: add an event, or ask me what happened on a date. How can I help?"},
	{HelpReprompt, "How can I help?"},
	{Stop, "See you soon!"},
	{Fallback, "I didn't get that. You can add an event or ask what happened on a date."},
	{Error, "Something went wrong. Please try again."},
	{AddWhat, "What?"},
	{EventAdded, "Done!"},
	{AddAnother, "Do you want to add another event?"},
	{Event, "In {0} {1}; what do you want to do?"},
	{YearEvents, "In {0} {1}."},
	{NoEventsForDate, "There are no events for {0}."},
	{NoMoreEvents, "There are no more events."},
	{NoPreviousEvents, "There are no previous events."},
	{DeleteConfirm, "Do you really want to delete the event {0}?"},
	{EventDeleted, "Event deleted."},
	{DeleteCancelled, "Okay, I didn't delete anything."},
	{EditWhat, "What should the event be called?"},
	{EventUpdated, "Event updated."},
	{InvalidDate, "I didn't understand the date."},
	{MissingSlot, "I didn't get that. Please repeat."},
	{BrokenFlow, "Something got out of step, let's start over. What do you want to do?"},
	{NoContext, "Ask me for the events of a date first."},
	{CardTitle, "Almanac"},
}

// Catalog holds the registered translators and per-locale month names
type Catalog struct {
	uni    *ut.UniversalTranslator
	months map[string]locales.Translator
}

var (
	cOnce sync.Once
	cat   *Catalog
)

// Init builds the singleton catalog with the italian and english locales
func Init() *Catalog {
	cOnce.Do(func() {
		enLoc := en.New()
		itLoc := it.New()
		uni := ut.New(enLoc, enLoc, itLoc)

		register := func(tag string, entries []entry) {
			trans, found := uni.GetTranslator(tag)
			if !found {
				logger.Get().Panic().Str("locale", tag).Msg("prompt locale not registered")
			}
			for _, e := range entries {
				if err := trans.Add(e.key, e.text, false); err != nil {
					logger.Get().Panic().Err(err).Str("key", e.key).Msg("prompt key registration failed")
				}
			}
		}
		register("it", itCatalog)
		register("en", enCatalog)

		cat = &Catalog{
			uni: uni,
			months: map[string]locales.Translator{
				"it": itLoc,
				"en": enLoc,
			},
		}
	})
	return cat
}

// Get returns the catalog singleton, initializing on first use
func Get() *Catalog {
	if cat == nil {
		return Init()
	}
	return cat
}

// tag reduces a BCP 47 locale like "it-IT" to the catalog tag
func tag(locale string) string {
	if idx := strings.IndexByte(locale, '-'); idx >= 0 {
		locale = locale[:idx]
	}
	switch locale {
	case "it", "en":
		return locale
	default:
		return "en"
	}
}

// T renders the prompt for key in the given locale, falling back to english
func (c *Catalog) T(locale, key string, params ...string) string {
	trans, _ := c.uni.GetTranslator(tag(locale))
	msg, err := trans.T(key, params...)
	if err != nil {
		logger.Get().Error().Err(err).Str("key", key).Str("locale", locale).Msg("prompt render failed")
		return key
	}
	return msg
}

// SpokenDate renders a month and day the way the locale says dates aloud,
// "15 marzo" in italian, "March 15" in english
func (c *Catalog) SpokenDate(locale string, month, day int) string {
	t := tag(locale)
	name := c.months[t].MonthWide(time.Month(month))
	if t == "it" {
		return fmt.Sprintf("%d %s", day, name)
	}
	return fmt.Sprintf("%s %d", name, day)
}

// JoinEvents joins event texts for a spoken list with the locale's
// conjunction before the last item
func (c *Catalog) JoinEvents(locale string, events []string) string {
	switch len(events) {
	case 0:
		return ""
	case 1:
		return events[0]
	}
	conj := " and "
	if tag(locale) == "it" {
		conj = " e "
	}
	return strings.Join(events[:len(events)-1], ", ") + conj + events[len(events)-1]
}
