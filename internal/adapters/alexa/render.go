package alexa

import (
	"strings"

	"almanacco/internal/core/prompts"
	dom "almanacco/internal/services/skill/domain"
)

// Rendered is the spoken form of an outcome
type Rendered struct {
	Speech   string
	Reprompt string
	Card     *Card
}

// Render turns an outcome into localized speech. Chained outcomes
// (delete or update followed by the next navigation prompt) are spoken
// as one utterance.
func Render(locale string, out dom.Outcome) Rendered {
	p := prompts.Get()

	switch out.Kind {
	case dom.OutcomeNone:
		return Rendered{}
	case dom.OutcomeLaunch:
		return Rendered{
			Speech:   p.T(locale, prompts.Launch),
			Reprompt: p.T(locale, prompts.HelpReprompt),
		}
	case dom.OutcomeHelp:
		return Rendered{
			Speech:   p.T(locale, prompts.Help),
			Reprompt: p.T(locale, prompts.HelpReprompt),
		}
	case dom.OutcomeStop:
		return Rendered{Speech: p.T(locale, prompts.Stop)}
	case dom.OutcomeFallback:
		return Rendered{
			Speech:   p.T(locale, prompts.Fallback),
			Reprompt: p.T(locale, prompts.HelpReprompt),
		}
	case dom.OutcomeError:
		return Rendered{
			Speech:   p.T(locale, prompts.Error),
			Reprompt: p.T(locale, prompts.HelpReprompt),
		}

	case dom.OutcomeAddPrompt:
		q := p.T(locale, prompts.AddWhat)
		return Rendered{Speech: q, Reprompt: q}
	case dom.OutcomeEventAdded:
		return Rendered{
			Speech:   p.T(locale, prompts.EventAdded),
			Reprompt: p.T(locale, prompts.AddAnother),
		}

	case dom.OutcomeEventList:
		return renderList(p, locale, out.List)
	case dom.OutcomeNoEventsForDate:
		return Rendered{
			Speech: p.T(locale, prompts.NoEventsForDate, p.SpokenDate(locale, out.Month, out.Day)),
		}

	case dom.OutcomeEvent:
		return Rendered{
			Speech:   p.T(locale, prompts.Event, out.Year, out.Event),
			Reprompt: p.T(locale, prompts.HelpReprompt),
		}
	case dom.OutcomeNoMoreEvents:
		return Rendered{Speech: p.T(locale, prompts.NoMoreEvents)}
	case dom.OutcomeNoPreviousEvents:
		return Rendered{Speech: p.T(locale, prompts.NoPreviousEvents)}

	case dom.OutcomeDeleteConfirm:
		q := p.T(locale, prompts.DeleteConfirm, out.Event)
		return Rendered{Speech: q, Reprompt: q}
	case dom.OutcomeEventDeleted:
		return chain(locale, p.T(locale, prompts.EventDeleted), out.Next)
	case dom.OutcomeDeleteCancelled:
		return Rendered{Speech: p.T(locale, prompts.DeleteCancelled)}

	case dom.OutcomeEditPrompt:
		q := p.T(locale, prompts.EditWhat)
		return Rendered{Speech: q, Reprompt: q}
	case dom.OutcomeEventUpdated:
		return chain(locale, p.T(locale, prompts.EventUpdated), out.Next)

	default:
		return Rendered{Speech: p.T(locale, prompts.Error)}
	}
}

// chain prepends a confirmation phrase to the rendering of the follow-up
// outcome, keeping the follow-up's reprompt
func chain(locale, lead string, next *dom.Outcome) Rendered {
	if next == nil {
		return Rendered{Speech: lead}
	}
	r := Render(locale, *next)
	if r.Speech != "" {
		r.Speech = lead + " " + r.Speech
	} else {
		r.Speech = lead
	}
	return r
}

// renderList speaks one phrase per year in ascending order. The card
// repeats the events in display form, one year per line.
func renderList(p *prompts.Catalog, locale string, list []dom.YearGroup) Rendered {
	phrases := make([]string, 0, len(list))
	lines := make([]string, 0, len(list))
	for _, g := range list {
		phrases = append(phrases, p.T(locale, prompts.YearEvents, g.Year, strings.Join(g.Events, "; ")))
		lines = append(lines, g.Year+": "+p.JoinEvents(locale, g.Events))
	}
	return Rendered{
		Speech: strings.Join(phrases, " "),
		Card: &Card{
			Type:    "Simple",
			Title:   p.T(locale, prompts.CardTitle),
			Content: strings.Join(lines, "\n"),
		},
	}
}
