package alexa

import (
	"strings"
	"testing"

	dom "almanacco/internal/services/skill/domain"
)

func TestRenderEventList(t *testing.T) {
	out := dom.Outcome{
		Kind: dom.OutcomeEventList,
		List: []dom.YearGroup{
			{Year: "2019", Events: []string{"trasloco", "laurea"}},
			{Year: "2022", Events: []string{"concerto"}},
		},
	}

	r := Render("it-IT", out)
	want := "Nel 2019 trasloco; laurea. Nel 2022 concerto."
	if r.Speech != want {
		t.Fatalf("speech = %q, want %q", r.Speech, want)
	}
	if r.Card == nil || r.Card.Title != "Almanacco" {
		t.Fatalf("card = %+v", r.Card)
	}
	if !strings.Contains(r.Card.Content, "2019: trasloco e laurea") {
		t.Fatalf("card content = %q", r.Card.Content)
	}
}

func TestRenderNoEventsForDateSpeaksTheDate(t *testing.T) {
	out := dom.Outcome{Kind: dom.OutcomeNoEventsForDate, Month: 3, Day: 15}

	if got := Render("it-IT", out).Speech; !strings.Contains(got, "15 marzo") {
		t.Fatalf("speech = %q", got)
	}
	if got := Render("en-US", out).Speech; !strings.Contains(got, "March 15") {
		t.Fatalf("speech = %q", got)
	}
}

func TestRenderNavigationPrompt(t *testing.T) {
	r := Render("it-IT", dom.EventPrompt("2020", "laurea"))
	if r.Speech != "Nel 2020 laurea; cosa vuoi fare?" {
		t.Fatalf("speech = %q", r.Speech)
	}
	if r.Reprompt == "" {
		t.Fatal("navigation prompt should keep the session open with a reprompt")
	}
}

func TestRenderChainsDeleteFollowUp(t *testing.T) {
	next := dom.EventPrompt("2021", "concerto")
	out := dom.Outcome{Kind: dom.OutcomeEventDeleted, Next: &next}

	r := Render("it-IT", out)
	want := "Evento eliminato. Nel 2021 concerto; cosa vuoi fare?"
	if r.Speech != want {
		t.Fatalf("speech = %q, want %q", r.Speech, want)
	}

	last := dom.Outcome{Kind: dom.OutcomeNoMoreEvents}
	out = dom.Outcome{Kind: dom.OutcomeEventDeleted, Next: &last}
	if got := Render("it-IT", out).Speech; got != "Evento eliminato. Non ci sono altri eventi." {
		t.Fatalf("speech = %q", got)
	}
}

func TestRespondEnvelope(t *testing.T) {
	sess := dom.Session{Day: "3-15", YearIdx: 1}
	env := Respond("it-IT", dom.EventPrompt("2021", "concerto"), sess)

	if env.Version != "1.0" {
		t.Fatalf("version = %q", env.Version)
	}
	if env.Response.OutputSpeech == nil || env.Response.OutputSpeech.Type != "PlainText" {
		t.Fatalf("speech = %+v", env.Response.OutputSpeech)
	}
	if env.Response.ShouldEndSession {
		t.Fatal("navigation turn must keep the session open")
	}
	if env.SessionAttributes[attrEventDay] != "3-15" {
		t.Fatalf("attributes = %v", env.SessionAttributes)
	}
}

func TestRespondStopEndsSession(t *testing.T) {
	env := Respond("it-IT", dom.Outcome{Kind: dom.OutcomeStop, EndSession: true}, dom.Session{})
	if !env.Response.ShouldEndSession {
		t.Fatal("stop must end the session")
	}
	if len(env.SessionAttributes) != 0 {
		t.Fatalf("attributes = %v", env.SessionAttributes)
	}
}
