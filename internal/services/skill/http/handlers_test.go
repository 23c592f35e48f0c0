package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"almanacco/internal/adapters/alexa"
	phttp "almanacco/internal/platform/net/http"
	evrepo "almanacco/internal/services/events/repo"
	evsvc "almanacco/internal/services/events/service"
	"almanacco/internal/services/skill/service"
)

func newWebhook(t *testing.T) *chi.Mux {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), service.New(evsvc.New(evrepo.NewMemory())))
	return mux
}

func post(t *testing.T, mux *chi.Mux, body string) alexa.ResponseEnvelope {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env alexa.ResponseEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response: %v", err)
	}
	return env
}

func turnJSON(typ, intent string, slots map[string]string, attrs map[string]any) string {
	type slot struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	req := map[string]any{"type": typ, "locale": "it-IT"}
	if intent != "" {
		ss := map[string]slot{}
		for k, v := range slots {
			ss[k] = slot{Name: k, Value: v}
		}
		req["intent"] = map[string]any{"name": intent, "slots": ss}
	}
	doc := map[string]any{
		"version": "1.0",
		"session": map[string]any{
			"sessionId":  "amzn1.echo-api.session.t",
			"attributes": attrs,
			"user":       map[string]any{"userId": "amzn1.ask.account.t"},
		},
		"request": req,
	}
	raw, _ := json.Marshal(doc)
	return string(raw)
}

func TestWebhookLaunch(t *testing.T) {
	mux := newWebhook(t)

	env := post(t, mux, turnJSON("LaunchRequest", "", nil, nil))
	if env.Response.OutputSpeech == nil || !strings.Contains(env.Response.OutputSpeech.Text, "almanacco") {
		t.Fatalf("speech = %+v", env.Response.OutputSpeech)
	}
	if env.Response.ShouldEndSession {
		t.Fatal("launch must keep the session open")
	}
}

func TestWebhookAddFlowCarriesSession(t *testing.T) {
	mux := newWebhook(t)

	env := post(t, mux, turnJSON("IntentRequest", "AddEventRequest",
		map[string]string{"date": "2020-03-15"}, nil))
	if env.Response.OutputSpeech.Text != "Cosa?" {
		t.Fatalf("speech = %q", env.Response.OutputSpeech.Text)
	}
	if env.SessionAttributes["curr_event_date"] != "2020-03-15" {
		t.Fatalf("attributes = %v", env.SessionAttributes)
	}

	// the platform replays the attributes on the next turn
	env = post(t, mux, turnJSON("IntentRequest", "AddEventType",
		map[string]string{"event": "laurea"}, env.SessionAttributes))
	if env.Response.OutputSpeech.Text != "Fatto!" {
		t.Fatalf("speech = %q", env.Response.OutputSpeech.Text)
	}

	env = post(t, mux, turnJSON("IntentRequest", "RetrieveEvents",
		map[string]string{"date": "2024-03-15"}, nil))
	if env.Response.OutputSpeech.Text != "Nel 2020 laurea." {
		t.Fatalf("speech = %q", env.Response.OutputSpeech.Text)
	}
}

func TestWebhookSoftErrorSpeaks(t *testing.T) {
	mux := newWebhook(t)

	// event text without a staged date: flow broken, spoken apology
	env := post(t, mux, turnJSON("IntentRequest", "AddEventType",
		map[string]string{"event": "laurea"}, nil))
	if !strings.Contains(env.Response.OutputSpeech.Text, "errore") {
		t.Fatalf("speech = %q", env.Response.OutputSpeech.Text)
	}
	if env.Response.ShouldEndSession {
		t.Fatal("recovered turn must keep the session open")
	}
}

func TestWebhookMalformedEnvelopeIsClientError(t *testing.T) {
	mux := newWebhook(t)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"version": "1.0"`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != 400 {
		t.Fatalf("status = %d", rec.Code)
	}
}
