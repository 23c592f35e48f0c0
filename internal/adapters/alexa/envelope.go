// Package alexa holds the wire documents of the Alexa custom-skill
// protocol and the conversion between them and the skill domain. Nothing
// outside this package touches envelope JSON or session attribute maps.
package alexa

import (
	dom "almanacco/internal/services/skill/domain"
)

// RequestEnvelope is a partial skill request document with fields we use
type RequestEnvelope struct {
	Version string   `json:"version" validate:"required"`
	Session *Session `json:"session"`
	Context *Context `json:"context"`
	Request Request  `json:"request" validate:"required"`
}

// Session is the conversation state Alexa replays on every turn
type Session struct {
	New        bool           `json:"new"`
	SessionID  string         `json:"sessionId"`
	Attributes map[string]any `json:"attributes"`
	User       User           `json:"user"`
}

// Context carries the device and account scope of the request
type Context struct {
	System System `json:"System"`
}

// System identifies the calling user and device
type System struct {
	User User `json:"user"`
}

// User is the skill-scoped account identifier
type User struct {
	UserID string `json:"userId"`
}

// Request is the turn payload: launch, intent or session end
type Request struct {
	Type      string  `json:"type" validate:"required"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale"`
	Intent    *Intent `json:"intent"`
}

// Intent names what the user asked for, with its filled slots
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

// Slot is one resolved slot value; Value is empty when Alexa sent the
// slot without a resolution
type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// UserID returns the account id, preferring the session user
func (e *RequestEnvelope) UserID() string {
	if e.Session != nil && e.Session.User.UserID != "" {
		return e.Session.User.UserID
	}
	if e.Context != nil {
		return e.Context.System.User.UserID
	}
	return ""
}

// DomainRequest flattens the envelope into the skill's request shape
func (e *RequestEnvelope) DomainRequest() dom.Request {
	req := dom.Request{
		Type:   e.Request.Type,
		Locale: e.Request.Locale,
		UserID: e.UserID(),
	}
	if e.Request.Intent != nil {
		req.Intent = e.Request.Intent.Name
		if len(e.Request.Intent.Slots) > 0 {
			req.Slots = make(map[string]string, len(e.Request.Intent.Slots))
			for name, s := range e.Request.Intent.Slots {
				if s.Value != "" {
					req.Slots[name] = s.Value
				}
			}
		}
	}
	return req
}

// DomainSession decodes the replayed attributes into the typed session
func (e *RequestEnvelope) DomainSession() dom.Session {
	if e.Session == nil {
		return dom.Session{}
	}
	return SessionFromAttributes(e.Session.Attributes)
}
