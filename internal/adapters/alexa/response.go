package alexa

import (
	dom "almanacco/internal/services/skill/domain"
)

// ResponseEnvelope is the skill response document
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

// Response is the spoken part of a turn
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is plain-text speech; we never emit SSML
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is a simple home-card shown in the companion app
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Reprompt is spoken when the user stays silent after the response
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

func speech(text string) *OutputSpeech {
	return &OutputSpeech{Type: "PlainText", Text: text}
}

// Respond renders an outcome into a full response envelope, carrying the
// session state forward as wire attributes
func Respond(locale string, out dom.Outcome, sess dom.Session) ResponseEnvelope {
	r := Render(locale, out)

	resp := Response{ShouldEndSession: out.EndSession}
	if r.Speech != "" {
		resp.OutputSpeech = speech(r.Speech)
	}
	if r.Reprompt != "" {
		resp.Reprompt = &Reprompt{OutputSpeech: *speech(r.Reprompt)}
	}
	resp.Card = r.Card

	return ResponseEnvelope{
		Version:           "1.0",
		SessionAttributes: AttributesFromSession(sess),
		Response:          resp,
	}
}
