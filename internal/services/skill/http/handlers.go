// Package http provides the webhook transport for the skill
package http

import (
	stdhttp "net/http"

	"almanacco/internal/adapters/alexa"
	"almanacco/internal/platform/logger"
	lumnet "almanacco/internal/platform/net"
	phttp "almanacco/internal/platform/net/http"
	"almanacco/internal/services/skill/domain"
)

// Register mounts the webhook endpoint on the given router
func Register(r phttp.Router, rt domain.RouterPort) {
	h := &handlers{router: rt}

	r.Post("/", phttp.JSONHandler[alexa.RequestEnvelope](h.turn))
}

type handlers struct{ router domain.RouterPort }

// turn runs one conversation turn. The voice platform expects a 200 with
// spoken text even when a collaborator is down, so an escaped error is
// logged and rendered as the generic apology with the session state
// replayed untouched.
func (h *handlers) turn(r *stdhttp.Request, env alexa.RequestEnvelope) (any, error) {
	req := env.DomainRequest()
	sess := env.DomainSession()

	// re-stamp the turn now that the envelope told us who is speaking
	ctx := lumnet.WithUser(r.Context(), req.UserID)
	ctx = logger.WithTurn(ctx, lumnet.RequestID(ctx), req.UserID, req.Locale)

	out, next, err := h.router.Handle(ctx, req, sess)
	if err != nil {
		logger.C(ctx).Error().
			Err(err).
			Str("request_type", req.Type).
			Str("intent", req.Intent).
			Msg("turn failed")
		return alexa.Respond(req.Locale, domain.Outcome{Kind: domain.OutcomeError}, sess), nil
	}
	return alexa.Respond(req.Locale, out, next), nil
}
