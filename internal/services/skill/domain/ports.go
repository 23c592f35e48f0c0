package domain

import (
	"context"

	evdom "almanacco/internal/services/events/domain"
)

// Ports declares the collaborator ports the skill module needs injected
type Ports struct {
	Store evdom.StorePort // required
}

// RouterPort handles one turn of conversation
type RouterPort interface {
	Handle(ctx context.Context, req Request, sess Session) (Outcome, Session, error)
}
