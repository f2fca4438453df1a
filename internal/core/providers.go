package core

import "context"

// Answerer is the generative text-completion capability. Implementations do
// network I/O and may block until the model responds; resilience (timeouts,
// retries) is layered on as decorators, never inside the resolver.
type Answerer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// TurnsRepository persists conversation turns per session. It is a
// transport-layer concern: the resolver's in-process memory is authoritative
// during a session, storage only survives restarts.
type TurnsRepository interface {
	AddTurn(ctx context.Context, sessionID string, turn ConversationTurn) error
	GetTurns(ctx context.Context, sessionID string, limit int) ([]ConversationTurn, error)
}
