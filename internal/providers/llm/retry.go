package llm

import (
	"context"

	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/pkg/retry"
)

// Retrying decorates an Answerer with bounded backoff retries. The resolver
// stays retry-free; resilience is layered here, around the capability.
type Retrying struct {
	next    core.Answerer
	retrier *retry.Retrier
}

func NewRetrying(next core.Answerer, maxAttempts int) *Retrying {
	cfg := retry.DefaultConfig()
	cfg.MaxAttempts = maxAttempts
	return &Retrying{
		next:    next,
		retrier: retry.New(cfg),
	}
}

func (r *Retrying) Complete(ctx context.Context, prompt string) (string, error) {
	var answer string
	err := r.retrier.Do(ctx, func() error {
		var opErr error
		answer, opErr = r.next.Complete(ctx, prompt)
		return opErr
	})
	if err != nil {
		return "", err
	}
	return answer, nil
}
