package resolver

import (
	"context"

	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/internal/dates"
	"github.com/rcondori/horabot/internal/intent"
	"github.com/rcondori/horabot/internal/memory"
	"github.com/rcondori/horabot/internal/schedule"
	"github.com/rcondori/horabot/pkg/log"
)

// Resolver is the single entry point for answering questions. It tries the
// deterministic rules first and only invokes the generative answerer when
// they are inconclusive. One Resolver serves one session; callers serialize
// questions.
type Resolver struct {
	repo      *schedule.Repository
	extractor *intent.Extractor
	dates     *dates.Resolver
	answerer  core.Answerer
	memory    *memory.Memory
	maxRows   int
	maxCols   int

	turns     core.TurnsRepository
	sessionID string
}

func New(
	repo *schedule.Repository,
	extractor *intent.Extractor,
	d *dates.Resolver,
	answerer core.Answerer,
	mem *memory.Memory,
	maxRows, maxCols int,
) *Resolver {
	return &Resolver{
		repo:      repo,
		extractor: extractor,
		dates:     d,
		answerer:  answerer,
		memory:    mem,
		maxRows:   maxRows,
		maxCols:   maxCols,
	}
}

// PersistTo mirrors every recorded turn to the given repository under
// sessionID. Persistence is write-behind: a storage error is logged, never
// surfaced, and never blocks the answer.
func (r *Resolver) PersistTo(turns core.TurnsRepository, sessionID string) {
	r.turns = turns
	r.sessionID = sessionID
}

// Answer resolves one question to completion. Rule-based answers return
// directly and do not touch conversation memory. On fallback, the turn is
// recorded only after the answerer succeeds; failures propagate as
// *core.AnswererError with memory untouched.
func (r *Resolver) Answer(ctx context.Context, question string) (string, error) {
	logger := log.FromCtx(ctx)

	if res := r.extractor.Extract(r.repo, question); res.Kind != intent.NoMatch {
		logger.Debug().Stringer("intent", res.Kind).Msg("answered by rules")
		return res.Answer, nil
	}

	excerpt := r.repo.Excerpt(r.maxRows, r.maxCols)
	date, _ := r.dates.Today()
	prompt := buildPrompt(excerpt, date, question, r.memory.History())

	logger.Debug().Int("prompt_len", len(prompt)).Msg("falling back to generative answerer")
	answer, err := r.answerer.Complete(ctx, prompt)
	if err != nil {
		return "", &core.AnswererError{Err: err}
	}

	r.memory.Record(question, answer)
	if r.turns != nil {
		turn := core.ConversationTurn{Question: question, Answer: answer}
		if err := r.turns.AddTurn(ctx, r.sessionID, turn); err != nil {
			logger.Warn().Err(err).Str("session", r.sessionID).Msg("failed to persist turn")
		}
	}
	return answer, nil
}

// Memory exposes the session log.
func (r *Resolver) Memory() *memory.Memory {
	return r.memory
}
