package llm

import (
	"context"
	"fmt"

	"github.com/rcondori/horabot/internal/config"
	"github.com/rcondori/horabot/internal/core"
	"github.com/rcondori/horabot/pkg/log"
)

// NewAnswerer creates the configured provider, wrapped in the retry
// decorator when the config asks for more than one attempt.
func NewAnswerer(ctx context.Context, cfg *config.LLMConfig) (core.Answerer, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	var answerer core.Answerer
	switch cfg.Provider {
	case "openai":
		answerer = NewOpenAI(cfg.OpenAIAPIKey, cfg.Model)
	case "openrouter":
		answerer = NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model)
	case "ollama":
		answerer = NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model)
	case "custom":
		answerer = NewCustomOpenAI(cfg.CustomBaseURL, cfg.CustomAPIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}

	if cfg.MaxAttempts > 1 {
		answerer = NewRetrying(answerer, cfg.MaxAttempts)
	}
	return answerer, nil
}
