package llm

import (
	"context"
	"testing"

	"github.com/rcondori/horabot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnswerer_UnknownProvider(t *testing.T) {
	_, err := NewAnswerer(context.Background(), &config.LLMConfig{Provider: "bard"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestNewAnswerer_WrapsRetryingWhenConfigured(t *testing.T) {
	cfg := &config.LLMConfig{Provider: "ollama", Model: "llama3", MaxAttempts: 3}
	answerer, err := NewAnswerer(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := answerer.(*Retrying)
	assert.True(t, ok)
}

func TestNewAnswerer_SingleAttemptStaysBare(t *testing.T) {
	cfg := &config.LLMConfig{Provider: "ollama", Model: "llama3", MaxAttempts: 1}
	answerer, err := NewAnswerer(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := answerer.(*Retrying)
	assert.False(t, ok)
}
