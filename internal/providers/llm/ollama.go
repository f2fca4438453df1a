package llm

type Ollama struct {
	*OpenAICompatible
}

// NewOllama targets a local Ollama server through its OpenAI-compatible
// endpoint. The API key is optional and usually empty.
func NewOllama(baseURL, apiKey, model string) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
