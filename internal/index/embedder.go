package index

import (
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"sms-assistant-backend/internal/config"
)

// NewEmbedder builds an embedder against an OpenAI-compatible API.
// Works with both the OpenAI embedding API and self-hosted TEI servers.
func NewEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	apiKey := cfg.OpenAIAPIKey
	if apiKey == "" {
		// langchaingo requires a token even for servers that ignore it
		apiKey = "placeholder"
	}

	llm, err := openai.New(
		openai.WithBaseURL(cfg.EmbeddingBaseURL),
		openai.WithModel(cfg.EmbeddingModel),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	return embedder, nil
}
