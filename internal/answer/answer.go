package answer

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"sms-assistant-backend/internal/config"
	apperrors "sms-assistant-backend/internal/errors"
)

const systemInstruction = "You are an assistant answering questions over SMS. " +
	"Answer using only the provided context. Keep the answer short and plain, " +
	"suitable for a text message. If the context does not contain the answer, " +
	"say that you do not have that information."

// OpenAIService generates answers with an OpenAI-compatible chat model.
type OpenAIService struct {
	llm         *openai.LLM
	temperature float64
}

// NewOpenAIService builds the answer generator from configuration.
func NewOpenAIService(cfg *config.Config) (*OpenAIService, error) {
	llm, err := openai.New(
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.LLMModel),
	)
	if err != nil {
		return nil, apperrors.NewExternalServiceError("answer", "create client", err)
	}

	return &OpenAIService{llm: llm, temperature: 0.2}, nil
}

func (s *OpenAIService) Answer(ctx context.Context, question string, contextChunks []string, history []Exchange) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", apperrors.ErrEmptyQuestion
	}

	prompt := buildPrompt(question, contextChunks, history)

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt,
		llms.WithTemperature(s.temperature),
	)
	if err != nil {
		return "", apperrors.NewExternalServiceError("answer", "generate completion", err)
	}

	answer := strings.TrimSpace(completion)
	if answer == "" {
		return "", apperrors.NewExternalServiceError("answer", "empty completion", nil)
	}
	return answer, nil
}

func buildPrompt(question string, contextChunks []string, history []Exchange) string {
	var b strings.Builder
	b.WriteString(systemInstruction)
	b.WriteString("\n\nContext:\n")
	for _, chunk := range contextChunks {
		b.WriteString("---\n")
		b.WriteString(chunk)
		b.WriteString("\n")
	}
	if len(history) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, ex := range history {
			b.WriteString("Q: ")
			b.WriteString(ex.Question)
			b.WriteString("\nA: ")
			b.WriteString(ex.Answer)
			b.WriteString("\n")
		}
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	b.WriteString("\nAnswer:")
	return b.String()
}
