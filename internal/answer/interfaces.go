package answer

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/answer_mocks.go -package=mocks -mock_names=Service=MockAnswerService

// Exchange is one prior question/answer pair of a conversation.
type Exchange struct {
	Question string
	Answer   string
}

// Service generates a grounded answer to a question from retrieved context.
type Service interface {
	Answer(ctx context.Context, question string, contextChunks []string, history []Exchange) (string, error)
}
