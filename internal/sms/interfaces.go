package sms

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/sms_mocks.go -package=mocks

// Gateway sends outbound SMS messages.
type Gateway interface {
	Send(ctx context.Context, message string, recipients []string) error
}
