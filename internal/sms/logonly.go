package sms

import (
	"context"

	"sms-assistant-backend/internal/config"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/logger"
)

// LogOnlyGateway logs outbound messages instead of delivering them. Used in
// development when no gateway credentials are configured.
type LogOnlyGateway struct {
	logger *logger.Logger
}

// NewLogOnlyGateway creates a gateway that only logs messages.
func NewLogOnlyGateway(log *logger.Logger) *LogOnlyGateway {
	return &LogOnlyGateway{logger: log}
}

// Send logs the message and reports success.
func (g *LogOnlyGateway) Send(ctx context.Context, message string, recipients []string) error {
	if len(recipients) == 0 {
		return apperrors.ErrNoRecipients
	}
	g.logger.WithFields(map[string]interface{}{
		"recipients": recipients,
		"message":    message,
	}).Info("Log-only gateway: message not delivered")
	return nil
}

// NewGateway picks the gateway implementation for the environment: the real
// Africa's Talking client when credentials are configured, the log-only
// gateway otherwise. Production requires credentials at config load time.
func NewGateway(cfg *config.Config, log *logger.Logger) (Gateway, error) {
	gateway, err := NewAfricasTalkingGateway(cfg, log)
	if err != nil {
		if cfg.IsDevelopment() {
			log.Warn("SMS gateway credentials missing, replies will only be logged")
			return NewLogOnlyGateway(log), nil
		}
		return nil, err
	}
	return gateway, nil
}
