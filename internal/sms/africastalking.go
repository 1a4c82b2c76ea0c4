package sms

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sms-assistant-backend/internal/config"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/logger"
)

// AfricasTalkingGateway sends SMS through the Africa's Talking messaging API.
type AfricasTalkingGateway struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *logger.Logger
}

// NewAfricasTalkingGateway creates a gateway from configuration.
func NewAfricasTalkingGateway(cfg *config.Config, log *logger.Logger) (*AfricasTalkingGateway, error) {
	if cfg.ATUsername == "" || cfg.ATAPIKey == "" {
		return nil, apperrors.ErrGatewayConfigMissing
	}
	return &AfricasTalkingGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}, nil
}

// Send delivers one message to all recipients in a single API call.
func (g *AfricasTalkingGateway) Send(ctx context.Context, message string, recipients []string) error {
	if len(recipients) == 0 {
		return apperrors.ErrNoRecipients
	}

	form := url.Values{}
	form.Set("username", g.cfg.ATUsername)
	form.Set("to", strings.Join(recipients, ","))
	form.Set("message", message)
	if g.cfg.ATSender != "" {
		form.Set("from", g.cfg.ATSender)
	}

	endpoint := strings.TrimRight(g.cfg.ATBaseURL, "/") + "/version1/messaging"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return apperrors.NewExternalServiceError("sms-gateway", "create request", err)
	}
	req.Header.Set("apiKey", g.cfg.ATAPIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return apperrors.NewExternalServiceError("sms-gateway", "send message", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return apperrors.NewExternalServiceError("sms-gateway",
			"send failed: status="+resp.Status+" body="+string(body), nil)
	}

	g.logger.WithField("recipients", len(recipients)).Info("Sent SMS message")
	return nil
}
