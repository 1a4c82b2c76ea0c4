package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/logger"
	"sms-assistant-backend/internal/repository"
	"sms-assistant-backend/internal/sms"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BroadcastService sends one-to-many announcements to area rosters and
// records each send in the message log.
type BroadcastService struct {
	msgRepo   repository.MessageRepositoryInterface
	scRepo    repository.ShortCodeRepositoryInterface
	areas     *AreaService
	gateway   sms.Gateway
	validator *validator.Validate
	logger    *logger.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(
	msgRepo repository.MessageRepositoryInterface,
	scRepo repository.ShortCodeRepositoryInterface,
	areas *AreaService,
	gateway sms.Gateway,
	validator *validator.Validate,
	log *logger.Logger,
) *BroadcastService {
	return &BroadcastService{
		msgRepo:   msgRepo,
		scRepo:    scRepo,
		areas:     areas,
		gateway:   gateway,
		validator: validator,
		logger:    log,
	}
}

// BroadcastRequest represents the request to send a broadcast
type BroadcastRequest struct {
	Content   string   `json:"content" validate:"required,min=1,max=1600"`
	ShortCode string   `json:"short_code" validate:"required,numeric"`
	Areas     []string `json:"areas" validate:"required,min=1,dive,required"`
}

// BroadcastResponse represents the result of a broadcast send
type BroadcastResponse struct {
	MessageID  uuid.UUID `json:"message_id"`
	Recipients int       `json:"recipients"`
	Areas      []string  `json:"areas"`
}

// Send delivers the content to every number in the named areas, sending from
// the organization's shortcode, and appends a message log entry.
func (s *BroadcastService) Send(ctx context.Context, req *BroadcastRequest) (*BroadcastResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	sc, err := s.scRepo.GetByCode(req.ShortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShortCodeNotFound
		}
		return nil, fmt.Errorf("failed to get shortcode: %w", err)
	}

	recipients, err := s.areas.NumbersForAreas(req.Areas)
	if err != nil {
		return nil, err
	}
	if len(recipients) == 0 {
		return nil, apperrors.ErrNoRecipients
	}

	if err := s.gateway.Send(ctx, req.Content, recipients); err != nil {
		return nil, fmt.Errorf("failed to send broadcast: %w", err)
	}

	msg := &models.Message{
		Content:        req.Content,
		OrganizationID: sc.OrganizationID,
		ShortCodeID:    sc.ID,
		Areas:          strings.Join(req.Areas, "|"),
	}
	if err := s.msgRepo.Create(msg); err != nil {
		// The send already happened; surface the logging failure rather
		// than pretending the broadcast failed.
		s.logger.WithField("short_code", req.ShortCode).
			Errorf("Broadcast sent but message log write failed: %v", err)
		return nil, fmt.Errorf("failed to record broadcast: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"short_code": req.ShortCode,
		"recipients": len(recipients),
	}).Info("Broadcast sent")

	return &BroadcastResponse{
		MessageID:  msg.ID,
		Recipients: len(recipients),
		Areas:      req.Areas,
	}, nil
}

// GetByOrganizationID lists an organization's past broadcasts
func (s *BroadcastService) GetByOrganizationID(orgID uuid.UUID, page, pageSize int) ([]models.Message, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return s.msgRepo.GetByOrganizationID(orgID, pageSize, (page-1)*pageSize)
}
