package repository

import (
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for broadcast messages
type MessageRepository struct {
	db *gorm.DB
}

// Ensure MessageRepository implements MessageRepositoryInterface
var _ MessageRepositoryInterface = (*MessageRepository)(nil)

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create records a sent broadcast message
func (r *MessageRepository) Create(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// GetByOrganizationID retrieves an organization's messages, newest first
func (r *MessageRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64

	if err := r.db.Model(&models.Message{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
