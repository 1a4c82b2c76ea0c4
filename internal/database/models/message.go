package models

import (
	"github.com/google/uuid"
)

// Message is an append-only log entry for an outbound broadcast send.
// Areas records the targeted area names joined with "|".
type Message struct {
	BaseModel
	Content        string    `json:"content" gorm:"type:text;not null" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	ShortCodeID    uuid.UUID `json:"short_code_id" gorm:"type:uuid;not null;index" validate:"required"`
	Areas          string    `json:"areas" gorm:"type:text;not null"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ShortCode    *ShortCode    `json:"short_code,omitempty" gorm:"foreignKey:ShortCodeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
