package models

import (
	"github.com/google/uuid"
)

// ShortCodeDocument links a shortcode to the document whose collection
// answers its inbound messages. A shortcode may accumulate links over time;
// routing resolves the most recently created one.
type ShortCodeDocument struct {
	BaseModel
	ShortCodeID uuid.UUID `json:"short_code_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shortcode_document" validate:"required"`
	DocumentID  uuid.UUID `json:"document_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_shortcode_document" validate:"required"`

	// Relationships
	ShortCode ShortCode `json:"short_code,omitempty" gorm:"foreignKey:ShortCodeID;constraint:OnDelete:CASCADE"`
	Document  Document  `json:"document,omitempty" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShortCodeDocument
func (ShortCodeDocument) TableName() string {
	return "short_code_documents"
}
