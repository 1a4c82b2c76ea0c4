package models

import (
	"github.com/google/uuid"
)

// Document represents one onboarded file. CollectionHandle is the join key
// to the vector index collection; the index has a single flat namespace, so
// the handle is unique across all organizations, not per organization.
type Document struct {
	BaseModel
	Name             string    `json:"name" gorm:"not null;size:200;uniqueIndex:idx_documents_name_org" validate:"required,min=1,max=200"`
	OrganizationID   uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_documents_name_org" validate:"required"`
	CollectionHandle string    `json:"collection_handle" gorm:"uniqueIndex;not null;size:200" validate:"required,max=200"`
	Description      string    `json:"description" gorm:"type:text"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}
