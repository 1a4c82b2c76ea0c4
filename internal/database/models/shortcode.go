package models

import (
	"github.com/google/uuid"
)

// ShortCode is a short numeric SMS address owned by one organization.
// Code is globally unique: inbound routing looks the code up without an
// organization qualifier, so two organizations must never share one.
type ShortCode struct {
	BaseModel
	Code           string    `json:"code" gorm:"uniqueIndex;not null;size:20" validate:"required,numeric,min=3,max=20"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShortCode
func (ShortCode) TableName() string {
	return "short_codes"
}
