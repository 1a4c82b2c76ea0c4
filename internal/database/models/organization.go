package models

// Organization represents the root entity for multi-tenancy. Each
// organization owns its documents and shortcodes; inbound messages are
// routed to one organization's document via the shortcode.
type Organization struct {
	BaseModel
	Name         string `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	PasswordHash string `json:"-" gorm:"not null;size:200"`
	Address      string `json:"address" gorm:"type:text"`
	Description  string `json:"description" gorm:"type:text"`

	// Relationships
	Documents  []Document  `json:"documents,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	ShortCodes []ShortCode `json:"short_codes,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
