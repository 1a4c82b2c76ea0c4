package models

import (
	"strings"
)

// Area is a named group of phone numbers used both as a broadcast target
// list and as the sender allowlist for inbound messages. Numbers is a
// comma-separated list, appended to in place.
type Area struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;not null;size:200" validate:"required,min=1,max=200"`
	Numbers string `json:"numbers" gorm:"type:text;not null"`
}

// TableName returns the table name for Area
func (Area) TableName() string {
	return "areas"
}

// NumberList splits Numbers on commas, trimming surrounding whitespace and
// dropping empty entries.
func (a *Area) NumberList() []string {
	parts := strings.Split(a.Numbers, ",")
	numbers := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := strings.TrimSpace(p); n != "" {
			numbers = append(numbers, n)
		}
	}
	return numbers
}
