package service

import (
	"path/filepath"
	"strings"
	"unicode"

	"sms-assistant-backend/internal/database/models"
)

// handleReplacer strips the characters that vector collection names may not
// carry over from organization and file names.
var handleReplacer = strings.NewReplacer(" ", "", "-", "")

// CollectionHandle derives the vector collection name for a document:
// organization name and file basename joined with an underscore, extension
// dropped, spaces and hyphens removed.
func CollectionHandle(organizationName, fileName string) string {
	base := filepath.Base(fileName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return handleReplacer.Replace(organizationName + "_" + base)
}

// HandleExists reports whether handle is present in the list, comparing
// case-insensitively since collection names survive round trips through
// systems with different casing rules.
func HandleExists(handles []string, handle string) bool {
	for _, h := range handles {
		if strings.EqualFold(h, handle) {
			return true
		}
	}
	return false
}

// SplitNumbers splits a roster string on commas and whitespace, dropping
// empty entries. Tolerates hand-edited rosters with mixed separators.
func SplitNumbers(roster string) []string {
	return strings.FieldsFunc(roster, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// IsRegisteredNumber reports whether the sender appears in any area roster.
func IsRegisteredNumber(number string, areas []models.Area) bool {
	number = strings.TrimSpace(number)
	if number == "" {
		return false
	}
	for _, area := range areas {
		for _, n := range SplitNumbers(area.Numbers) {
			if n == number {
				return true
			}
		}
	}
	return false
}
