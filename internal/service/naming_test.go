package service

import (
	"testing"

	"sms-assistant-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestCollectionHandle(t *testing.T) {
	tests := []struct {
		name     string
		org      string
		fileName string
		want     string
	}{
		{
			name:     "strips extension",
			org:      "AcmeHealth",
			fileName: "handbook.pdf",
			want:     "AcmeHealth_handbook",
		},
		{
			name:     "removes spaces and hyphens",
			org:      "Acme Health",
			fileName: "field-guide v2.pdf",
			want:     "AcmeHealth_fieldguidev2",
		},
		{
			name:     "uses basename of a path",
			org:      "Acme",
			fileName: "uploads/2024/manual.txt",
			want:     "Acme_manual",
		},
		{
			name:     "only last extension dropped",
			org:      "Acme",
			fileName: "notes.tar.gz",
			want:     "Acme_notes.tar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CollectionHandle(tt.org, tt.fileName))
		})
	}
}

func TestHandleExists(t *testing.T) {
	handles := []string{"Acme_handbook", "Beta_manual"}

	assert.True(t, HandleExists(handles, "Acme_handbook"))
	assert.True(t, HandleExists(handles, "acme_HANDBOOK"))
	assert.False(t, HandleExists(handles, "Acme_other"))
	assert.False(t, HandleExists(nil, "Acme_handbook"))
}

func TestSplitNumbers(t *testing.T) {
	t.Run("comma separated", func(t *testing.T) {
		assert.Equal(t, []string{"+1", "+2"}, SplitNumbers("+1,+2"))
	})

	t.Run("mixed separators and blanks", func(t *testing.T) {
		assert.Equal(t, []string{"+1", "+2", "+3"}, SplitNumbers(" +1, +2,,\n+3 "))
	})

	t.Run("empty roster", func(t *testing.T) {
		assert.Empty(t, SplitNumbers(""))
	})
}

func TestIsRegisteredNumber(t *testing.T) {
	areas := []models.Area{
		{Name: "north", Numbers: "+254700000001, +254700000002"},
		{Name: "south", Numbers: "+254700000003"},
	}

	assert.True(t, IsRegisteredNumber("+254700000002", areas))
	assert.True(t, IsRegisteredNumber(" +254700000003 ", areas))
	assert.False(t, IsRegisteredNumber("+254700000099", areas))
	assert.False(t, IsRegisteredNumber("", areas))
	assert.False(t, IsRegisteredNumber("+254700000001", nil))
}
