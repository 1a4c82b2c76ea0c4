package service

import (
	"errors"
	"fmt"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService handles business logic for onboarded documents
type DocumentService struct {
	repo repository.DocumentRepositoryInterface
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repository.DocumentRepositoryInterface) *DocumentService {
	return &DocumentService{repo: repo}
}

// DocumentResponse represents the response for document operations
type DocumentResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	OrganizationID   uuid.UUID `json:"organization_id"`
	CollectionHandle string    `json:"collection_handle"`
	Description      string    `json:"description"`
	CreatedAt        string    `json:"created_at"`
}

// DocumentListResponse represents a paginated list of documents
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// GetByID retrieves a document by ID
func (s *DocumentService) GetByID(id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return s.toResponse(doc), nil
}

// GetByOrganizationID retrieves an organization's documents with pagination
func (s *DocumentService) GetByOrganizationID(orgID uuid.UUID, page, pageSize int) (*DocumentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	docs, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	responses := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = *s.toResponse(&doc)
	}

	return &DocumentListResponse{
		Documents: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Delete removes a document's metadata and shortcode links. The vector
// collection is left in place; onboarding the same file again reuses it.
func (s *DocumentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// toResponse converts a document model to response
func (s *DocumentService) toResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:               doc.ID,
		Name:             doc.Name,
		OrganizationID:   doc.OrganizationID,
		CollectionHandle: doc.CollectionHandle,
		Description:      doc.Description,
		CreatedAt:        doc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
