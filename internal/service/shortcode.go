package service

import (
	"errors"
	"fmt"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortCodeService handles business logic for shortcodes
type ShortCodeService struct {
	repo      repository.ShortCodeRepositoryInterface
	docRepo   repository.DocumentRepositoryInterface
	validator *validator.Validate
}

// NewShortCodeService creates a new shortcode service
func NewShortCodeService(repo repository.ShortCodeRepositoryInterface, docRepo repository.DocumentRepositoryInterface, validator *validator.Validate) *ShortCodeService {
	return &ShortCodeService{
		repo:      repo,
		docRepo:   docRepo,
		validator: validator,
	}
}

// CreateShortCodeRequest represents the request to register a shortcode
type CreateShortCodeRequest struct {
	Code           string    `json:"code" validate:"required,numeric,min=3,max=20"`
	OrganizationID uuid.UUID `json:"organization_id" validate:"required"`
}

// ShortCodeResponse represents the response for shortcode operations
type ShortCodeResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	OrganizationID uuid.UUID `json:"organization_id"`
	CreatedAt      string    `json:"created_at"`
}

// ShortCodeListResponse represents a paginated list of shortcodes
type ShortCodeListResponse struct {
	ShortCodes []ShortCodeResponse `json:"short_codes"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create registers a shortcode for an organization. Codes are exclusive:
// a code held by any organization cannot be registered again.
func (s *ShortCodeService) Create(req *CreateShortCodeRequest) (*ShortCodeResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing shortcode: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrShortCodeExists
	}

	sc := &models.ShortCode{
		Code:           req.Code,
		OrganizationID: req.OrganizationID,
	}

	if err := s.repo.Create(sc); err != nil {
		return nil, fmt.Errorf("failed to create shortcode: %w", err)
	}

	return s.toResponse(sc), nil
}

// GetByCode retrieves a shortcode by its dialing code
func (s *ShortCodeService) GetByCode(code string) (*ShortCodeResponse, error) {
	sc, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShortCodeNotFound
		}
		return nil, fmt.Errorf("failed to get shortcode: %w", err)
	}

	return s.toResponse(sc), nil
}

// GetByOrganizationID retrieves all shortcodes of an organization
func (s *ShortCodeService) GetByOrganizationID(orgID uuid.UUID) ([]ShortCodeResponse, error) {
	codes, err := s.repo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shortcodes: %w", err)
	}

	responses := make([]ShortCodeResponse, len(codes))
	for i, sc := range codes {
		responses[i] = *s.toResponse(&sc)
	}
	return responses, nil
}

// GetAll retrieves all shortcodes with pagination
func (s *ShortCodeService) GetAll(page, pageSize int) (*ShortCodeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	codes, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get shortcodes: %w", err)
	}

	responses := make([]ShortCodeResponse, len(codes))
	for i, sc := range codes {
		responses[i] = *s.toResponse(&sc)
	}

	return &ShortCodeListResponse{
		ShortCodes: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Delete removes a shortcode and its document links
func (s *ShortCodeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShortCodeNotFound
		}
		return fmt.Errorf("failed to get shortcode: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shortcode: %w", err)
	}
	return nil
}

// LinkDocument points a shortcode at a document. The document must belong
// to the shortcode's organization. An existing link for the same pair is
// reported as a conflict; linking a different document is allowed and the
// newest link wins for routing.
func (s *ShortCodeService) LinkDocument(code string, documentID uuid.UUID) error {
	sc, err := s.repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShortCodeNotFound
		}
		return fmt.Errorf("failed to get shortcode: %w", err)
	}

	doc, err := s.docRepo.GetByID(documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	if doc.OrganizationID != sc.OrganizationID {
		return apperrors.NewValidationError("document_id", "document belongs to a different organization")
	}

	existing, err := s.repo.GetLink(sc.ID, doc.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing link: %w", err)
	}
	if existing != nil {
		return apperrors.ErrLinkExists
	}

	link := &models.ShortCodeDocument{
		ShortCodeID: sc.ID,
		DocumentID:  doc.ID,
	}
	if err := s.repo.CreateLink(link); err != nil {
		return fmt.Errorf("failed to link document: %w", err)
	}
	return nil
}

// toResponse converts a shortcode model to response
func (s *ShortCodeService) toResponse(sc *models.ShortCode) *ShortCodeResponse {
	return &ShortCodeResponse{
		ID:             sc.ID,
		Code:           sc.Code,
		OrganizationID: sc.OrganizationID,
		CreatedAt:      sc.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
