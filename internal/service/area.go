package service

import (
	"errors"
	"fmt"
	"strings"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AreaService handles business logic for coverage areas
type AreaService struct {
	repo      repository.AreaRepositoryInterface
	validator *validator.Validate
}

// NewAreaService creates a new area service
func NewAreaService(repo repository.AreaRepositoryInterface, validator *validator.Validate) *AreaService {
	return &AreaService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAreaRequest represents the request to create an area
type CreateAreaRequest struct {
	Name    string   `json:"name" validate:"required,min=1,max=200"`
	Numbers []string `json:"numbers,omitempty"`
}

// AppendNumbersRequest represents the request to append numbers to an area
type AppendNumbersRequest struct {
	Numbers []string `json:"numbers" validate:"required,min=1,dive,required"`
}

// AreaResponse represents the response for area operations
type AreaResponse struct {
	Name    string   `json:"name"`
	Numbers []string `json:"numbers"`
}

// Create creates a new area with an optional initial roster
func (s *AreaService) Create(req *CreateAreaRequest) (*AreaResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing area: %w", err)
	}
	if existing != nil {
		return nil, &apperrors.AlreadyExistsError{Entity: "area", Context: "with this name"}
	}

	area := &models.Area{
		Name:    req.Name,
		Numbers: strings.Join(req.Numbers, ","),
	}
	if err := s.repo.Create(area); err != nil {
		return nil, fmt.Errorf("failed to create area: %w", err)
	}

	return s.toResponse(area), nil
}

// GetAll retrieves all areas
func (s *AreaService) GetAll() ([]AreaResponse, error) {
	areas, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get areas: %w", err)
	}

	responses := make([]AreaResponse, len(areas))
	for i, area := range areas {
		responses[i] = *s.toResponse(&area)
	}
	return responses, nil
}

// AppendNumbers appends numbers to an existing area's roster
func (s *AreaService) AppendNumbers(name string, req *AppendNumbersRequest) error {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.AppendNumbers(name, strings.Join(req.Numbers, ",")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAreaNotFound
		}
		return fmt.Errorf("failed to append numbers: %w", err)
	}
	return nil
}

// NumbersForAreas collects the distinct numbers of the named areas. Unknown
// area names are skipped.
func (s *AreaService) NumbersForAreas(names []string) ([]string, error) {
	seen := make(map[string]struct{})
	var numbers []string
	for _, name := range names {
		area, err := s.repo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get area %q: %w", name, err)
		}
		for _, n := range SplitNumbers(area.Numbers) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}

// toResponse converts an area model to response
func (s *AreaService) toResponse(area *models.Area) *AreaResponse {
	return &AreaResponse{
		Name:    area.Name,
		Numbers: area.NumberList(),
	}
}
