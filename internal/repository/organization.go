package repository

import (
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// Ensure OrganizationRepository implements OrganizationRepositoryInterface
var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByID retrieves an organization by its UUID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByEmail retrieves an organization by email
func (r *OrganizationRepository) GetByEmail(email string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.First(&org, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAll retrieves all organizations with pagination
func (r *OrganizationRepository) GetAll(limit, offset int) ([]models.Organization, int64, error) {
	var orgs []models.Organization
	var total int64

	if err := r.db.Model(&models.Organization{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("name ASC").Find(&orgs).Error; err != nil {
		return nil, 0, err
	}

	return orgs, total, nil
}

// GetWithDocuments retrieves an organization with its documents preloaded
func (r *OrganizationRepository) GetWithDocuments(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.Preload("Documents").First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}
