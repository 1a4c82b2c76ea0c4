package repository

import (
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShortCodeRepository handles database operations for shortcodes
type ShortCodeRepository struct {
	db *gorm.DB
}

// Ensure ShortCodeRepository implements ShortCodeRepositoryInterface
var _ ShortCodeRepositoryInterface = (*ShortCodeRepository)(nil)

// NewShortCodeRepository creates a new shortcode repository
func NewShortCodeRepository(db *gorm.DB) *ShortCodeRepository {
	return &ShortCodeRepository{db: db}
}

// Create creates a new shortcode
func (r *ShortCodeRepository) Create(sc *models.ShortCode) error {
	return r.db.Create(sc).Error
}

// GetByID retrieves a shortcode by its UUID
func (r *ShortCodeRepository) GetByID(id uuid.UUID) (*models.ShortCode, error) {
	var sc models.ShortCode
	if err := r.db.First(&sc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

// GetByCode retrieves a shortcode by its dialing code. Codes are globally
// unique so no organization scope is needed.
func (r *ShortCodeRepository) GetByCode(code string) (*models.ShortCode, error) {
	var sc models.ShortCode
	if err := r.db.First(&sc, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &sc, nil
}

// GetByOrganizationID retrieves all shortcodes of an organization
func (r *ShortCodeRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.ShortCode, error) {
	var codes []models.ShortCode
	if err := r.db.Where("organization_id = ?", orgID).Order("code ASC").Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// GetAll retrieves all shortcodes with pagination
func (r *ShortCodeRepository) GetAll(limit, offset int) ([]models.ShortCode, int64, error) {
	var codes []models.ShortCode
	var total int64

	if err := r.db.Model(&models.ShortCode{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Limit(limit).Offset(offset).Order("code ASC").Find(&codes).Error; err != nil {
		return nil, 0, err
	}

	return codes, total, nil
}

// Delete deletes a shortcode and its document links
func (r *ShortCodeRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("short_code_id = ?", id).Delete(&models.ShortCodeDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ShortCode{}, "id = ?", id).Error
	})
}

// CreateLink links a shortcode to a document
func (r *ShortCodeRepository) CreateLink(link *models.ShortCodeDocument) error {
	return r.db.Create(link).Error
}

// GetLink retrieves a specific shortcode/document link
func (r *ShortCodeRepository) GetLink(shortCodeID, documentID uuid.UUID) (*models.ShortCodeDocument, error) {
	var link models.ShortCodeDocument
	if err := r.db.First(&link, "short_code_id = ? AND document_id = ?", shortCodeID, documentID).Error; err != nil {
		return nil, err
	}
	return &link, nil
}
