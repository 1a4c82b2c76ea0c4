package repository

import (
	"sms-assistant-backend/internal/database/models"

	"gorm.io/gorm"
)

// AreaRepository handles database operations for coverage areas
type AreaRepository struct {
	db *gorm.DB
}

// Ensure AreaRepository implements AreaRepositoryInterface
var _ AreaRepositoryInterface = (*AreaRepository)(nil)

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// Create creates a new area
func (r *AreaRepository) Create(area *models.Area) error {
	return r.db.Create(area).Error
}

// GetByName retrieves an area by name
func (r *AreaRepository) GetByName(name string) (*models.Area, error) {
	var area models.Area
	if err := r.db.First(&area, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

// GetAll retrieves all areas
func (r *AreaRepository) GetAll() ([]models.Area, error) {
	var areas []models.Area
	if err := r.db.Order("name ASC").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// AppendNumbers appends a CSV of phone numbers to an area's roster.
// The update happens in SQL so concurrent appends do not lose numbers.
func (r *AreaRepository) AppendNumbers(name string, numbers string) error {
	result := r.db.Model(&models.Area{}).
		Where("name = ?", name).
		Update("numbers", gorm.Expr(
			"CASE WHEN numbers = '' THEN ? ELSE numbers || ',' || ? END", numbers, numbers))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
