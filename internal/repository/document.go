package repository

import (
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// Ensure DocumentRepository implements DocumentRepositoryInterface
var _ DocumentRepositoryInterface = (*DocumentRepository)(nil)

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document
func (r *DocumentRepository) Create(doc *models.Document) error {
	return r.db.Create(doc).Error
}

// GetByID retrieves a document by its UUID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByCollectionHandle retrieves a document by its vector collection handle
func (r *DocumentRepository) GetByCollectionHandle(handle string) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "collection_handle = ?", handle).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByNameAndOrganization retrieves a document by name within an organization
func (r *DocumentRepository) GetByNameAndOrganization(name string, orgID uuid.UUID) (*models.Document, error) {
	var doc models.Document
	if err := r.db.First(&doc, "name = ? AND organization_id = ?", name, orgID).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByOrganizationID retrieves documents of an organization with pagination
func (r *DocumentRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	if err := r.db.Model(&models.Document{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("organization_id = ?", orgID).
		Limit(limit).Offset(offset).Order("name ASC").Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// GetLinkedByShortCodeID resolves the document currently served by a
// shortcode. When a shortcode has been linked to several documents over
// time the most recently linked one wins.
func (r *DocumentRepository) GetLinkedByShortCodeID(shortCodeID uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.
		Joins("JOIN short_code_documents ON short_code_documents.document_id = documents.id").
		Where("short_code_documents.short_code_id = ?", shortCodeID).
		Order("short_code_documents.created_at DESC").
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Delete deletes a document and its shortcode links
func (r *DocumentRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.ShortCodeDocument{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Document{}, "id = ?", id).Error
	})
}
