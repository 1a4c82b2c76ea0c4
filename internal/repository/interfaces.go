package repository

import (
	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByEmail(email string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	GetWithDocuments(id uuid.UUID) (*models.Organization, error)
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	Create(doc *models.Document) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetByCollectionHandle(handle string) (*models.Document, error)
	GetByNameAndOrganization(name string, orgID uuid.UUID) (*models.Document, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Document, int64, error)
	GetLinkedByShortCodeID(shortCodeID uuid.UUID) (*models.Document, error)
	Delete(id uuid.UUID) error
}

// ShortCodeRepositoryInterface defines the interface for shortcode repository operations
type ShortCodeRepositoryInterface interface {
	Create(sc *models.ShortCode) error
	GetByID(id uuid.UUID) (*models.ShortCode, error)
	GetByCode(code string) (*models.ShortCode, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.ShortCode, error)
	GetAll(limit, offset int) ([]models.ShortCode, int64, error)
	Delete(id uuid.UUID) error
	CreateLink(link *models.ShortCodeDocument) error
	GetLink(shortCodeID, documentID uuid.UUID) (*models.ShortCodeDocument, error)
}

// AreaRepositoryInterface defines the interface for area repository operations
type AreaRepositoryInterface interface {
	Create(area *models.Area) error
	GetByName(name string) (*models.Area, error)
	GetAll() ([]models.Area, error)
	AppendNumbers(name string, numbers string) error
}

// MessageRepositoryInterface defines the interface for message repository operations
type MessageRepositoryInterface interface {
	Create(msg *models.Message) error
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Message, int64, error)
}
