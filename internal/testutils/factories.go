package testutils

import (
	"time"

	"sms-assistant-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Organization " + id.String()[:6],
		Email:        "org-" + id.String()[:6] + "@test.com",
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthash",
		Address:      "1 Test Street",
		Description:  "A test organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithEmail sets a custom email for the organization
func (f *OrganizationFactory) WithEmail(email string) *models.Organization {
	org := f.Create()
	org.Email = email
	return org
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values
func (f *DocumentFactory) Create() *models.Document {
	id := uuid.New()
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:             "handbook-" + id.String()[:6] + ".pdf",
		OrganizationID:   uuid.New(),
		CollectionHandle: "TestOrg_handbook" + id.String()[:6],
		Description:      "A test document",
	}
}

// WithOrganization sets the organization ID for the document
func (f *DocumentFactory) WithOrganization(orgID uuid.UUID) *models.Document {
	doc := f.Create()
	doc.OrganizationID = orgID
	return doc
}

// WithCollectionHandle sets a custom collection handle for the document
func (f *DocumentFactory) WithCollectionHandle(handle string) *models.Document {
	doc := f.Create()
	doc.CollectionHandle = handle
	return doc
}

// ShortCodeFactory provides methods to create test ShortCode data
type ShortCodeFactory struct{}

// NewShortCodeFactory creates a new ShortCodeFactory
func NewShortCodeFactory() *ShortCodeFactory {
	return &ShortCodeFactory{}
}

// Create creates a test ShortCode with default values
func (f *ShortCodeFactory) Create() *models.ShortCode {
	return &models.ShortCode{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Code:           "40100",
		OrganizationID: uuid.New(),
	}
}

// WithCode sets a custom code for the shortcode
func (f *ShortCodeFactory) WithCode(code string) *models.ShortCode {
	sc := f.Create()
	sc.Code = code
	return sc
}

// WithOrganization sets the organization ID for the shortcode
func (f *ShortCodeFactory) WithOrganization(orgID uuid.UUID) *models.ShortCode {
	sc := f.Create()
	sc.OrganizationID = orgID
	return sc
}

// AreaFactory provides methods to create test Area data
type AreaFactory struct{}

// NewAreaFactory creates a new AreaFactory
func NewAreaFactory() *AreaFactory {
	return &AreaFactory{}
}

// Create creates a test Area with default values
func (f *AreaFactory) Create() *models.Area {
	id := uuid.New()
	return &models.Area{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "area-" + id.String()[:6],
		Numbers: "+254700000001,+254700000002",
	}
}

// WithName sets a custom name for the area
func (f *AreaFactory) WithName(name string) *models.Area {
	area := f.Create()
	area.Name = name
	return area
}

// WithNumbers sets a custom number roster for the area
func (f *AreaFactory) WithNumbers(numbers string) *models.Area {
	area := f.Create()
	area.Numbers = numbers
	return area
}

// MessageFactory provides methods to create test Message data
type MessageFactory struct{}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test Message with default values
func (f *MessageFactory) Create() *models.Message {
	return &models.Message{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Content:        "Test broadcast message",
		OrganizationID: uuid.New(),
		ShortCodeID:    uuid.New(),
		Areas:          "north|south",
	}
}

// WithOrganization sets the organization ID for the message
func (f *MessageFactory) WithOrganization(orgID uuid.UUID) *models.Message {
	msg := f.Create()
	msg.OrganizationID = orgID
	return msg
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Document     *DocumentFactory
	ShortCode    *ShortCodeFactory
	Area         *AreaFactory
	Message      *MessageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Document:     NewDocumentFactory(),
		ShortCode:    NewShortCodeFactory(),
		Area:         NewAreaFactory(),
		Message:      NewMessageFactory(),
	}
}

// CreateOnboardedOrganization creates an organization with a document and a
// linked shortcode, the shape the inbound router expects to find.
func (fs *FactorySet) CreateOnboardedOrganization() (*models.Organization, *models.Document, *models.ShortCode, *models.ShortCodeDocument) {
	org := fs.Organization.Create()
	doc := fs.Document.WithOrganization(org.ID)
	sc := fs.ShortCode.WithOrganization(org.ID)
	link := &models.ShortCodeDocument{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShortCodeID: sc.ID,
		DocumentID:  doc.ID,
	}
	return org, doc, sc, link
}
