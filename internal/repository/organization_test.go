//go:build integration
// +build integration

package repository

import (
	"testing"

	"sms-assistant-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := suite.factories.Organization.Create()

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotZero(org.UpdatedAt)
}

// TestCreateDuplicateName tests that organization names are unique
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateName() {
	org1 := suite.factories.Organization.WithName("acme-health")
	err := suite.repo.Create(org1)
	suite.NoError(err)

	org2 := suite.factories.Organization.WithName("acme-health")

	err = suite.repo.Create(org2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := suite.factories.Organization.Create()
	err := suite.repo.Create(org)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
	suite.Equal(org.Email, retrieved.Email)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

// TestGetByEmail tests retrieving an organization by email
func (suite *OrganizationRepositoryTestSuite) TestGetByEmail() {
	org := suite.factories.Organization.WithEmail("contact@acme.org")
	err := suite.repo.Create(org)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByEmail("contact@acme.org")

	suite.NoError(err)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetAll tests retrieving organizations with pagination
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		err := suite.repo.Create(suite.factories.Organization.Create())
		suite.NoError(err)
	}

	orgs, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(orgs, 2)
}

// TestGetWithDocuments tests preloading an organization's documents
func (suite *OrganizationRepositoryTestSuite) TestGetWithDocuments() {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(org))

	docRepo := NewDocumentRepository(suite.baseTestSuite.DB)
	doc := suite.factories.Document.WithOrganization(org.ID)
	suite.NoError(docRepo.Create(doc))

	retrieved, err := suite.repo.GetWithDocuments(org.ID)

	suite.NoError(err)
	suite.Len(retrieved.Documents, 1)
	suite.Equal(doc.ID, retrieved.Documents[0].ID)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
