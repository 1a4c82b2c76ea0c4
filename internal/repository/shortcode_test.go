//go:build integration
// +build integration

package repository

import (
	"testing"

	"sms-assistant-backend/internal/database/models"
	"sms-assistant-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ShortCodeRepositoryTestSuite tests the ShortCodeRepository
type ShortCodeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ShortCodeRepository
	orgRepo       *OrganizationRepository
	docRepo       *DocumentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ShortCodeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewShortCodeRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.docRepo = NewDocumentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ShortCodeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ShortCodeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ShortCodeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ShortCodeRepositoryTestSuite) createOrganization() *models.Organization {
	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))
	return org
}

// TestCreate tests creating a new shortcode
func (suite *ShortCodeRepositoryTestSuite) TestCreate() {
	org := suite.createOrganization()
	sc := suite.factories.ShortCode.WithOrganization(org.ID)

	err := suite.repo.Create(sc)

	suite.NoError(err)
	suite.NotZero(sc.CreatedAt)
}

// TestCreateDuplicateCodeAcrossOrganizations tests that a code cannot be
// claimed by two organizations
func (suite *ShortCodeRepositoryTestSuite) TestCreateDuplicateCodeAcrossOrganizations() {
	org1 := suite.createOrganization()
	org2 := suite.createOrganization()

	sc1 := suite.factories.ShortCode.WithOrganization(org1.ID)
	sc1.Code = "40404"
	suite.NoError(suite.repo.Create(sc1))

	sc2 := suite.factories.ShortCode.WithOrganization(org2.ID)
	sc2.Code = "40404"

	err := suite.repo.Create(sc2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByCode tests global code lookup
func (suite *ShortCodeRepositoryTestSuite) TestGetByCode() {
	org := suite.createOrganization()
	sc := suite.factories.ShortCode.WithOrganization(org.ID)
	sc.Code = "40555"
	suite.NoError(suite.repo.Create(sc))

	retrieved, err := suite.repo.GetByCode("40555")

	suite.NoError(err)
	suite.Equal(sc.ID, retrieved.ID)
	suite.Equal(org.ID, retrieved.OrganizationID)
}

// TestGetByCodeNotFound tests lookup of an unknown code
func (suite *ShortCodeRepositoryTestSuite) TestGetByCodeNotFound() {
	sc, err := suite.repo.GetByCode("99999")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(sc)
}

// TestGetByOrganizationID tests listing an organization's codes
func (suite *ShortCodeRepositoryTestSuite) TestGetByOrganizationID() {
	org := suite.createOrganization()
	for _, code := range []string{"40100", "40200"} {
		sc := suite.factories.ShortCode.WithOrganization(org.ID)
		sc.Code = code
		suite.NoError(suite.repo.Create(sc))
	}

	codes, err := suite.repo.GetByOrganizationID(org.ID)

	suite.NoError(err)
	suite.Len(codes, 2)
	suite.Equal("40100", codes[0].Code)
}

// TestCreateLinkDuplicate tests that a shortcode/document pair links once
func (suite *ShortCodeRepositoryTestSuite) TestCreateLinkDuplicate() {
	org := suite.createOrganization()
	doc := suite.factories.Document.WithOrganization(org.ID)
	suite.NoError(suite.docRepo.Create(doc))
	sc := suite.factories.ShortCode.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(sc))

	link := &models.ShortCodeDocument{ShortCodeID: sc.ID, DocumentID: doc.ID}
	suite.NoError(suite.repo.CreateLink(link))

	dup := &models.ShortCodeDocument{ShortCodeID: sc.ID, DocumentID: doc.ID}
	err := suite.repo.CreateLink(dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestDelete tests deleting a shortcode removes its links too
func (suite *ShortCodeRepositoryTestSuite) TestDelete() {
	org := suite.createOrganization()
	doc := suite.factories.Document.WithOrganization(org.ID)
	suite.NoError(suite.docRepo.Create(doc))
	sc := suite.factories.ShortCode.WithOrganization(org.ID)
	suite.NoError(suite.repo.Create(sc))
	suite.NoError(suite.repo.CreateLink(&models.ShortCodeDocument{
		ShortCodeID: sc.ID,
		DocumentID:  doc.ID,
	}))

	suite.NoError(suite.repo.Delete(sc.ID))

	_, err := suite.repo.GetByID(sc.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	_, err = suite.repo.GetLink(sc.ID, doc.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestShortCodeRepositoryTestSuite runs the test suite
func TestShortCodeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ShortCodeRepositoryTestSuite))
}
