package service_test

import (
	"testing"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/mocks"
	"sms-assistant-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ShortCodeServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSCRepo  *mocks.MockShortCodeRepositoryInterface
	mockDocRepo *mocks.MockDocumentRepositoryInterface
	scService   *service.ShortCodeService
}

func (suite *ShortCodeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSCRepo = mocks.NewMockShortCodeRepositoryInterface(suite.ctrl)
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)
	suite.scService = service.NewShortCodeService(suite.mockSCRepo, suite.mockDocRepo, validator.New())
}

func (suite *ShortCodeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShortCodeServiceTestSuite) TestCreate_Success() {
	orgID := uuid.New()

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSCRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(sc *models.ShortCode) error {
		sc.ID = uuid.New()
		return nil
	})

	resp, err := suite.scService.Create(&service.CreateShortCodeRequest{
		Code:           "40100",
		OrganizationID: orgID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "40100", resp.Code)
	assert.Equal(suite.T(), orgID, resp.OrganizationID)
}

func (suite *ShortCodeServiceTestSuite) TestCreate_CodeTakenByAnotherOrganization() {
	existing := &models.ShortCode{Code: "40100", OrganizationID: uuid.New()}
	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(existing, nil)

	resp, err := suite.scService.Create(&service.CreateShortCodeRequest{
		Code:           "40100",
		OrganizationID: uuid.New(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrShortCodeExists)
	assert.Nil(suite.T(), resp)
}

func (suite *ShortCodeServiceTestSuite) TestCreate_NonNumericCode_FailsValidation() {
	resp, err := suite.scService.Create(&service.CreateShortCodeRequest{
		Code:           "HELP1",
		OrganizationID: uuid.New(),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *ShortCodeServiceTestSuite) TestLinkDocument_Success() {
	orgID := uuid.New()
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: orgID}
	doc := &models.Document{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockDocRepo.EXPECT().GetByID(doc.ID).Return(doc, nil)
	suite.mockSCRepo.EXPECT().GetLink(sc.ID, doc.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockSCRepo.EXPECT().CreateLink(gomock.Any()).DoAndReturn(func(link *models.ShortCodeDocument) error {
		suite.Equal(sc.ID, link.ShortCodeID)
		suite.Equal(doc.ID, link.DocumentID)
		return nil
	})

	err := suite.scService.LinkDocument("40100", doc.ID)

	assert.NoError(suite.T(), err)
}

func (suite *ShortCodeServiceTestSuite) TestLinkDocument_CrossOrganization_Rejected() {
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: uuid.New()}
	doc := &models.Document{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockDocRepo.EXPECT().GetByID(doc.ID).Return(doc, nil)

	err := suite.scService.LinkDocument("40100", doc.ID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ShortCodeServiceTestSuite) TestLinkDocument_DuplicatePair_Conflict() {
	orgID := uuid.New()
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: orgID}
	doc := &models.Document{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID}
	link := &models.ShortCodeDocument{ShortCodeID: sc.ID, DocumentID: doc.ID}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockDocRepo.EXPECT().GetByID(doc.ID).Return(doc, nil)
	suite.mockSCRepo.EXPECT().GetLink(sc.ID, doc.ID).Return(link, nil)

	err := suite.scService.LinkDocument("40100", doc.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLinkExists)
}

func (suite *ShortCodeServiceTestSuite) TestLinkDocument_UnknownDocument() {
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: uuid.New()}
	docID := uuid.New()

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockDocRepo.EXPECT().GetByID(docID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.scService.LinkDocument("40100", docID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDocumentNotFound)
}

func (suite *ShortCodeServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockSCRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.scService.Delete(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrShortCodeNotFound)
}

func TestShortCodeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShortCodeServiceTestSuite))
}
