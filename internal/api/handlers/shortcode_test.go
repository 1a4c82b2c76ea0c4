package handlers_test

import (
	"net/http"
	"testing"

	"sms-assistant-backend/internal/api/handlers"
	"sms-assistant-backend/internal/database/models"
	"sms-assistant-backend/internal/mocks"
	"sms-assistant-backend/internal/service"
	"sms-assistant-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ShortCodeHandlerTestSuite defines the test suite for ShortCodeHandler
type ShortCodeHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSCRepo  *mocks.MockShortCodeRepositoryInterface
	mockDocRepo *mocks.MockDocumentRepositoryInterface
	http        *testutils.HTTPTestSuite
}

func (suite *ShortCodeHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSCRepo = mocks.NewMockShortCodeRepositoryInterface(suite.ctrl)
	suite.mockDocRepo = mocks.NewMockDocumentRepositoryInterface(suite.ctrl)

	scService := service.NewShortCodeService(suite.mockSCRepo, suite.mockDocRepo, validator.New())
	handler := handlers.NewShortCodeHandler(scService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/shortcodes", handler.CreateShortCode)
	suite.http.Router.GET("/shortcodes/:code", handler.GetShortCode)
	suite.http.Router.POST("/shortcodes/:code/documents", handler.LinkDocument)
}

func (suite *ShortCodeHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShortCodeHandlerTestSuite) TestCreateShortCode_Success() {
	orgID := uuid.New()

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(nil, gorm.ErrRecordNotFound)
	suite.mockSCRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(sc *models.ShortCode) error {
		sc.ID = uuid.New()
		return nil
	})

	recorder := suite.http.MakeRequest(http.MethodPost, "/shortcodes", map[string]interface{}{
		"code":            "40100",
		"organization_id": orgID,
	})

	var resp service.ShortCodeResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), "40100", resp.Code)
}

func (suite *ShortCodeHandlerTestSuite) TestCreateShortCode_Taken_Conflict() {
	suite.mockSCRepo.EXPECT().GetByCode("40100").
		Return(&models.ShortCode{Code: "40100", OrganizationID: uuid.New()}, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/shortcodes", map[string]interface{}{
		"code":            "40100",
		"organization_id": uuid.New(),
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *ShortCodeHandlerTestSuite) TestLinkDocument_CrossOrganization_BadRequest() {
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: uuid.New()}
	doc := &models.Document{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New()}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockDocRepo.EXPECT().GetByID(doc.ID).Return(doc, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/shortcodes/40100/documents", map[string]interface{}{
		"document_id": doc.ID,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "different organization")
}

func (suite *ShortCodeHandlerTestSuite) TestGetShortCode_NotFound() {
	suite.mockSCRepo.EXPECT().GetByCode("99999").Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.http.MakeRequest(http.MethodGet, "/shortcodes/99999", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func TestShortCodeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShortCodeHandlerTestSuite))
}
