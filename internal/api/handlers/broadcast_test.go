package handlers_test

import (
	"net/http"
	"testing"

	"sms-assistant-backend/internal/api/handlers"
	"sms-assistant-backend/internal/database/models"
	"sms-assistant-backend/internal/logger"
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

// BroadcastHandlerTestSuite defines the test suite for BroadcastHandler
type BroadcastHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockMsgRepo  *mocks.MockMessageRepositoryInterface
	mockSCRepo   *mocks.MockShortCodeRepositoryInterface
	mockAreaRepo *mocks.MockAreaRepositoryInterface
	mockGateway  *mocks.MockGateway
	http         *testutils.HTTPTestSuite
}

func (suite *BroadcastHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMsgRepo = mocks.NewMockMessageRepositoryInterface(suite.ctrl)
	suite.mockSCRepo = mocks.NewMockShortCodeRepositoryInterface(suite.ctrl)
	suite.mockAreaRepo = mocks.NewMockAreaRepositoryInterface(suite.ctrl)
	suite.mockGateway = mocks.NewMockGateway(suite.ctrl)

	broadcastService := service.NewBroadcastService(
		suite.mockMsgRepo, suite.mockSCRepo,
		service.NewAreaService(suite.mockAreaRepo, validator.New()),
		suite.mockGateway, validator.New(), logger.New(),
	)
	handler := handlers.NewBroadcastHandler(broadcastService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/broadcasts", handler.SendBroadcast)
	suite.http.Router.GET("/broadcasts", handler.ListBroadcasts)
}

func (suite *BroadcastHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BroadcastHandlerTestSuite) TestSendBroadcast_Success() {
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100", OrganizationID: uuid.New()}
	north := &models.Area{Name: "north", Numbers: "+254700000001,+254700000002"}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockAreaRepo.EXPECT().GetByName("north").Return(north, nil)
	suite.mockGateway.EXPECT().
		Send(gomock.Any(), "Clinic opens Monday.", []string{"+254700000001", "+254700000002"}).
		Return(nil)
	suite.mockMsgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(msg *models.Message) error {
		msg.ID = uuid.New()
		return nil
	})

	recorder := suite.http.MakeRequest(http.MethodPost, "/broadcasts", map[string]interface{}{
		"content":    "Clinic opens Monday.",
		"short_code": "40100",
		"areas":      []string{"north"},
	})

	var resp service.BroadcastResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Equal(suite.T(), 2, resp.Recipients)
}

func (suite *BroadcastHandlerTestSuite) TestSendBroadcast_NoRecipients_BadRequest() {
	sc := &models.ShortCode{BaseModel: models.BaseModel{ID: uuid.New()}, Code: "40100"}

	suite.mockSCRepo.EXPECT().GetByCode("40100").Return(sc, nil)
	suite.mockAreaRepo.EXPECT().GetByName("nowhere").Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/broadcasts", map[string]interface{}{
		"content":    "Hello",
		"short_code": "40100",
		"areas":      []string{"nowhere"},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "no recipients")
}

func (suite *BroadcastHandlerTestSuite) TestSendBroadcast_UnknownShortCode_NotFound() {
	suite.mockSCRepo.EXPECT().GetByCode("99999").Return(nil, gorm.ErrRecordNotFound)

	recorder := suite.http.MakeRequest(http.MethodPost, "/broadcasts", map[string]interface{}{
		"content":    "Hello",
		"short_code": "99999",
		"areas":      []string{"north"},
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *BroadcastHandlerTestSuite) TestListBroadcasts_MissingOrganizationID() {
	recorder := suite.http.MakeRequest(http.MethodGet, "/broadcasts", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "organization_id")
}

func TestBroadcastHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BroadcastHandlerTestSuite))
}
