package service_test

import (
	"testing"

	"sms-assistant-backend/internal/database/models"
	apperrors "sms-assistant-backend/internal/errors"
	"sms-assistant-backend/internal/mocks"
	"sms-assistant-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AreaServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockAreaRepo *mocks.MockAreaRepositoryInterface
	areaService  *service.AreaService
}

func (suite *AreaServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAreaRepo = mocks.NewMockAreaRepositoryInterface(suite.ctrl)
	suite.areaService = service.NewAreaService(suite.mockAreaRepo, validator.New())
}

func (suite *AreaServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AreaServiceTestSuite) TestCreate_Success_JoinsRoster() {
	suite.mockAreaRepo.EXPECT().GetByName("north").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAreaRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(area *models.Area) error {
		suite.Equal("+254700000001,+254700000002", area.Numbers)
		return nil
	})

	resp, err := suite.areaService.Create(&service.CreateAreaRequest{
		Name:    "north",
		Numbers: []string{"+254700000001", "+254700000002"},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"+254700000001", "+254700000002"}, resp.Numbers)
}

func (suite *AreaServiceTestSuite) TestCreate_DuplicateName() {
	suite.mockAreaRepo.EXPECT().GetByName("north").Return(&models.Area{Name: "north"}, nil)

	resp, err := suite.areaService.Create(&service.CreateAreaRequest{Name: "north"})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
	assert.Nil(suite.T(), resp)
}

func (suite *AreaServiceTestSuite) TestAppendNumbers_UnknownArea() {
	suite.mockAreaRepo.EXPECT().AppendNumbers("nowhere", "+254700000001").Return(gorm.ErrRecordNotFound)

	err := suite.areaService.AppendNumbers("nowhere", &service.AppendNumbersRequest{
		Numbers: []string{"+254700000001"},
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAreaNotFound)
}

func (suite *AreaServiceTestSuite) TestNumbersForAreas_DeduplicatesAndSkipsUnknown() {
	suite.mockAreaRepo.EXPECT().GetByName("north").
		Return(&models.Area{Name: "north", Numbers: "+254700000001,+254700000002"}, nil)
	suite.mockAreaRepo.EXPECT().GetByName("nowhere").Return(nil, gorm.ErrRecordNotFound)
	suite.mockAreaRepo.EXPECT().GetByName("south").
		Return(&models.Area{Name: "south", Numbers: "+254700000002"}, nil)

	numbers, err := suite.areaService.NumbersForAreas([]string{"north", "nowhere", "south"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"+254700000001", "+254700000002"}, numbers)
}

func TestAreaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AreaServiceTestSuite))
}
