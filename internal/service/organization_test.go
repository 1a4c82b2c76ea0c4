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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockOrgRepo *mocks.MockOrganizationRepositoryInterface
	orgService  *service.OrganizationService
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.orgService = service.NewOrganizationService(suite.mockOrgRepo, validator.New())
}

func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationServiceTestSuite) TestCreate_Success_HashesPassword() {
	req := &service.CreateOrganizationRequest{
		Name:     "AcmeHealth",
		Email:    "contact@acme.org",
		Password: "s3cret-password",
	}

	suite.mockOrgRepo.EXPECT().GetByName("AcmeHealth").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().GetByEmail("contact@acme.org").Return(nil, gorm.ErrRecordNotFound)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(org *models.Organization) error {
		org.ID = uuid.New()
		suite.NotEqual("s3cret-password", org.PasswordHash)
		suite.NoError(bcrypt.CompareHashAndPassword([]byte(org.PasswordHash), []byte("s3cret-password")))
		return nil
	})

	resp, err := suite.orgService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AcmeHealth", resp.Name)
	assert.Equal(suite.T(), "contact@acme.org", resp.Email)
}

func (suite *OrganizationServiceTestSuite) TestCreate_DuplicateName() {
	existing := &models.Organization{Name: "AcmeHealth"}
	suite.mockOrgRepo.EXPECT().GetByName("AcmeHealth").Return(existing, nil)

	resp, err := suite.orgService.Create(&service.CreateOrganizationRequest{
		Name:     "AcmeHealth",
		Email:    "other@acme.org",
		Password: "s3cret-password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.Nil(suite.T(), resp)
}

func (suite *OrganizationServiceTestSuite) TestCreate_InvalidEmail_FailsValidation() {
	resp, err := suite.orgService.Create(&service.CreateOrganizationRequest{
		Name:     "AcmeHealth",
		Email:    "not-an-email",
		Password: "s3cret-password",
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *OrganizationServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockOrgRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orgService.GetByID(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
	assert.Nil(suite.T(), resp)
}

func (suite *OrganizationServiceTestSuite) TestAuthenticate_WrongPassword() {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	org := &models.Organization{Email: "contact@acme.org", PasswordHash: string(hash)}
	suite.mockOrgRepo.EXPECT().GetByEmail("contact@acme.org").Return(org, nil)

	resp, err := suite.orgService.Authenticate("contact@acme.org", "wrong-password")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *OrganizationServiceTestSuite) TestGetAll_NormalizesPagination() {
	suite.mockOrgRepo.EXPECT().GetAll(20, 0).Return([]models.Organization{}, int64(0), nil)

	resp, err := suite.orgService.GetAll(0, -5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
