//go:build integration
// +build integration

package repository

import (
	"testing"

	"sms-assistant-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AreaRepositoryTestSuite tests the AreaRepository
type AreaRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AreaRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AreaRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAreaRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AreaRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AreaRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AreaRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new area
func (suite *AreaRepositoryTestSuite) TestCreate() {
	area := suite.factories.Area.Create()

	err := suite.repo.Create(area)

	suite.NoError(err)
	suite.NotZero(area.CreatedAt)
}

// TestAppendNumbers tests appending to an existing roster
func (suite *AreaRepositoryTestSuite) TestAppendNumbers() {
	area := suite.factories.Area.WithNumbers("+254700000001")
	suite.NoError(suite.repo.Create(area))

	err := suite.repo.AppendNumbers(area.Name, "+254700000002,+254700000003")

	suite.NoError(err)
	updated, err := suite.repo.GetByName(area.Name)
	suite.NoError(err)
	suite.Equal([]string{"+254700000001", "+254700000002", "+254700000003"}, updated.NumberList())
}

// TestAppendNumbersToEmptyRoster tests that no leading comma is introduced
func (suite *AreaRepositoryTestSuite) TestAppendNumbersToEmptyRoster() {
	area := suite.factories.Area.WithNumbers("")
	suite.NoError(suite.repo.Create(area))

	err := suite.repo.AppendNumbers(area.Name, "+254700000009")

	suite.NoError(err)
	updated, err := suite.repo.GetByName(area.Name)
	suite.NoError(err)
	suite.Equal("+254700000009", updated.Numbers)
}

// TestAppendNumbersUnknownArea tests appending to a missing area
func (suite *AreaRepositoryTestSuite) TestAppendNumbersUnknownArea() {
	err := suite.repo.AppendNumbers("nowhere", "+254700000001")

	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetAll tests listing all areas sorted by name
func (suite *AreaRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.Area.WithName("south")))
	suite.NoError(suite.repo.Create(suite.factories.Area.WithName("north")))

	areas, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(areas, 2)
	suite.Equal("north", areas[0].Name)
}

// TestAreaRepositoryTestSuite runs the test suite
func TestAreaRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AreaRepositoryTestSuite))
}
