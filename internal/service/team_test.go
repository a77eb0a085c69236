package service_test

import (
	"context"
	"errors"
	"testing"

	"depthchart-backend/internal/database/models"
	apperrors "depthchart-backend/internal/errors"
	"depthchart-backend/internal/mocks"
	"depthchart-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type TeamServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockTeamRepositoryInterface
	svc      *service.TeamService
	ctx      context.Context
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.svc = service.NewTeamService(suite.mockRepo, validator.New())
	suite.ctx = context.Background()
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeam() {
	suite.mockRepo.EXPECT().
		GetByName(gomock.Any(), "Tampa Bay Buccaneers").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, team *models.Team) error {
			team.ID = uuid.New()
			return nil
		})

	resp, err := suite.svc.Create(suite.ctx, &service.CreateTeamRequest{
		Name: "Tampa Bay Buccaneers", Sport: "NFL",
	})

	suite.NoError(err)
	suite.Equal("Tampa Bay Buccaneers", resp.Name)
	suite.Equal("NFL", resp.Sport)
	suite.NotEqual(uuid.Nil, resp.ID)
}

func (suite *TeamServiceTestSuite) TestCreateTeamUnknownSport() {
	_, err := suite.svc.Create(suite.ctx, &service.CreateTeamRequest{
		Name: "Tampa Bay Buccaneers", Sport: "curling",
	})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "unknown sport")
}

func (suite *TeamServiceTestSuite) TestCreateTeamDuplicateName() {
	suite.mockRepo.EXPECT().
		GetByName(gomock.Any(), "Tampa Bay Buccaneers").
		Return(&models.Team{Name: "Tampa Bay Buccaneers", Sport: "NFL"}, nil)

	_, err := suite.svc.Create(suite.ctx, &service.CreateTeamRequest{
		Name: "Tampa Bay Buccaneers", Sport: "NFL",
	})

	suite.ErrorIs(err, apperrors.ErrTeamExists)
}

func (suite *TeamServiceTestSuite) TestCreateTeamValidatesRequest() {
	_, err := suite.svc.Create(suite.ctx, &service.CreateTeamRequest{Sport: "NFL"})

	suite.True(apperrors.IsValidation(err))
}

func (suite *TeamServiceTestSuite) TestGetByID() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		GetByID(gomock.Any(), id).
		Return(&models.Team{BaseModel: models.BaseModel{ID: id}, Name: "Test Team", Sport: "NFL"}, nil)

	resp, err := suite.svc.GetByID(suite.ctx, id)

	suite.NoError(err)
	suite.Equal(id, resp.ID)
	suite.Equal("Test Team", resp.Name)
}

func (suite *TeamServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().
		GetByID(gomock.Any(), id).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.GetByID(suite.ctx, id)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

func (suite *TeamServiceTestSuite) TestList() {
	suite.mockRepo.EXPECT().
		List(gomock.Any()).
		Return([]models.Team{
			{Name: "Team A", Sport: "NFL"},
			{Name: "Team B", Sport: "MLB"},
		}, nil)

	teams, err := suite.svc.List(suite.ctx)

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("Team A", teams[0].Name)
}

func (suite *TeamServiceTestSuite) TestListRepositoryError() {
	suite.mockRepo.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := suite.svc.List(suite.ctx)

	suite.Error(err)
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
