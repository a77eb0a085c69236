package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"depthchart-backend/internal/api/handlers"
	apperrors "depthchart-backend/internal/errors"
	"depthchart-backend/internal/mocks"
	"depthchart-backend/internal/service"
	"depthchart-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	teams := suite.httpSuite.Router.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:teamId", suite.handler.GetTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *service.CreateTeamRequest) (*service.TeamResponse, error) {
				suite.Equal("Tampa Bay Buccaneers", req.Name)
				suite.Equal("NFL", req.Sport)
				return &service.TeamResponse{ID: teamID, Name: req.Name, Sport: req.Sport}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", "/teams", map[string]interface{}{
			"name":  "Tampa Bay Buccaneers",
			"sport": "NFL",
		})

		var resp service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &resp)
		suite.Equal(teamID, resp.ID)
		suite.Equal("Tampa Bay Buccaneers", resp.Name)
	})

	suite.T().Run("DuplicateName", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest("POST", "/teams", map[string]interface{}{
			"name":  "Tampa Bay Buccaneers",
			"sport": "NFL",
		})

		suite.Equal(http.StatusConflict, recorder.Code)
	})

	suite.T().Run("UnknownSport", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.NewValidationError("sport", "unknown sport curling"))

		recorder := suite.httpSuite.MakeRequest("POST", "/teams", map[string]interface{}{
			"name":  "Ice Squad",
			"sport": "curling",
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "unknown sport")
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/teams", "not an object")

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), teamID).
			Return(&service.TeamResponse{ID: teamID, Name: "Test Team", Sport: "NFL"}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/teams/%s", teamID), nil)

		var resp service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &resp)
		suite.Equal("Test Team", resp.Name)
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockService.EXPECT().
			GetByID(gomock.Any(), teamID).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/teams/%s", teamID), nil)

		suite.Equal(http.StatusNotFound, recorder.Code)
	})

	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/teams/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			Return([]service.TeamResponse{
				{ID: uuid.New(), Name: "Team A", Sport: "NFL"},
				{ID: uuid.New(), Name: "Team B", Sport: "MLB"},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", "/teams", nil)

		var teams []service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &teams)
		suite.Len(teams, 2)
	})

	suite.T().Run("ServiceError", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			Return(nil, fmt.Errorf("connection refused"))

		recorder := suite.httpSuite.MakeRequest("GET", "/teams", nil)

		suite.Equal(http.StatusInternalServerError, recorder.Code)
	})
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
