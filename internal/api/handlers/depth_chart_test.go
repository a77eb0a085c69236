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

// DepthChartHandlerTestSuite defines the test suite for DepthChartHandler
type DepthChartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDepthChartServiceInterface
	handler     *handlers.DepthChartHandler
	httpSuite   *testutils.HTTPTestSuite
	teamID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *DepthChartHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDepthChartServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDepthChartHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.teamID = uuid.New()

	// Register routes
	teams := suite.httpSuite.Router.Group("/teams")
	{
		teams.GET("/:teamId/depthchart", suite.handler.GetFullChart)
		teams.POST("/:teamId/depthchart/add", suite.handler.AddPlayer)
		teams.POST("/:teamId/depthchart/remove", suite.handler.RemovePlayer)
		teams.GET("/:teamId/depthchart/:position/:name/:number/backups", suite.handler.GetBackups)
	}
}

// TearDownTest cleans up after each test
func (suite *DepthChartHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DepthChartHandlerTestSuite) TestGetFullChart() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetFullChart(gomock.Any(), suite.teamID).
			Return(map[string][]service.PlayerResponse{
				"QB": {{Name: "Tom Brady", Number: 12}},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/teams/%s/depthchart", suite.teamID), nil)

		var chart map[string][]service.PlayerResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &chart)
		suite.Equal([]service.PlayerResponse{{Name: "Tom Brady", Number: 12}}, chart["QB"])
	})

	suite.T().Run("InvalidTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/teams/not-a-uuid/depthchart", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("ServiceError", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetFullChart(gomock.Any(), suite.teamID).
			Return(nil, fmt.Errorf("connection refused"))

		recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/teams/%s/depthchart", suite.teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "connection refused")
	})
}

func (suite *DepthChartHandlerTestSuite) TestAddPlayer() {
	url := func() string { return fmt.Sprintf("/teams/%s/depthchart/add", suite.teamID) }

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPlayer(gomock.Any(), suite.teamID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.AddPlayerRequest) error {
				suite.Equal("QB", req.Position)
				suite.Equal("Tom Brady", req.Name)
				suite.Equal(12, req.Number)
				suite.Nil(req.PositionDepth)
				return nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		suite.Equal(http.StatusNoContent, recorder.Code)
		suite.Empty(recorder.Body.Bytes())
	})

	suite.T().Run("WithDepth", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPlayer(gomock.Any(), suite.teamID, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ uuid.UUID, req *service.AddPlayerRequest) error {
				suite.Require().NotNil(req.PositionDepth)
				suite.Equal(0, *req.PositionDepth)
				return nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position":       "QB",
			"name":           "Blaine Gabbert",
			"number":         11,
			"position_depth": 0,
		})

		suite.Equal(http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return(apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "not found")
	})

	suite.T().Run("DepthGapConflict", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return(apperrors.NewConflictError(
				"cannot add %s #%d at depth %d because depth %d must be filled first",
				"Tom Brady", 12, 4, 2))

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position":       "QB",
			"name":           "Tom Brady",
			"number":         12,
			"position_depth": 4,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "depth 2 must be filled first")
	})

	suite.T().Run("DuplicatePlayer", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddPlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return(apperrors.ErrPlayerAlreadyAtDepth)

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", url(), "not an object")

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})
}

func (suite *DepthChartHandlerTestSuite) TestRemovePlayer() {
	url := func() string { return fmt.Sprintf("/teams/%s/depthchart/remove", suite.teamID) }

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemovePlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return([]service.PlayerResponse{{Name: "Tom Brady", Number: 12}}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		var removed []service.PlayerResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &removed)
		suite.Equal([]service.PlayerResponse{{Name: "Tom Brady", Number: 12}}, removed)
	})

	suite.T().Run("AbsentPlayerIsEmptyList", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemovePlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return([]service.PlayerResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Joe Montana",
			"number":   16,
		})

		var removed []service.PlayerResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &removed)
		suite.Empty(removed)
		suite.Equal("[]", recorder.Body.String())
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			RemovePlayer(gomock.Any(), suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest("POST", url(), map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		suite.Equal(http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("InvalidTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/teams/not-a-uuid/depthchart/remove", map[string]interface{}{
			"position": "QB",
			"name":     "Tom Brady",
			"number":   12,
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func (suite *DepthChartHandlerTestSuite) TestGetBackups() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetBackups(gomock.Any(), suite.teamID, "QB", "Tom Brady", 12).
			Return([]service.PlayerResponse{
				{Name: "Jimmy Garoppolo", Number: 10},
				{Name: "Blaine Gabbert", Number: 11},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/teams/%s/depthchart/QB/Tom Brady/12/backups", suite.teamID), nil)

		var backups []service.PlayerResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &backups)
		suite.Len(backups, 2)
		suite.Equal("Jimmy Garoppolo", backups[0].Name)
	})

	suite.T().Run("EmptyResult", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetBackups(gomock.Any(), suite.teamID, "QB", "Blaine Gabbert", 11).
			Return([]service.PlayerResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/teams/%s/depthchart/QB/Blaine Gabbert/11/backups", suite.teamID), nil)

		suite.Equal(http.StatusOK, recorder.Code)
		suite.Equal("[]", recorder.Body.String())
	})

	suite.T().Run("InvalidNumber", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/teams/%s/depthchart/QB/Tom Brady/twelve/backups", suite.teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "positive integer")
	})

	suite.T().Run("NonPositiveNumber", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET",
			fmt.Sprintf("/teams/%s/depthchart/QB/Tom Brady/0/backups", suite.teamID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "positive integer")
	})

	suite.T().Run("InvalidTeamID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/teams/not-a-uuid/depthchart/QB/Tom Brady/12/backups", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})
}

func TestDepthChartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepthChartHandlerTestSuite))
}
