package handlers

import (
	"net/http"
	"strconv"

	apperrors "depthchart-backend/internal/errors"
	"depthchart-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepthChartHandler handles HTTP requests for depth chart operations
type DepthChartHandler struct {
	depthChartService service.DepthChartServiceInterface
}

// NewDepthChartHandler creates a new depth chart handler
func NewDepthChartHandler(depthChartService service.DepthChartServiceInterface) *DepthChartHandler {
	return &DepthChartHandler{
		depthChartService: depthChartService,
	}
}

// clientError reports whether the error should surface as a 400. Team
// absence, invalid positions, duplicate players, and depth gaps are all
// caller mistakes; anything else is internal.
func clientError(err error) bool {
	return apperrors.IsNotFound(err) ||
		apperrors.IsAlreadyExists(err) ||
		apperrors.IsValidation(err) ||
		apperrors.IsConflict(err)
}

// GetFullChart handles GET /teams/:teamId/depthchart
// @Summary Get a team's full depth chart
// @Description Get every position's ordered player list for a team
// @Tags depthchart
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} map[string][]service.PlayerResponse "Position code to ordered players"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/depthchart [get]
func (h *DepthChartHandler) GetFullChart(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	chart, err := h.depthChartService.GetFullChart(c.Request.Context(), teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, chart)
}

// AddPlayer handles POST /teams/:teamId/depthchart/add
// @Summary Add a player to a position
// @Description Add a player to a position's depth chart, optionally at a specific depth
// @Tags depthchart
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param player body service.AddPlayerRequest true "Player and placement"
// @Success 204 "Player added"
// @Failure 400 {object} ErrorResponse "Invalid request, unknown team, invalid position, duplicate player, or depth gap"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/depthchart/add [post]
func (h *DepthChartHandler) AddPlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.depthChartService.AddPlayer(c.Request.Context(), teamID, &req); err != nil {
		if clientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RemovePlayer handles POST /teams/:teamId/depthchart/remove
// @Summary Remove a player from a position
// @Description Remove a player from a position's depth chart; returns the removed player, or an empty list when absent
// @Tags depthchart
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param player body service.RemovePlayerRequest true "Player to remove"
// @Success 200 {array} service.PlayerResponse "Removed players (0 or 1)"
// @Failure 400 {object} ErrorResponse "Invalid request, unknown team, or invalid position"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/depthchart/remove [post]
func (h *DepthChartHandler) RemovePlayer(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.RemovePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	removed, err := h.depthChartService.RemovePlayer(c.Request.Context(), teamID, &req)
	if err != nil {
		if clientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, removed)
}

// GetBackups handles GET /teams/:teamId/depthchart/:position/:name/:number/backups
// @Summary Get a player's backups at a position
// @Description Get the ordered list of players ranked after the given player at a position
// @Tags depthchart
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param position path string true "Position code"
// @Param name path string true "Player name"
// @Param number path int true "Jersey number"
// @Success 200 {array} service.PlayerResponse "Ordered backups, possibly empty"
// @Failure 400 {object} ErrorResponse "Invalid path parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId}/depthchart/{position}/{name}/{number}/backups [get]
func (h *DepthChartHandler) GetBackups(c *gin.Context) {
	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	position := c.Param("position")
	name := c.Param("name")
	if position == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "position and player name are required"})
		return
	}

	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player number must be a positive integer"})
		return
	}

	backups, err := h.depthChartService.GetBackups(c.Request.Context(), teamID, position, name, number)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, backups)
}
