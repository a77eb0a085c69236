package routes

import (
	"depthchart-backend/internal/api/handlers"
	"depthchart-backend/internal/api/middleware"
	"depthchart-backend/internal/config"
	"depthchart-backend/internal/repository"
	"depthchart-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	depthChartRepo := repository.NewDepthChartRepository(db)

	// Initialize services
	teamService := service.NewTeamService(teamRepo, validator)
	depthChartService := service.NewDepthChartService(depthChartRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	depthChartHandler := handlers.NewDepthChartHandler(depthChartService)

	// Health and docs
	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Team routes
	teams := router.Group("/teams")
	{
		teams.POST("", teamHandler.CreateTeam)
		teams.GET("", teamHandler.ListTeams)
		teams.GET("/:teamId", teamHandler.GetTeam)

		// Depth chart routes
		teams.GET("/:teamId/depthchart", depthChartHandler.GetFullChart)
		teams.POST("/:teamId/depthchart/add", depthChartHandler.AddPlayer)
		teams.POST("/:teamId/depthchart/remove", depthChartHandler.RemovePlayer)
		teams.GET("/:teamId/depthchart/:position/:name/:number/backups", depthChartHandler.GetBackups)
	}

	return router
}
