package routes

import (
	"net/http"

	"fleet-equipment-tracker/internal/config"
	"fleet-equipment-tracker/internal/delivery/http/handler"
	"fleet-equipment-tracker/internal/infrastructure/database/postgres"
	"fleet-equipment-tracker/internal/ingestion"
	"fleet-equipment-tracker/internal/logger"
	"fleet-equipment-tracker/internal/middleware"
	"fleet-equipment-tracker/internal/usecase/auth"
	"fleet-equipment-tracker/internal/usecase/demand"
	"fleet-equipment-tracker/internal/usecase/equipment"
	"fleet-equipment-tracker/internal/usecase/workorder"
	"fleet-equipment-tracker/internal/usecase/workshop"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB, feed *ingestion.Feed) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware in order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		body := gin.H{
			"status":  "healthy",
			"message": "Service is running",
		}
		if feed != nil {
			metrics := feed.Metrics()
			body["status_feed"] = gin.H{
				"received":  metrics.MessagesReceived,
				"processed": metrics.MessagesProcessed,
				"failed":    metrics.MessagesFailed,
			}
		}

		c.JSON(http.StatusOK, body)
	})

	workshopRepository := postgres.NewWorkshopRepository(db)
	equipmentRepository := postgres.NewEquipmentRepository(db)
	workorderRepository := postgres.NewWorkorderRepository(db)

	authService := auth.NewService(cfg)
	authHandler := handler.NewAuthHandler(authService)

	equipmentService := equipment.NewService(equipmentRepository)
	equipmentHandler := handler.NewEquipmentHandler(equipmentService)

	workshopService := workshop.NewService(workshopRepository)
	workshopHandler := handler.NewWorkshopHandler(workshopService)

	workorderService := workorder.NewService(workorderRepository, equipmentRepository)
	workorderHandler := handler.NewWorkorderHandler(workorderService)

	demandService := demand.NewService(workshopRepository, equipmentRepository, cfg.Demand.DefaultRadiusKm)
	demandHandler := handler.NewDemandHandler(demandService)

	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		equipmentHandler.RegisterRoutes(v1)
		workshopHandler.RegisterRoutes(v1)
		workorderHandler.RegisterRoutes(v1)
		demandHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			equipmentHandler.RegisterProtectedRoutes(protected)
			workshopHandler.RegisterProtectedRoutes(protected)
			workorderHandler.RegisterProtectedRoutes(protected)
		}
	}

	logger.Info("All routes initialized")
	return router
}
