package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swimset/swim-app/internal/domain"
	"swimset/swim-app/internal/service"
)

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

const healthCheckTimeout = 2 * time.Second

// Services bundles the handlers' dependencies.
type Services struct {
	Auth      service.AuthService
	Workouts  service.WorkoutService
	Generator service.GeneratorService
	Exports   service.ExportService
}

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	maxBodyBytes int64,
	health HealthCheck,
	svc Services,
) {
	authHandler := NewAuthHandler(svc.Auth)
	workoutHandler := NewWorkoutHandler(svc.Workouts)
	generateHandler := NewGenerateHandler(svc.Generator, svc.Workouts)
	exportHandler := NewExportHandler(svc.Exports)

	authMiddleware := AuthMiddleware(jwtSecret)
	coachOnly := RoleMiddleware(domain.RoleCoach)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/healthz", func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := health(ctx); err != nil {
				log.Printf("WARN: Health check failed: %v", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiV1 := router.Group("/api/v1")
	apiV1.Use(BodyLimitMiddleware(maxBodyBytes))
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// Coaches and swimmers
		protected.POST("/interpret", workoutHandler.Interpret)
		protected.POST("/generate", generateHandler.Generate)

		workoutGroup := protected.Group("/workouts")
		workoutGroup.Use(coachOnly)
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)

			workoutGroup.POST("/:id/exports", exportHandler.CreateExport)
			workoutGroup.GET("/:id/exports", exportHandler.ListExports)
		}

		protected.GET("/exports/:id", coachOnly, exportHandler.GetExport)
	}
}
