package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healieve/health-app/internal/service"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	exerciseService service.ExerciseService,
	reportService service.ReportService,
	chatService service.ChatService,
	advisoryService service.AdvisoryService,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	reportHandler := NewReportHandler(reportService)
	chatHandler := NewChatHandler(chatService)
	advisoryHandler := NewAdvisoryHandler(advisoryService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Reports, chat and advisory are open endpoints: the report payload
		// carries its own profile and nothing is persisted per user.
		apiV1.POST("/reports/fitness", reportHandler.GenerateReport)
		apiV1.POST("/chat", chatHandler.Ask)
		apiV1.GET("/advisory", advisoryHandler.GetAdvisory)

		apiV1.GET("/exercises", exerciseHandler.ListExercises)
		apiV1.GET("/exercises/:id", exerciseHandler.GetExerciseByID)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr})
		})

		protected.POST("/exercises", exerciseHandler.CreateExercise)
		protected.DELETE("/exercises/:id", exerciseHandler.DeleteExercise)

		mediaGroup := protected.Group("/media")
		{
			mediaGroup.POST("/uploads", exerciseHandler.RequestMediaUpload)
			mediaGroup.GET("/download-url", exerciseHandler.GetMediaDownloadURL)
		}
	}
}
