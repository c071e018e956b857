package routes

import (
	"conference-review-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Conference Review API is running",
			})
		})

		// Reviewer assignments
		assignments := v1.Group("/assignments")
		{
			assignments.POST("/automatic", controllers.RunAutomaticAssignment)
			assignments.POST("", controllers.AssignReviewerToPaper)
			assignments.DELETE("", controllers.RemoveReviewerFromPaper)
		}

		// Reviewers assigned to a paper
		v1.GET("/papers/:id/reviewers", controllers.GetPaperReviewers)

		// Review preferences
		v1.POST("/preferences", controllers.RecordPreference)
	}

	// 404 catch-all
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Endpoint not found"})
	})
}
