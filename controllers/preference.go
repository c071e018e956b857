package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conference-review-api/config"
	"conference-review-api/services"
)

// RecordPreference stores a reviewer's interest (or disinterest) in a paper.
// Recording one label clears a previously recorded opposite label; absence
// of any record means neutral.
func RecordPreference(c *gin.Context) {
	var req struct {
		ReviewerID int    `json:"reviewer_id" binding:"required"`
		PaperID    int    `json:"paper_id" binding:"required"`
		Preference string `json:"preference" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	svc := services.NewPreferenceService(config.DB)
	if err := svc.RecordPreference(req.PaperID, req.ReviewerID, req.Preference); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Preference saved"})
}
