package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"conference-review-api/config"
	"conference-review-api/services"
	"conference-review-api/utils"
)

// RunAutomaticAssignment triggers the ILP-based assignment engine for a
// conference. The acting user must hold the admin role; on success the
// conference's previous assignment set has been fully replaced.
func RunAutomaticAssignment(c *gin.Context) {
	var req struct {
		UserID                    int `json:"user_id" binding:"required"`
		ConferenceID              int `json:"conference_id" binding:"required"`
		MaxPapersPerReviewer      int `json:"max_papers_per_reviewer" binding:"required"`
		RequiredReviewersPerPaper int `json:"required_reviewers_per_paper" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return
	}

	svc := services.NewAssignmentService(config.DB, nil)
	count, err := svc.RunAutomaticAssignment(req.UserID, req.ConferenceID,
		req.MaxPapersPerReviewer, req.RequiredReviewersPerPaper)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Reviewers assigned successfully.",
		"assignments": count,
	})
}

type manualAssignmentRequest struct {
	CurrentUserID int    `json:"current_user_id" binding:"required"`
	ConferenceID  int    `json:"conference_id" binding:"required"`
	PaperID       int    `json:"paper_id" binding:"required"`
	ReviewerEmail string `json:"reviewer_email" binding:"required"`
}

func bindManualAssignment(c *gin.Context) (*manualAssignmentRequest, bool) {
	var req manualAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields."})
		return nil, false
	}
	req.ReviewerEmail = utils.SanitizeInput(req.ReviewerEmail)
	if !utils.ValidateEmail(req.ReviewerEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reviewer email"})
		return nil, false
	}
	return &req, true
}

// AssignReviewerToPaper manually assigns one reviewer (by email) to a paper.
func AssignReviewerToPaper(c *gin.Context) {
	req, ok := bindManualAssignment(c)
	if !ok {
		return
	}

	svc := services.NewAssignmentService(config.DB, nil)
	if err := svc.AssignReviewerToPaper(req.CurrentUserID, req.ConferenceID, req.PaperID, req.ReviewerEmail); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reviewers assigned successfully."})
}

// RemoveReviewerFromPaper removes a reviewer from a paper.
func RemoveReviewerFromPaper(c *gin.Context) {
	req, ok := bindManualAssignment(c)
	if !ok {
		return
	}

	svc := services.NewAssignmentService(config.DB, nil)
	if err := svc.RemoveReviewerFromPaper(req.CurrentUserID, req.ConferenceID, req.PaperID, req.ReviewerEmail); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reviewers removed successfully."})
}

// GetPaperReviewers lists the reviewers currently assigned to a paper.
func GetPaperReviewers(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}
	conferenceID, err := strconv.Atoi(c.Query("conference_id"))
	if err != nil || conferenceID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conference ID"})
		return
	}

	svc := services.NewAssignmentService(config.DB, nil)
	reviewers, err := svc.ListPaperReviewers(conferenceID, paperID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reviewers": reviewers,
		"total":     len(reviewers),
	})
}
