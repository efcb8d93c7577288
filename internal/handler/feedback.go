package handler

import (
	"net/http"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles feedback-related HTTP requests
type FeedbackHandler struct {
	advisor *service.AdvisorService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(advisor *service.AdvisorService) *FeedbackHandler {
	return &FeedbackHandler{
		advisor: advisor,
	}
}

// Submit handles POST /api/v1/feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Validate action
	validActions := map[string]bool{
		"helpful":     true,
		"not_helpful": true,
		"wrong_item":  true,
	}

	if !validActions[req.Action] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be one of: helpful, not_helpful, wrong_item"})
		return
	}

	// Log feedback
	err := h.advisor.Feedback(c.Request.Context(), req.AnalysisID, req.Action, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log feedback: " + err.Error()})
		return
	}

	response := model.FeedbackResponse{
		Success: true,
		Message: "Feedback logged successfully",
	}

	c.JSON(http.StatusOK, response)
}
