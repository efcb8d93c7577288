package handler

import (
	"net/http"

	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// RulesHandler handles disposal-rule listing requests
type RulesHandler struct {
	advisor *service.AdvisorService
}

// NewRulesHandler creates a new rules handler
func NewRulesHandler(advisor *service.AdvisorService) *RulesHandler {
	return &RulesHandler{
		advisor: advisor,
	}
}

// List handles GET /api/v1/rules
func (h *RulesHandler) List(c *gin.Context) {
	rules := h.advisor.ListRules()

	c.JSON(http.StatusOK, gin.H{
		"rules": rules,
		"total": len(rules),
	})
}
