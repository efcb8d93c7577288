package handler

import (
	"net/http"
	"strings"

	"core/internal/model"
	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	advisor *service.AdvisorService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(advisor *service.AdvisorService) *ChatHandler {
	return &ChatHandler{
		advisor: advisor,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	}

	convCtx := model.ConversationContext{
		LastClass: req.LastClass,
		LastName:  req.LastName,
	}

	response := h.advisor.Chat(c.Request.Context(), message, convCtx)

	c.JSON(http.StatusOK, response)
}
