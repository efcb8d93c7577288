package handler

import (
	"io"
	"net/http"
	"strconv"

	"core/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyzeHandler handles image-analysis HTTP requests
type AnalyzeHandler struct {
	advisor *service.AdvisorService
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(advisor *service.AdvisorService) *AnalyzeHandler {
	return &AnalyzeHandler{
		advisor: advisor,
	}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty filename"})
		return
	}

	lat := parseFormFloat(c, "lat")
	lng := parseFormFloat(c, "lng")

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded image"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded image"})
		return
	}

	recommendation, err := h.advisor.Analyze(c.Request.Context(), imageData, lat, lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, recommendation)
}

// parseFormFloat reads an optional float form value, returning nil when
// it is absent or unparseable
func parseFormFloat(c *gin.Context, key string) *float64 {
	raw := c.PostForm(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
