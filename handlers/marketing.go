package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"detailify/models"
	"detailify/services/marketing"
	"detailify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MarketingHandler exposes the content studio endpoints.
type MarketingHandler struct {
	Service marketing.MarketingService
}

func NewMarketingHandler(svc marketing.MarketingService) *MarketingHandler {
	return &MarketingHandler{Service: svc}
}

// GenerateHandler produces a caption, push blurb, SEO set or video script.
func (h *MarketingHandler) GenerateHandler(c *gin.Context) {
	var req models.ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	content, err := h.Service.Generate(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("Content generation failed", zap.String("kind", req.Kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}

// HistoryHandler lists previously generated content, newest first.
func (h *MarketingHandler) HistoryHandler(c *gin.Context) {
	kind := c.Query("kind")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	items, err := h.Service.History(c.Request.Context(), kind, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": items, "count": len(items)})
}

// DeleteHandler removes a stored content item.
func (h *MarketingHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}

// TranscribeBriefHandler turns a spoken brief (WAV upload) into text the
// owner can drop into a generation request.
func (h *MarketingHandler) TranscribeBriefHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "audio file is required",
			"details": err.Error(),
		})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".wav" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected .wav, got %s", ext),
		})
		return
	}

	// Read one byte past the limit so the service can reject oversize uploads.
	wavData, err := io.ReadAll(io.LimitReader(file, marketing.MaxBriefFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read audio file",
			"details": err.Error(),
		})
		return
	}

	transcript, err := h.Service.TranscribeBrief(c.Request.Context(), wavData, language)
	if err != nil {
		utils.GetLogger().Error("Brief transcription failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "transcription failed",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcription": transcript})
}
