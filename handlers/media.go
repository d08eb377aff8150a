package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"detailify/services/media"

	"github.com/gin-gonic/gin"
)

// MediaHandler exposes job photo storage endpoints.
type MediaHandler struct {
	Service media.MediaService
}

func NewMediaHandler(svc media.MediaService) *MediaHandler {
	return &MediaHandler{Service: svc}
}

// UploadHandler stores a job photo and returns its public ID and URL.
func (h *MediaHandler) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "details": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, url, err := h.Service.UploadJobPhoto(c.Request.Context(), tempFilePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "photo uploaded successfully",
		"publicId": publicID,
		"url":      url,
	})
}

// DeleteHandler removes a stored job photo by ?publicId=.
func (h *MediaHandler) DeleteHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId query parameter is required"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), publicID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete photo", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "photo deleted"})
}

// URLHandler returns the delivery URL for a stored photo by ?publicId=.
func (h *MediaHandler) URLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId query parameter is required"})
		return
	}

	url, err := h.Service.DownloadURL(c.Request.Context(), publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build URL", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
