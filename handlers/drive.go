package handlers

import (
	"fmt"
	"net/http"

	"detailify/services/drive"
	"detailify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DriveHandler exposes the Drive file manager endpoints.
type DriveHandler struct {
	Service drive.DriveService
}

func NewDriveHandler(svc drive.DriveService) *DriveHandler {
	return &DriveHandler{Service: svc}
}

// ListHandler lists one page of a folder (root folder when unspecified).
func (h *DriveHandler) ListHandler(c *gin.Context) {
	folderID := c.Query("folder")
	pageToken := c.Query("pageToken")

	listing, err := h.Service.List(c.Request.Context(), folderID, pageToken)
	if err != nil {
		utils.GetLogger().Error("Drive listing failed", zap.String("folder", folderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// DownloadHandler streams a file's content to the client.
func (h *DriveHandler) DownloadHandler(c *gin.Context) {
	fileID := c.Param("id")

	reader, meta, err := h.Service.Download(c.Request.Context(), fileID)
	if err != nil {
		utils.GetLogger().Error("Drive download failed", zap.String("fileID", fileID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer reader.Close()

	contentType := meta.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, meta.Name),
	}
	c.DataFromReader(http.StatusOK, meta.Size, contentType, reader, extraHeaders)
}

// DeleteHandler permanently removes a file or folder.
func (h *DriveHandler) DeleteHandler(c *gin.Context) {
	fileID := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), fileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

// MoveHandler reparents a file into another folder.
func (h *DriveHandler) MoveHandler(c *gin.Context) {
	fileID := c.Param("id")

	var req struct {
		ParentID string `json:"parentId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	file, err := h.Service.Move(c.Request.Context(), fileID, req.ParentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, file)
}

// RenameHandler changes a file's display name.
func (h *DriveHandler) RenameHandler(c *gin.Context) {
	fileID := c.Param("id")

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	file, err := h.Service.Rename(c.Request.Context(), fileID, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, file)
}
