package handlers

import (
	"net/http"
	"strings"
	"time"

	"detailify/config"
	"detailify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const ownerTokenDuration = 24 * time.Hour

// LoginHandler authenticates the shop owner and returns a session token.
func LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ownerEmail := config.AppConfig.OwnerEmail
	ownerHash := config.AppConfig.OwnerPasswordHash
	if ownerEmail == "" || ownerHash == "" {
		logger.Error("Owner credentials not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "owner account not configured"})
		return
	}

	if !strings.EqualFold(req.Email, ownerEmail) ||
		bcrypt.CompareHashAndPassword([]byte(ownerHash), []byte(req.Password)) != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(ownerEmail, ownerEmail, ownerTokenDuration)
	if err != nil {
		logger.Error("Failed to generate token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	session := utils.OwnerSession{
		Email:         ownerEmail,
		IP:            c.ClientIP(),
		UserAgent:     c.Request.UserAgent(),
		CreatedAt:     time.Now().UTC(),
		LastUpdatedAt: time.Now().UTC(),
	}
	if err := utils.SaveOwnerSession(utils.GetAuthCacheClient(), utils.HashToken(token), session); err != nil {
		logger.Error("Failed to store owner session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"email":     ownerEmail,
		"expiresIn": int(ownerTokenDuration.Seconds()),
	})
}

// LogoutHandler revokes the current session token.
func LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing bearer token"})
		return
	}

	if err := utils.DeleteOwnerSession(utils.GetAuthCacheClient(), utils.HashToken(token)); err != nil {
		logger.Error("Failed to delete owner session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
