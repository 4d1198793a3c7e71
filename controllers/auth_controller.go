package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
}

// POST /auth/token
// The dashboard identifies users by username only; this exchanges that
// username for a bearer token the protected routes require.
func IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	token, err := utils.GenerateJWT(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": req.Username})
}
