package controllers

import (
	"net/http"
	"strconv"

	"backend/repository"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	repo repository.AnalysisRepository
}

func NewHistoryController(repo repository.AnalysisRepository) *HistoryController {
	return &HistoryController{repo: repo}
}

// GET /history?limit=N
// Returns the authenticated user's past analyses, newest first.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no authenticated user"})
		return
	}

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := hc.repo.FindRecentByUser(username, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, records)
}
