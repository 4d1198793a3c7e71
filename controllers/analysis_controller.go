package controllers

import (
	"encoding/base64"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	svc *services.AnalysisService
}

func NewAnalysisController(svc *services.AnalysisService) *AnalysisController {
	return &AnalysisController{svc: svc}
}

// POST /analyze
// A malformed body or undecodable image is the only client error; once the
// pipeline starts, the response is 200 unless a mandatory stage (storage,
// OCR) fails outright.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "detail": err.Error()})
		return
	}

	if username := c.GetString("username"); username != "" && username != req.User {
		c.JSON(http.StatusForbidden, gin.H{"error": "user does not match authenticated identity"})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image"})
		return
	}

	result, err := ac.svc.Analyze(c.Request.Context(), &req, image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "analysis failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
