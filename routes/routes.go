package routes

import (
	"net/http"
	"os"
	"strings"

	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	analysis *controllers.AnalysisController,
	history *controllers.HistoryController,
	realtime *controllers.RealtimeController,
) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsCfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	auth := r.Group("/auth")
	{
		auth.POST("/token", controllers.IssueToken)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/analyze", analysis.Analyze)
		api.GET("/history", history.GetHistory)
		api.GET("/ws", realtime.AnalysisWS)
	}

	return r
}
