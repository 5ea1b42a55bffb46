// Package httpapi exposes the profiling pipeline over HTTP: one submission
// endpoint per survey, a plan-generation endpoint and a chat pass-through.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

// NewRouter builds the gin engine with logging, recovery and CORS middleware
// and all API routes registered.
func NewRouter(engine *profilersdk.Engine, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.Default())

	h := &handler{engine: engine, log: log}

	router.GET("/healthz", h.health)

	api := router.Group("/api/v1")
	{
		api.POST("/surveys/attitude", h.submitAttitude)
		api.POST("/surveys/typology", h.submitTypology)
		api.POST("/surveys/values", h.submitValues)
		api.POST("/plan", h.buildPlan)
		api.POST("/chat", h.chat)
		api.GET("/stats", h.stats)
	}
	return router
}

// requestLogger logs one line per request with latency and status.
func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
