package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"frizo/offering_engine/internal/logger"
	"frizo/offering_engine/internal/metrics"
	"frizo/offering_engine/internal/submission"
	"frizo/offering_engine/internal/version"
)

// Server HTTP surface of the engine: calculator, tier tables, and investment intake.
type Server struct {
	store   submission.Store
	metrics *metrics.Metrics
	log     *logger.Logger
	now     func() time.Time
}

func NewServer(store submission.Store, m *metrics.Metrics, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	if m == nil {
		m = metrics.New()
	}
	return &Server{
		store:   store,
		metrics: m,
		log:     log.With("component", "api"),
		now:     time.Now,
	}
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    version.Name,
			"version": version.Short(),
		})
	})
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/tiers", s.ListTiers)
		api.GET("/calculate", s.Calculate)

		api.POST("/investments", s.CreateInvestment)
		api.GET("/investments", s.ListInvestments)
		api.GET("/investments/:id", s.GetInvestment)
	}

	return router
}

// requestLogger logs one line per request and records its latency.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		s.metrics.ObserveRequest(c.Request.Method, route, status, elapsed)

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", elapsed,
			"client_ip", c.ClientIP(),
		}
		switch {
		case status >= http.StatusInternalServerError:
			s.log.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			s.log.Warn("request rejected", fields...)
		default:
			s.log.Debug("request served", fields...)
		}
	}
}
