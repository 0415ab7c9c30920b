package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLiveness handles GET /health/live.
func (s *Server) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReadiness handles GET /health/ready. Readiness degrades when the
// store is unreachable.
func (s *Server) GetReadiness(c *gin.Context) {
	checks := make(map[string]string)
	httpStatus := http.StatusOK
	overall := "ok"

	if err := s.db.Ping(c.Request.Context()); err != nil {
		checks["database"] = "error"
		overall = "degraded"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	c.JSON(httpStatus, gin.H{"status": overall, "checks": checks})
}
