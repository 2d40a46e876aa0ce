package httpserver

import (
	"net/http"

	pkgErrors "voice-task-assistant/pkg/errors"
	"voice-task-assistant/pkg/response"

	"github.com/gin-gonic/gin"
)

var errStoreUnavailable = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "task storage unavailable")

const (
	HealthMessage = "Voice task assistant is listening"
	HealthVersion = "1.0.0"
	ServiceName   = "voice-task-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the task store can be reached.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "Task store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	if err := srv.taskUC.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck: %v", err)
		response.Error(c, errStoreUnavailable, nil)
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
