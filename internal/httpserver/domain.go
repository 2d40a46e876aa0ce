package httpserver

import (
	"context"

	assistantHTTP "voice-task-assistant/internal/assistant/delivery/http"
	"voice-task-assistant/internal/middleware"
	taskHTTP "voice-task-assistant/internal/task/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupTaskDomain registers /api/v1/tasks.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered at /api/v1/tasks")
	return nil
}

// setupAssistantDomain registers /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered at /api/v1/assistant")
	return nil
}
