package http

import (
	"voice-task-assistant/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Tasks are addressed by title, matching the voice commands.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("", mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.DELETE("", h.Delete)
		tasks.GET("/search", h.Search)
		tasks.GET("/categories", h.Categories)
		tasks.GET("/statistics", h.Statistics)
		tasks.GET("/summary", h.Summary)
		tasks.GET("/reminders", h.Reminders)
		tasks.POST("/complete", h.Complete)
		tasks.PATCH("/priority", h.SetPriority)
		tasks.PATCH("/category", h.SetCategory)
		tasks.PATCH("/reminder", h.SetReminder)
	}
}
