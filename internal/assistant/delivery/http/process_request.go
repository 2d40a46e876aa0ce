package http

import (
	"github.com/gin-gonic/gin"
)

// processCommandReq binds the command request body.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
