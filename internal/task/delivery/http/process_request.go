package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

func (h *handler) processTitleQuery(c *gin.Context) (titleReq, error) {
	var req titleReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

// processJSON binds any JSON body request.
func processJSON[T any](c *gin.Context) (T, error) {
	var req T
	err := c.ShouldBindJSON(&req)
	return req, err
}
