package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/pkg/response"
)

// Command godoc
// @Summary     Run a voice command
// @Description Classifies a free-text command, runs it and returns the spoken reply.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command text"
// @Success     200  {object} commandResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply, err := h.uc.Handle(ctx, req.toScope(), req.Text)
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Command: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newCommandResp(reply))
}
