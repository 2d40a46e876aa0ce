package http

import (
	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
)

// --- Request DTOs ---

type commandReq struct {
	Text     string `json:"text" binding:"required,max=1000"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

func (r commandReq) toScope() model.Scope {
	if r.UserID == "" {
		return model.Scope{UserID: "http_anonymous", Username: r.Username}
	}
	return model.Scope{UserID: r.UserID, Username: r.Username}
}

// --- Response DTOs ---

type commandResp struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
	Exit   bool   `json:"exit,omitempty"`
}

func (h *handler) newCommandResp(r assistant.Reply) commandResp {
	return commandResp{
		Reply:  r.Text,
		Intent: string(r.Intent),
		Exit:   r.Exit,
	}
}
