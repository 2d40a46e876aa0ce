package http

import (
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title    string `json:"title"    binding:"required,max=255"`
	Deadline string `json:"deadline" binding:"max=255"`
	Priority string `json:"priority" binding:"max=32"`
}

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:    r.Title,
		Deadline: r.Deadline,
		Priority: r.Priority,
	}
}

type listReq struct {
	Period   string `form:"period"`
	Category string `form:"category"`
}

type titleReq struct {
	Title string `json:"title" form:"title" binding:"required"`
}

type priorityReq struct {
	Title    string `json:"title"    binding:"required"`
	Priority string `json:"priority" binding:"required"`
}

type categoryReq struct {
	Title    string `json:"title"    binding:"required"`
	Category string `json:"category" binding:"required"`
}

type reminderReq struct {
	Title   string `json:"title"   binding:"required"`
	Minutes int    `json:"minutes" binding:"min=0,max=10080"`
}

type searchReq struct {
	Query string `form:"q" binding:"required"`
}

type summaryReq struct {
	Period string `form:"period" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID              int64              `json:"id"`
	Title           string             `json:"title"`
	Priority        string             `json:"priority"`
	Deadline        *response.DateTime `json:"deadline"`
	Completed       bool               `json:"completed"`
	CompletedAt     *response.DateTime `json:"completed_at"`
	CreatedAt       response.DateTime  `json:"created_at"`
	Category        string             `json:"category,omitempty"`
	ReminderMinutes int                `json:"reminder_minutes,omitempty"`
	ReminderSet     bool               `json:"reminder_set,omitempty"`
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

type categoriesResp struct {
	Categories []string `json:"categories"`
}

type summaryResp struct {
	Period string `json:"period"`
	Text   string `json:"text"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Priority:        string(t.Priority),
		Completed:       t.Completed,
		CreatedAt:       response.DateTime(t.CreatedAt),
		Category:        t.Category,
		ReminderMinutes: t.ReminderMinutes,
		ReminderSet:     t.ReminderSet,
	}
	if t.Deadline != nil {
		d := response.DateTime(*t.Deadline)
		resp.Deadline = &d
	}
	if t.CompletedAt != nil {
		d := response.DateTime(*t.CompletedAt)
		resp.CompletedAt = &d
	}
	return resp
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, h.newTaskResp(t))
	}
	return listResp{Tasks: out, Count: len(out)}
}
