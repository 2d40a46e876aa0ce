package http

import (
	"github.com/gin-gonic/gin"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/pkg/response"
)

// httpScope identifies REST callers in logs.
var httpScope = model.Scope{UserID: "http"}

// Create godoc
// @Summary     Add a task
// @Description Creates a task; the deadline is natural language such as "tomorrow 5pm".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     503  {object} response.Resp "Storage unavailable"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Add(ctx, httpScope, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Lists all tasks, pending tasks due today or this week, overdue tasks, or one category.
// @Tags        Tasks
// @Produce     json
// @Param       period   query string false "today, week, overdue or all"
// @Param       category query string false "Category filter (overrides period)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	var tasks []model.Task
	if req.Category != "" {
		tasks, err = h.uc.ListByCategory(ctx, httpScope, req.Category)
	} else {
		var period task.Period
		if period, err = task.ParsePeriod(req.Period); err == nil {
			tasks, err = h.uc.List(ctx, httpScope, period)
		}
	}
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       title query string true "Task title (case-insensitive)"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTitleQuery(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respondTask(c, func() (*model.Task, error) {
		return h.uc.Delete(ctx, httpScope, req.Title)
	})
}

// Complete godoc
// @Summary     Mark a task completed
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body titleReq true "Task title"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSON[titleReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respondTask(c, func() (*model.Task, error) {
		return h.uc.Complete(ctx, httpScope, req.Title)
	})
}

// SetPriority godoc
// @Summary     Change a task's priority
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body priorityReq true "Title and priority"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/priority [PATCH]
func (h *handler) SetPriority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSON[priorityReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respondTask(c, func() (*model.Task, error) {
		return h.uc.SetPriority(ctx, httpScope, req.Title, req.Priority)
	})
}

// SetCategory godoc
// @Summary     File a task under a category
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body categoryReq true "Title and category"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/category [PATCH]
func (h *handler) SetCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSON[categoryReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respondTask(c, func() (*model.Task, error) {
		return h.uc.SetCategory(ctx, httpScope, req.Title, req.Category)
	})
}

// SetReminder godoc
// @Summary     Arm a reminder on a pending task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body reminderReq true "Title and lead time in minutes (default 30)"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/reminder [PATCH]
func (h *handler) SetReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := processJSON[reminderReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	h.respondTask(c, func() (*model.Task, error) {
		return h.uc.SetReminder(ctx, httpScope, req.Title, req.Minutes)
	})
}

// Search godoc
// @Summary     Search tasks by title
// @Tags        Tasks
// @Produce     json
// @Param       q query string true "Substring, case-insensitive"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	tasks, err := h.uc.Search(ctx, httpScope, req.Query)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(tasks))
}

// Categories godoc
// @Summary     List categories in use
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} categoriesResp
// @Router      /api/v1/tasks/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	categories, err := h.uc.Categories(c.Request.Context(), httpScope)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, categoriesResp{Categories: categories})
}

// Statistics godoc
// @Summary     Task statistics
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} task.Statistics
// @Router      /api/v1/tasks/statistics [GET]
func (h *handler) Statistics(c *gin.Context) {
	stats, err := h.uc.Statistics(c.Request.Context(), httpScope)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, stats)
}

// Summary godoc
// @Summary     Spoken summary
// @Tags        Tasks
// @Produce     json
// @Param       period query string true "today, week, overdue or daily"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	var req summaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	period, err := task.ParsePeriod(req.Period)
	if err == nil {
		var text string
		if text, err = h.uc.Summary(ctx, httpScope, period); err == nil {
			response.OK(c, summaryResp{Period: string(period), Text: text})
			return
		}
	}
	response.Error(c, h.mapError(err), nil)
}

// Reminders godoc
// @Summary     Tasks needing a reminder
// @Description Pending tasks due within the next hour that have not been reminded yet.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/reminders [GET]
func (h *handler) Reminders(c *gin.Context) {
	tasks, err := h.uc.NeedingReminders(c.Request.Context(), httpScope)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}
	response.OK(c, h.newListResp(tasks))
}

// respondTask writes the task returned by fn, 404 when fn found nothing.
func (h *handler) respondTask(c *gin.Context, fn func() (*model.Task, error)) {
	t, err := fn()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "task.delivery.http: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	if t == nil {
		response.Error(c, errTaskNotFound, nil)
		return
	}
	response.OK(c, h.newTaskResp(*t))
}
