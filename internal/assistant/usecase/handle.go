package usecase

import (
	"context"
	"errors"
	"fmt"

	"voice-task-assistant/internal/assistant"
	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/router"
	"voice-task-assistant/internal/task"
	"voice-task-assistant/internal/task/format"
	"voice-task-assistant/pkg/speech"
)

// Handle classifies text and runs the matching task operation.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, text string) (assistant.Reply, error) {
	if speech.IsNoInput(text) {
		return assistant.Reply{Text: assistant.MsgDidNotCatch, Intent: router.IntentUnknown, NoInput: true}, nil
	}

	cmd := uc.router.Classify(ctx, text)
	uc.l.Infof(ctx, "assistant.usecase.Handle: user=%s intent=%s", sc.UserID, cmd.Intent)

	reply := assistant.Reply{Intent: cmd.Intent}
	msg, err := uc.dispatch(ctx, sc, cmd)
	switch {
	case err == nil:
		reply.Text = msg
	case errors.Is(err, task.ErrStorage):
		uc.l.Errorf(ctx, "assistant.usecase.Handle: intent=%s: %v", cmd.Intent, err)
		reply.Text = assistant.MsgStorageFailed
		return reply, err
	case errors.Is(err, task.ErrValidation):
		reply.Text = validationMessage(err)
	default:
		uc.l.Errorf(ctx, "assistant.usecase.Handle: intent=%s: %v", cmd.Intent, err)
		reply.Text = assistant.MsgUnknown
	}

	reply.Exit = cmd.Intent == router.IntentExit
	return reply, nil
}

func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, cmd router.RouterOutput) (string, error) {
	switch cmd.Intent {
	case router.IntentGreet:
		return format.Greeting(uc.now(), uc.name), nil
	case router.IntentHelp:
		return assistant.MsgHelp, nil
	case router.IntentExit:
		return assistant.MsgGoodbye, nil

	case router.IntentAddTask:
		t, err := uc.taskUC.Add(ctx, sc, task.AddInput{Title: cmd.Title, Deadline: cmd.Deadline, Priority: cmd.Priority})
		if err != nil {
			return "", err
		}
		return "Added task " + format.Task(t) + ".", nil

	case router.IntentListAll:
		tasks, err := uc.taskUC.List(ctx, sc, task.PeriodAll)
		if err != nil {
			return "", err
		}
		if len(tasks) == 0 {
			return "You have no tasks.", nil
		}
		return fmt.Sprintf("You have %d tasks: %s", len(tasks), format.List(tasks)), nil

	case router.IntentListToday:
		return uc.taskUC.Summary(ctx, sc, task.PeriodToday)
	case router.IntentListWeek:
		return uc.taskUC.Summary(ctx, sc, task.PeriodWeek)
	case router.IntentOverdue:
		return uc.taskUC.Summary(ctx, sc, task.PeriodOverdue)
	case router.IntentDailySummary:
		return uc.taskUC.Summary(ctx, sc, task.PeriodDaily)

	case router.IntentComplete:
		t, err := uc.taskUC.Complete(ctx, sc, cmd.Title)
		if err != nil || t == nil {
			return notFound(cmd.Title, "pending "), err
		}
		return fmt.Sprintf("Marked %s as completed.", t.Title), nil

	case router.IntentDelete:
		t, err := uc.taskUC.Delete(ctx, sc, cmd.Title)
		if err != nil || t == nil {
			return notFound(cmd.Title, ""), err
		}
		return fmt.Sprintf("Deleted task %s.", t.Title), nil

	case router.IntentSetPriority:
		t, err := uc.taskUC.SetPriority(ctx, sc, cmd.Title, cmd.Priority)
		if err != nil || t == nil {
			return notFound(cmd.Title, ""), err
		}
		return fmt.Sprintf("Set priority of %s to %s.", t.Title, t.Priority), nil

	case router.IntentSearch:
		tasks, err := uc.taskUC.Search(ctx, sc, cmd.Query)
		if err != nil {
			return "", err
		}
		return format.Search(cmd.Query, tasks), nil

	case router.IntentSetCategory:
		t, err := uc.taskUC.SetCategory(ctx, sc, cmd.Title, cmd.Category)
		if err != nil || t == nil {
			return notFound(cmd.Title, ""), err
		}
		return fmt.Sprintf("Filed %s under %s.", t.Title, t.Category), nil

	case router.IntentListCategory:
		tasks, err := uc.taskUC.ListByCategory(ctx, sc, cmd.Category)
		if err != nil {
			return "", err
		}
		return format.Category(cmd.Category, tasks), nil

	case router.IntentCategories:
		categories, err := uc.taskUC.Categories(ctx, sc)
		if err != nil {
			return "", err
		}
		return format.Categories(categories), nil

	case router.IntentSetReminder:
		t, err := uc.taskUC.SetReminder(ctx, sc, cmd.Title, cmd.Minutes)
		if err != nil || t == nil {
			return notFound(cmd.Title, "pending "), err
		}
		return fmt.Sprintf("I will remind you about %s %d minutes before it is due.", t.Title, t.ReminderMinutes), nil

	case router.IntentStatistics:
		stats, err := uc.taskUC.Statistics(ctx, sc)
		if err != nil {
			return "", err
		}
		return format.Statistics(stats), nil

	default:
		return assistant.MsgUnknown, nil
	}
}

func notFound(title, kind string) string {
	return fmt.Sprintf("I could not find a %stask named %s.", kind, title)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyTitle):
		return "Please tell me what the task is."
	case errors.Is(err, task.ErrEmptyCategory):
		return "Please tell me the category."
	case errors.Is(err, task.ErrEmptyQuery):
		return "Please tell me what to search for."
	default:
		return assistant.MsgUnknown
	}
}
