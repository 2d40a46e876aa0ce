// Package format renders tasks and aggregates as sentences for voice output.
package format

import (
	"fmt"
	"strings"
	"time"

	"voice-task-assistant/internal/model"
	"voice-task-assistant/internal/task"
)

// MaxSpokenItems caps how many tasks a summary reads out.
const MaxSpokenItems = 10

const (
	deadlineLayout = "Mon 03:04 PM"
	itemSeparator  = "; "
)

// Task renders one task, e.g. "[high] buy milk - Tue 05:00 PM (pending)".
func Task(t model.Task) string {
	when := "no deadline"
	if t.Deadline != nil {
		when = t.Deadline.Format(deadlineLayout)
	}
	status := "pending"
	if t.Completed {
		status = "done"
	}
	return fmt.Sprintf("[%s] %s - %s (%s)", t.Priority, t.Title, when, status)
}

// List joins at most MaxSpokenItems tasks.
func List(tasks []model.Task) string {
	if len(tasks) > MaxSpokenItems {
		tasks = tasks[:MaxSpokenItems]
	}
	parts := make([]string, 0, len(tasks))
	for _, t := range tasks {
		parts = append(parts, Task(t))
	}
	return strings.Join(parts, itemSeparator)
}

// Summary renders the spoken summary of a period's tasks.
// PeriodAll and PeriodDaily are not list views and render as "".
func Summary(period task.Period, tasks []model.Task) string {
	var empty, heading string
	switch period {
	case task.PeriodToday:
		empty, heading = "You have no tasks for today.", "Today's tasks: "
	case task.PeriodWeek:
		empty, heading = "You have no tasks this week.", "This week's tasks: "
	case task.PeriodOverdue:
		empty, heading = "You have no overdue tasks.", "Overdue tasks: "
	default:
		return ""
	}
	if len(tasks) == 0 {
		return empty
	}
	return heading + List(tasks)
}

// Statistics renders the aggregate counts.
func Statistics(s task.Statistics) string {
	if s.Total == 0 {
		return "You have no tasks yet."
	}
	return fmt.Sprintf(
		"You have %d tasks: %d completed, %d pending, %d overdue. Completion rate is %.1f percent. Pending by priority: %d high, %d normal, %d low.",
		s.Total, s.Completed, s.Pending, s.Overdue, s.CompletionRate,
		s.ByPriority[model.PriorityHigh], s.ByPriority[model.PriorityNormal], s.ByPriority[model.PriorityLow],
	)
}

// Daily combines today's tasks, overdue tasks and statistics.
func Daily(today, overdue []model.Task, s task.Statistics) string {
	return strings.Join([]string{
		Summary(task.PeriodToday, today),
		Summary(task.PeriodOverdue, overdue),
		Statistics(s),
	}, " ")
}

// Categories renders the category list.
func Categories(categories []string) string {
	if len(categories) == 0 {
		return "You have no task categories."
	}
	return "Your categories are: " + strings.Join(categories, ", ") + "."
}

// Category renders the tasks of one category.
func Category(category string, tasks []model.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("You have no tasks in %s.", category)
	}
	return fmt.Sprintf("Tasks in %s: %s", category, List(tasks))
}

// Search renders search results.
func Search(query string, tasks []model.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks match %q.", query)
	}
	return fmt.Sprintf("Found %d matching %s: %s", len(tasks), plural(len(tasks), "task"), List(tasks))
}

// Reminder renders the announcement for a task whose deadline is near.
func Reminder(t model.Task, now time.Time) string {
	if t.Deadline == nil {
		return fmt.Sprintf("Reminder: %s.", t.Title)
	}
	minutes := int(t.Deadline.Sub(now).Round(time.Minute) / time.Minute)
	if minutes <= 0 {
		return fmt.Sprintf("Reminder: %s is due now.", t.Title)
	}
	return fmt.Sprintf("Reminder: %s is due in %d %s, at %s.", t.Title, minutes, plural(minutes, "minute"), t.Deadline.Format("03:04 PM"))
}

// Greeting returns the time-of-day greeting followed by an offer to help.
func Greeting(now time.Time, name string) string {
	var part string
	switch hour := now.Hour(); {
	case hour <= 12:
		part = "Good morning."
	case hour <= 18:
		part = "Good afternoon."
	default:
		part = "Good evening."
	}
	if name == "" {
		return part + " How can I help you?"
	}
	return fmt.Sprintf("%s I am %s. How can I help you?", part, name)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
