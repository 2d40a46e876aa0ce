package router

import (
	"context"
	"testing"
	"time"

	"voice-task-assistant/pkg/datemath"
	"voice-task-assistant/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(log.NewNop())

	tests := []struct {
		message string
		want    RouterOutput
	}{
		{
			message: "add task: buy milk by tomorrow 5pm priority high",
			want:    RouterOutput{Intent: IntentAddTask, Title: "buy milk", Deadline: "tomorrow 5pm", Priority: "high"},
		},
		{
			message: "Add task work on report by friday",
			want:    RouterOutput{Intent: IntentAddTask, Title: "work on report", Deadline: "friday"},
		},
		{
			message: "create task call mom in 2 hours",
			want:    RouterOutput{Intent: IntentAddTask, Title: "call mom", Deadline: "in 2 hours"},
		},
		{
			message: "new task water plants next monday, urgent priority",
			want:    RouterOutput{Intent: IntentAddTask, Title: "water plants", Deadline: "next monday", Priority: "urgent"},
		},
		{
			message: "add task read a book",
			want:    RouterOutput{Intent: IntentAddTask, Title: "read a book"},
		},
		{
			message: "add task put shoes in box",
			want:    RouterOutput{Intent: IntentAddTask, Title: "put shoes in box"},
		},
		{
			message: "add task meet bob at 3pm",
			want:    RouterOutput{Intent: IntentAddTask, Title: "meet bob", Deadline: "3pm"},
		},
		{
			message: "add task pay rent on 3/4",
			want:    RouterOutput{Intent: IntentAddTask, Title: "pay rent", Deadline: "3/4"},
		},
		{
			message: "add task call the bank day after tomorrow",
			want:    RouterOutput{Intent: IntentAddTask, Title: "call the bank", Deadline: "day after tomorrow"},
		},
		{
			message: "add task call mom tomorrow at 5pm",
			want:    RouterOutput{Intent: IntentAddTask, Title: "call mom", Deadline: "tomorrow at 5pm"},
		},
		{
			message: "add task meet bob at 3pm today",
			want:    RouterOutput{Intent: IntentAddTask, Title: "meet bob", Deadline: "3pm today"},
		},
		{
			message: "add task call mom tonight",
			want:    RouterOutput{Intent: IntentAddTask, Title: "call mom", Deadline: "tonight"},
		},
		{
			message: "add task file report important priority",
			want:    RouterOutput{Intent: IntentAddTask, Title: "file report important priority"},
		},
		{message: "add task:", want: RouterOutput{Intent: IntentAddTask}},
		{message: "what are my tasks today?", want: RouterOutput{Intent: IntentListToday}},
		{message: "what are my tasks for today", want: RouterOutput{Intent: IntentListToday}},
		{message: "show my tasks this week", want: RouterOutput{Intent: IntentListWeek}},
		{message: "list all my tasks", want: RouterOutput{Intent: IntentListAll}},
		{message: "which tasks are overdue", want: RouterOutput{Intent: IntentOverdue}},
		{message: "mark task completed: buy milk", want: RouterOutput{Intent: IntentComplete, Title: "buy milk"}},
		{message: "mark buy milk as done", want: RouterOutput{Intent: IntentComplete, Title: "buy milk"}},
		{message: "complete task buy milk", want: RouterOutput{Intent: IntentComplete, Title: "buy milk"}},
		{message: "delete task: buy milk", want: RouterOutput{Intent: IntentDelete, Title: "buy milk"}},
		{message: "set priority of buy milk to high", want: RouterOutput{Intent: IntentSetPriority, Title: "buy milk", Priority: "high"}},
		{message: "search tasks for milk", want: RouterOutput{Intent: IntentSearch, Query: "milk"}},
		{message: "categorize buy milk as shopping", want: RouterOutput{Intent: IntentSetCategory, Title: "buy milk", Category: "shopping"}},
		{message: "set category of buy milk to groceries", want: RouterOutput{Intent: IntentSetCategory, Title: "buy milk", Category: "groceries"}},
		{message: "show tasks in work category", want: RouterOutput{Intent: IntentListCategory, Category: "work"}},
		{message: "list my categories", want: RouterOutput{Intent: IntentCategories}},
		{message: "remind me about buy milk 15 minutes before", want: RouterOutput{Intent: IntentSetReminder, Title: "buy milk", Minutes: 15}},
		{message: "remind me about buy milk", want: RouterOutput{Intent: IntentSetReminder, Title: "buy milk"}},
		{message: "task statistics", want: RouterOutput{Intent: IntentStatistics}},
		{message: "daily summary", want: RouterOutput{Intent: IntentDailySummary}},
		{message: "hello", want: RouterOutput{Intent: IntentGreet}},
		{message: "what can you do", want: RouterOutput{Intent: IntentHelp}},
		{message: "goodbye", want: RouterOutput{Intent: IntentExit}},
		{message: "sing me a song", want: RouterOutput{Intent: IntentUnknown}},
		{message: "   ", want: RouterOutput{Intent: IntentUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got := r.Classify(context.Background(), tt.message)
			got.Rule = ""
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyDeadlineResolves(t *testing.T) {
	r := New(log.NewNop())
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	now := time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		message string
		want    time.Time
	}{
		{message: "add task call mom tomorrow at 5pm", want: time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)},
		{message: "add task call mom tonight", want: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
		{message: "add task meet bob at 3pm today", want: time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC)},
		{message: "add task buy milk by tomorrow 5pm priority high", want: time.Date(2024, 1, 2, 17, 0, 0, 0, time.UTC)},
		{message: "add task call the bank day after tomorrow", want: time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			out := r.Classify(context.Background(), tt.message)
			got, ok := parser.Parse(out.Deadline, now)
			if !ok {
				t.Fatalf("Classify(%q) gave no deadline text", tt.message)
			}
			if !got.Equal(tt.want) {
				t.Errorf("deadline %q resolved to %v, want %v", out.Deadline, got, tt.want)
			}
		})
	}
}
