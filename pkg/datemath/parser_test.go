package datemath_test

import (
	"testing"
	"time"

	"voice-task-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	p, err := datemath.NewParser("")
	if err != nil {
		t.Fatalf("unexpected error creating local parser: %v", err)
	}
	if p.Location() != time.Local {
		t.Errorf("expected local location, got %v", p.Location())
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) // Monday
	at := func(month time.Month, day, hour, minute int) time.Time {
		return time.Date(2024, month, day, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{name: "Tomorrow at 5pm", text: "tomorrow at 5pm", want: at(1, 2, 17, 0)},
		{name: "Same weekday rolls a week", text: "monday", want: at(1, 8, 9, 0)},
		{name: "Abbreviated weekday", text: "fri", want: at(1, 5, 9, 0)},
		{name: "Next friday at 5pm", text: "next friday at 5pm", want: at(1, 5, 17, 0)},
		{name: "Weekday overrides tomorrow", text: "tomorrow or friday", want: at(1, 5, 9, 0)},
		{name: "Today keeps past default time", text: "today", want: at(1, 1, 9, 0)},
		{name: "Today with time", text: "today 6:30 pm", want: at(1, 1, 18, 30)},
		{name: "Next week", text: "next week", want: at(1, 8, 9, 0)},
		{name: "Next month is thirty days", text: "next month", want: at(1, 31, 9, 0)},
		{name: "Next year is 365 days", text: "next year", want: at(12, 31, 9, 0)},
		{name: "Day after tomorrow", text: "day after tomorrow", want: at(1, 3, 9, 0)},
		{name: "This week", text: "this week", want: at(1, 8, 9, 0)},
		{name: "This weekend", text: "this weekend at 10am", want: at(1, 6, 10, 0)},
		{name: "Time only in future", text: "5pm", want: at(1, 1, 17, 0)},
		{name: "Time only in past rolls a day", text: "8am", want: at(1, 2, 8, 0)},
		{name: "24 hour clock", text: "17:30", want: at(1, 1, 17, 30)},
		{name: "Minutes with meridiem", text: "tomorrow 9:15 pm", want: at(1, 2, 21, 15)},
		{name: "Twelve am is midnight", text: "tomorrow 12am", want: at(1, 2, 0, 0)},
		{name: "Twelve pm is noon", text: "12pm", want: at(1, 1, 12, 0)},
		{name: "Invalid hour falls back to default", text: "tomorrow 25:00", want: at(1, 2, 9, 0)},
		{name: "In the next hour", text: "in the next hour", want: at(1, 1, 11, 0)},
		{name: "In 30 minutes", text: "in 30 minutes", want: at(1, 1, 10, 30)},
		{name: "In 3 days", text: "in 3 days", want: at(1, 4, 9, 0)},
		{name: "In 2 weeks at 6pm", text: "in 2 weeks at 6pm", want: at(1, 15, 18, 0)},
		{name: "Explicit date month first", text: "3/4", want: at(3, 4, 9, 0)},
		{name: "Explicit date with dashes and time", text: "3-4 at 2pm", want: at(3, 4, 14, 0)},
		{name: "Explicit date overrides weekday", text: "monday 3.4", want: at(3, 4, 9, 0)},
		{name: "Impossible month swaps order", text: "25/12", want: at(12, 25, 9, 0)},
		{name: "Explicit year", text: "12/31/2023", want: time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC)},
		{name: "Month word is not a weekday", text: "next month at 8am", want: at(1, 31, 8, 0)},
		{name: "Upper case and spaces", text: "  Tomorrow AT 5PM ", want: at(1, 2, 17, 0)},
		{name: "Tonight defaults to the evening", text: "tonight", want: at(1, 1, 20, 0)},
		{name: "Tonight with time", text: "tonight at 9:30 pm", want: at(1, 1, 21, 30)},
		{name: "Huge hour amount is not relative", text: "in 3000000 hours", want: at(1, 2, 9, 0)},
		{name: "Overflowing minute amount is not relative", text: "in 99999999999999999999 minutes", want: at(1, 2, 9, 0)},
		{name: "Huge day amount is not relative", text: "in 10000 days", want: at(1, 2, 9, 0)},
		{name: "Largest relative amount", text: "in 9999 minutes", want: at(1, 8, 8, 39)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.Parse(tt.text, baseTime)
			if !ok {
				t.Fatalf("Parse(%q) returned no result", tt.text)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) got = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	if _, ok := parser.Parse("   ", time.Now()); ok {
		t.Error("expected no result for blank text")
	}
}

func TestParseDateOrder(t *testing.T) {
	baseTime := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		order datemath.DateOrder
		text  string
		want  time.Time
	}{
		{name: "Month first", order: datemath.MonthFirst, text: "3/4", want: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
		{name: "Day first", order: datemath.DayFirst, text: "3/4", want: time.Date(2024, 4, 3, 9, 0, 0, 0, time.UTC)},
		{name: "Day first impossible month swaps", order: datemath.DayFirst, text: "12/25", want: time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser, _ := datemath.NewParser("UTC", datemath.WithDateOrder(tt.order))
			got, _ := parser.Parse(tt.text, baseTime)
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) got = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParsePassedDateRollsToNextYear(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	got, _ := parser.Parse("3/4", baseTime)
	want := time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestParseWeekendFromSaturday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	saturday := time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)

	got, _ := parser.Parse("this weekend", saturday)
	want := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestWithDefaultTime(t *testing.T) {
	parser, _ := datemath.NewParser("UTC", datemath.WithDefaultTime(18, 0))
	got, _ := parser.Parse("tomorrow", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	want := time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestDayBoundaries(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	wednesday := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	if got, want := parser.StartOfDay(wednesday), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfDay() got = %v, want %v", got, want)
	}
	if got, want := parser.EndOfDay(wednesday), time.Date(2024, 5, 1, 23, 59, 59, 999999999, time.UTC); !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
	if got, want := parser.StartOfWeek(wednesday), time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfWeek() got = %v, want %v", got, want)
	}

	sunday := time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC)
	if got, want := parser.StartOfWeek(sunday), time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("StartOfWeek(sunday) got = %v, want %v", got, want)
	}
}

func TestParseDateOrderConfig(t *testing.T) {
	if datemath.ParseDateOrder("day_first") != datemath.DayFirst {
		t.Error("expected day_first to map to DayFirst")
	}
	if datemath.ParseDateOrder("whatever") != datemath.MonthFirst {
		t.Error("expected unknown value to map to MonthFirst")
	}
}
