package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHour   = 9
	defaultMinute = 0

	// "tonight" without a time of day means 20:00.
	eveningHour = 20

	// maxRelativeAmount bounds "in N minutes|hours|days|weeks".
	maxRelativeAmount = 9999
)

// Parser converts natural-language deadline phrases to absolute time.Time values.
type Parser struct {
	location      *time.Location
	order         DateOrder
	defaultHour   int
	defaultMinute int
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty string or "Local" uses the machine's local clock.
func NewParser(timezone string, opts ...Option) (*Parser, error) {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}

	p := &Parser{
		location:      loc,
		order:         MonthFirst,
		defaultHour:   defaultHour,
		defaultMinute: defaultMinute,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Location returns the timezone all results are expressed in.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse resolves a deadline phrase such as "next friday at 5pm" relative to now.
// It returns false only when text is empty.
//
// Layers are applied in order and each one may override the previous:
// base phrase, relative day offset, weekday name, explicit numeric date.
// The time of day is resolved independently and defaults to 09:00 (20:00 for
// "tonight").
func (p *Parser) Parse(text string, now time.Time) (time.Time, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return time.Time{}, false
	}
	now = now.In(p.location)

	if d, ok := parseRelativeDuration(text); ok {
		return now.Add(d), true
	}

	base, hasBase := p.baseDate(text, now)
	if b, ok := parseRelativeDays(text, now); ok {
		base, hasBase = b, true
	}
	if b, ok := parseWeekday(text, now); ok {
		base, hasBase = b, true
	}

	rest := text
	if b, span, ok := p.parseExplicitDate(text, now); ok {
		base, hasBase = b, true
		rest = text[:span[0]] + " " + text[span[1]:]
	}

	hour, minute, ok := p.parseTimeOfDay(rest)
	if !ok {
		hour, minute = p.defaultHour, p.defaultMinute
		if strings.Contains(text, "tonight") {
			hour, minute = eveningHour, 0
		}
	}

	if !hasBase {
		candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, p.location)
		if candidate.Before(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}
		return candidate, true
	}

	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, p.location), true
}

// baseDate scans for the fixed relative phrases; the first one found wins.
func (p *Parser) baseDate(text string, now time.Time) (time.Time, bool) {
	for _, bp := range basePhrases {
		if strings.Contains(text, bp.phrase) {
			return bp.resolve(now), true
		}
	}
	return time.Time{}, false
}

type basePhrase struct {
	phrase  string
	resolve func(now time.Time) time.Time
}

// "day after tomorrow" and "this weekend" are listed before the phrases they contain.
var basePhrases = []basePhrase{
	{"next week", func(now time.Time) time.Time { return now.AddDate(0, 0, 7) }},
	{"next month", func(now time.Time) time.Time { return now.AddDate(0, 0, 30) }},
	{"next year", func(now time.Time) time.Time { return now.AddDate(0, 0, 365) }},
	{"today", func(now time.Time) time.Time { return now }},
	{"tonight", func(now time.Time) time.Time { return now }},
	{"day after tomorrow", func(now time.Time) time.Time { return now.AddDate(0, 0, 2) }},
	{"tomorrow", func(now time.Time) time.Time { return now.AddDate(0, 0, 1) }},
	{"this weekend", func(now time.Time) time.Time { return now.AddDate(0, 0, daysUntil(now.Weekday(), time.Saturday)) }},
	{"this week", func(now time.Time) time.Time { return now.AddDate(0, 0, daysUntil(now.Weekday(), now.Weekday())) }},
}

var (
	reRelativeDuration = regexp.MustCompile(`\bin\s+(\d+|an?|one|the next)\s+(minute|min|hour|hr)s?\b`)
	reRelativeDays     = regexp.MustCompile(`\bin\s+(\d+|an?|one|the next)\s+(day|week)s?\b`)
)

// parseRelativeDuration handles "in 30 minutes", "in an hour", "in the next hour".
func parseRelativeDuration(text string) (time.Duration, bool) {
	m := reRelativeDuration.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return 0, false
	}
	if strings.HasPrefix(m[2], "h") {
		return time.Duration(amount) * time.Hour, true
	}
	return time.Duration(amount) * time.Minute, true
}

// parseRelativeDays handles "in 3 days", "in 2 weeks".
func parseRelativeDays(text string, now time.Time) (time.Time, bool) {
	m := reRelativeDays.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return time.Time{}, false
	}
	if m[2] == "week" {
		amount *= 7
	}
	return now.AddDate(0, 0, amount), true
}

// parseAmount reads a digit or article amount. Numbers that do not fit or exceed
// maxRelativeAmount are not a relative phrase.
func parseAmount(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' {
		return 1, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > maxRelativeAmount {
		return 0, false
	}
	return n, true
}

var weekdayPatterns = []struct {
	day     time.Weekday
	pattern *regexp.Regexp
}{
	{time.Monday, regexp.MustCompile(`\b(monday|mon)\b`)},
	{time.Tuesday, regexp.MustCompile(`\b(tuesday|tues|tue)\b`)},
	{time.Wednesday, regexp.MustCompile(`\b(wednesday|wed)\b`)},
	{time.Thursday, regexp.MustCompile(`\b(thursday|thurs|thur|thu)\b`)},
	{time.Friday, regexp.MustCompile(`\b(friday|fri)\b`)},
	{time.Saturday, regexp.MustCompile(`\b(saturday|sat)\b`)},
	{time.Sunday, regexp.MustCompile(`\b(sunday|sun)\b`)},
}

// parseWeekday returns the next occurrence of the first weekday named in text,
// strictly after today.
func parseWeekday(text string, now time.Time) (time.Time, bool) {
	for _, wp := range weekdayPatterns {
		if wp.pattern.MatchString(text) {
			return now.AddDate(0, 0, daysUntil(now.Weekday(), wp.day)), true
		}
	}
	return time.Time{}, false
}

// daysUntil counts days from one weekday to the next occurrence of another, 1..7.
func daysUntil(from, to time.Weekday) int {
	days := (int(to) - int(from) + 7) % 7
	if days == 0 {
		days = 7
	}
	return days
}

var reExplicitDate = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})(?:[/.\-](\d{4}|\d{2}))?\b`)

// parseExplicitDate handles "3/4", "3-4", "3.4" and "3/4/2025". It also returns the
// byte span of the match so the caller can exclude it from time scanning.
func (p *Parser) parseExplicitDate(text string, now time.Time) (time.Time, []int, bool) {
	loc := reExplicitDate.FindStringSubmatchIndex(text)
	if loc == nil {
		return time.Time{}, nil, false
	}
	first, _ := strconv.Atoi(text[loc[2]:loc[3]])
	second, _ := strconv.Atoi(text[loc[4]:loc[5]])

	year := now.Year()
	explicitYear := loc[6] >= 0
	if explicitYear {
		year, _ = strconv.Atoi(text[loc[6]:loc[7]])
		if year < 100 {
			year += 2000
		}
	}

	month, day := first, second
	if p.order == DayFirst {
		month, day = second, first
	}
	if !validDate(year, month, day) {
		month, day = day, month
		if !validDate(year, month, day) {
			return time.Time{}, nil, false
		}
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	if !explicitYear && date.Before(p.StartOfDay(now)) {
		date = date.AddDate(1, 0, 0)
	}
	return date, loc[:2], true
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= lastDay
}

var (
	reMeridiemTime = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reClockTime    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

// parseTimeOfDay handles "5pm", "8:30 am" and 24-hour "17:30". ok is false when
// text names no valid time.
func (p *Parser) parseTimeOfDay(text string) (hour, minute int, ok bool) {
	var meridiem string

	if m := reMeridiemTime.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem = m[3]
	} else if m := reClockTime.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minute, _ = strconv.Atoi(m[2])
	} else {
		return 0, 0, false
	}

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns the last representable instant of the given day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	start := p.StartOfDay(t)
	offset := (int(start.Weekday()) + 6) % 7
	return start.AddDate(0, 0, -offset)
}
