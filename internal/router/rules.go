package router

import (
	"regexp"
	"strconv"
	"strings"
)

type rule struct {
	name    string
	intent  Intent
	re      *regexp.Regexp
	extract func(m []string, out *RouterOutput)
}

var (
	reAddPriority = regexp.MustCompile(`(?i)[\s,]+(?:with\s+)?(?:priority\s+(high|normal|low|urgent)|(high|normal|low|urgent)\s+priority)\s*$`)
	// The rule that splits the title earliest wins; ties go to the first listed.
	reAddDeadline = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(.+?)\s+(by|due(?:\s+(?:by|on|at))?|before)\s+(.+)$`),
		// Weak connectors only split when a date-like word follows, so
		// "put shoes in box" keeps its title.
		regexp.MustCompile(`(?i)^(.+?)\s+(on|at|in|next|this)\s+((?:\d|(?:a|an|the\s+next)\s|(?:mon|tue|wed|thu|fri|sat|sun)[a-z]*\b|week|month|year).*)$`),
		regexp.MustCompile(`(?i)^(.+?)\s+(tomorrow|today|tonight|day\s+after\s+tomorrow)\b\s*(.*)$`),
	}
)

// defaultRules is ordered; the first matching rule wins.
func defaultRules() []rule {
	return []rule{
		{
			name:    "add_task",
			intent:  IntentAddTask,
			re:      regexp.MustCompile(`(?i)^(?:add|create|new)\s+(?:a\s+)?task\b[\s:,]*(.*)$`),
			extract: extractAddTask,
		},
		{
			name:   "complete_mark_as",
			intent: IntentComplete,
			re:     regexp.MustCompile(`(?i)^mark\s+(?:task\s+)?(.+?)\s+as\s+(?:done|complete|completed|finished)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title = m[1]
			},
		},
		{
			name:   "complete",
			intent: IntentComplete,
			re:     regexp.MustCompile(`(?i)^(?:mark\s+(?:task\s+)?(?:as\s+)?(?:completed?|done|finished)|(?:complete|finish)\s+(?:task)?)\s*[:,]?\s*(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title = m[1]
			},
		},
		{
			name:   "delete",
			intent: IntentDelete,
			re:     regexp.MustCompile(`(?i)^(?:delete|remove)\s+(?:the\s+)?task\s*[:,]?\s*(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title = m[1]
			},
		},
		{
			name:   "set_priority",
			intent: IntentSetPriority,
			re:     regexp.MustCompile(`(?i)^(?:set|change)\s+(?:the\s+)?priority\s+(?:of|for)\s+(.+?)\s+to\s+(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title, out.Priority = m[1], m[2]
			},
		},
		{
			name:   "set_category",
			intent: IntentSetCategory,
			re:     regexp.MustCompile(`(?i)^(?:categori[sz]e|file)\s+(.+?)\s+(?:as|under|in)\s+(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title, out.Category = m[1], m[2]
			},
		},
		{
			name:   "set_category_of",
			intent: IntentSetCategory,
			re:     regexp.MustCompile(`(?i)^(?:set|change)\s+(?:the\s+)?category\s+(?:of|for)\s+(.+?)\s+to\s+(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title, out.Category = m[1], m[2]
			},
		},
		{
			name:   "set_reminder",
			intent: IntentSetReminder,
			re:     regexp.MustCompile(`(?i)^(?:remind\s+me\s+(?:about|of)|set\s+(?:a\s+)?reminder\s+for)\s+(.+?)(?:\s+(\d+)\s+min(?:ute)?s?\s+before(?:hand)?)?$`),
			extract: func(m []string, out *RouterOutput) {
				out.Title = m[1]
				if m[2] != "" {
					out.Minutes, _ = strconv.Atoi(m[2])
				}
			},
		},
		{
			name:   "list_category",
			intent: IntentListCategory,
			re:     regexp.MustCompile(`(?i)^(?:show|list|what are)\s+(?:my\s+)?tasks\s+(?:in|under)\s+(?:the\s+)?(?:category\s+)?(.+?)(?:\s+category)?$`),
			extract: func(m []string, out *RouterOutput) {
				out.Category = m[1]
			},
		},
		{
			name:   "search",
			intent: IntentSearch,
			re:     regexp.MustCompile(`(?i)^(?:search|find|look\s+for)\s+(?:for\s+)?(?:tasks?\s+)?(?:about\s+|with\s+|for\s+|matching\s+)?(.+)$`),
			extract: func(m []string, out *RouterOutput) {
				out.Query = m[1]
			},
		},
		{name: "daily_summary", intent: IntentDailySummary, re: regexp.MustCompile(`(?i)\b(?:daily|day)\s+summary\b|\bbrief\s+me\b`)},
		{name: "statistics", intent: IntentStatistics, re: regexp.MustCompile(`(?i)\b(?:task\s+)?stat(?:istic)?s\b|\bhow\s+am\s+i\s+doing\b`)},
		{name: "categories", intent: IntentCategories, re: regexp.MustCompile(`(?i)\bcategories\b`)},
		{name: "overdue", intent: IntentOverdue, re: regexp.MustCompile(`(?i)\b(?:overdue|late|missed)\b`)},
		{name: "list_today", intent: IntentListToday, re: regexp.MustCompile(`(?i)\btasks?\b.*\btoday\b|\btoday'?s\s+tasks\b`)},
		{name: "list_week", intent: IntentListWeek, re: regexp.MustCompile(`(?i)\btasks?\b.*\b(?:this\s+)?week\b|\bweek'?s\s+tasks\b`)},
		{name: "list_all", intent: IntentListAll, re: regexp.MustCompile(`(?i)^(?:list|show)\s+(?:me\s+)?(?:all\s+)?(?:my\s+)?tasks$|^what\s+are\s+my\s+tasks\??$`)},
		{name: "exit", intent: IntentExit, re: regexp.MustCompile(`(?i)^(?:exit|quit|stop|goodbye|bye|go\s+to\s+sleep)\b`)},
		{name: "help", intent: IntentHelp, re: regexp.MustCompile(`(?i)^(?:help|what\s+can\s+you\s+do)\b`)},
		{name: "greet", intent: IntentGreet, re: regexp.MustCompile(`(?i)^(?:hello|hi|hey|good\s+(?:morning|afternoon|evening))\b|\b(?:wake\s+up|are\s+you\s+there)\b`)},
	}
}

// extractAddTask splits "buy milk by tomorrow 5pm priority high" into title,
// deadline and priority.
func extractAddTask(m []string, out *RouterOutput) {
	body := strings.TrimSpace(m[1])

	if pm := reAddPriority.FindStringSubmatchIndex(body); pm != nil {
		for _, g := range []int{2, 4} {
			if pm[g] >= 0 {
				out.Priority = body[pm[g]:pm[g+1]]
			}
		}
		body = strings.TrimSpace(body[:pm[0]])
	}

	out.Title = body
	var best []string
	for _, re := range reAddDeadline {
		dm := re.FindStringSubmatch(body)
		if dm != nil && (best == nil || len(dm[1]) < len(best[1])) {
			best = dm
		}
	}
	if best != nil {
		out.Title = strings.TrimSpace(best[1])
		out.Deadline = deadlineText(best[2], best[3])
	}
}

// deadlineText keeps connectors that carry meaning for the date parser
// ("in 2 days", "next friday", "tomorrow 5pm").
func deadlineText(connector, rest string) string {
	connector = strings.ToLower(strings.Join(strings.Fields(connector), " "))
	switch connector {
	case "by", "before", "on", "at", "due", "due by", "due on", "due at":
		return strings.TrimSpace(rest)
	default:
		return strings.TrimSpace(connector + " " + rest)
	}
}
