package router

// Intent represents user's intention
type Intent string

const (
	IntentGreet        Intent = "GREET"
	IntentHelp         Intent = "HELP"
	IntentAddTask      Intent = "ADD_TASK"
	IntentListAll      Intent = "LIST_ALL"
	IntentListToday    Intent = "LIST_TODAY"
	IntentListWeek     Intent = "LIST_WEEK"
	IntentOverdue      Intent = "OVERDUE"
	IntentComplete     Intent = "COMPLETE"
	IntentDelete       Intent = "DELETE"
	IntentSetPriority  Intent = "SET_PRIORITY"
	IntentSearch       Intent = "SEARCH"
	IntentSetCategory  Intent = "SET_CATEGORY"
	IntentListCategory Intent = "LIST_CATEGORY"
	IntentCategories   Intent = "CATEGORIES"
	IntentSetReminder  Intent = "SET_REMINDER"
	IntentStatistics   Intent = "STATISTICS"
	IntentDailySummary Intent = "DAILY_SUMMARY"
	IntentExit         Intent = "EXIT"
	IntentUnknown      Intent = "UNKNOWN"
)

// RouterOutput is the classified command with its extracted arguments.
// Only the fields relevant to Intent are set.
type RouterOutput struct {
	Intent   Intent `json:"intent"`
	Title    string `json:"title,omitempty"`
	Deadline string `json:"deadline,omitempty"`
	Priority string `json:"priority,omitempty"`
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
	Minutes  int    `json:"minutes,omitempty"`
	Rule     string `json:"rule,omitempty"` // name of the pattern that matched
}
