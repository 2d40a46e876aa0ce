package assistant

// Spoken messages
const (
	MsgDidNotCatch   = "Sorry, I did not catch that."
	MsgUnknown       = "Sorry, I don't know how to do that yet. Say help to hear what I can do."
	MsgStorageFailed = "Sorry, I could not save that change. Please try again."
	MsgGoodbye       = "Goodbye."
	MsgHelp          = "You can say: add task buy milk by tomorrow 5pm priority high; what are my tasks today; " +
		"tasks this week; overdue tasks; mark task completed buy milk; delete task buy milk; " +
		"set priority of buy milk to low; categorize buy milk as shopping; show tasks in shopping category; " +
		"remind me about buy milk 15 minutes before; task statistics; daily summary."
)
