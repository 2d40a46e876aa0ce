package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Rule names
const (
	RuleFallback = "fallback"
	RuleEmpty    = "empty"
)
