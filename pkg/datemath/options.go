package datemath

// DateOrder decides how an ambiguous numeric date such as "3/4" is read.
type DateOrder int

const (
	// MonthFirst reads "3/4" as March 4th.
	MonthFirst DateOrder = iota
	// DayFirst reads "3/4" as April 3rd.
	DayFirst
)

// ParseDateOrder maps a config value to a DateOrder. Unknown values yield MonthFirst.
func ParseDateOrder(s string) DateOrder {
	switch s {
	case "day_first", "dmy":
		return DayFirst
	default:
		return MonthFirst
	}
}

// Option configures a Parser.
type Option func(*Parser)

// WithDateOrder sets how ambiguous numeric dates are read.
func WithDateOrder(order DateOrder) Option {
	return func(p *Parser) {
		p.order = order
	}
}

// WithDefaultTime sets the time of day used when the text names no time.
func WithDefaultTime(hour, minute int) Option {
	return func(p *Parser) {
		if hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59 {
			p.defaultHour = hour
			p.defaultMinute = minute
		}
	}
}
