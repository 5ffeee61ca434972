package shared

import "time"

// Period names a "now"-relative calendar window used to scope aggregate
// queries on the dashboard.
type Period string

const (
	PeriodToday    Period = "today"
	PeriodWeek     Period = "week"
	PeriodBiweekly Period = "biweekly"
	PeriodMonth    Period = "month"
	PeriodSemester Period = "semester"
	PeriodYear     Period = "year"
)

// Range is a concrete [From, To] window, both bounds inclusive.
type Range struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// ResolveRange maps a period to a concrete range anchored at now. To is
// always the end of the current day. Unknown periods behave like "today"
// rather than erroring.
func ResolveRange(period Period, weekStartsOnMonday bool, now time.Time) Range {
	year, month, day := now.Date()
	loc := now.Location()
	to := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), loc)

	var from time.Time
	switch period {
	case PeriodWeek:
		weekday := int(now.Weekday()) // Sunday = 0
		diff := weekday
		if weekStartsOnMonday {
			if weekday == 0 {
				diff = 6
			} else {
				diff = weekday - 1
			}
		}
		start := now.AddDate(0, 0, -diff)
		from = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	case PeriodBiweekly:
		if day <= 15 {
			from = time.Date(year, month, 1, 0, 0, 0, 0, loc)
		} else {
			from = time.Date(year, month, 16, 0, 0, 0, 0, loc)
		}
	case PeriodMonth:
		from = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	case PeriodSemester:
		start := time.January
		if month >= time.July {
			start = time.July
		}
		from = time.Date(year, start, 1, 0, 0, 0, 0, loc)
	case PeriodYear:
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	default: // today, and any unrecognised period
		from = time.Date(year, month, day, 0, 0, 0, 0, loc)
	}

	return Range{From: from, To: to}
}

// DayKey truncates a timestamp to its ISO calendar date in UTC, the key used
// for per-day aggregation buckets.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
