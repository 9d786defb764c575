package work

import (
	"errors"
	"time"

	"github.com/stechuhr/internal/clock"
)

// =============================================================================
// WORK RULES CONFIGURATION
// =============================================================================
// Edit these values to match your local work regulations.
//
// To customize for your country/company:
// 1. Change DefaultWeeklyGoal to your standard work week
// 2. Change ShortBreakMinutes / LargeBreakMinutes to your break rules
// 3. Change EarliestStart to the earliest plausible workday start
// =============================================================================

const (
	// ShortBreakMinutes - mandatory break on a regular work day
	ShortBreakMinutes = 30

	// LargeBreakMinutes - mandatory break once the day crosses LongDayThreshold
	LargeBreakMinutes = 45

	// WorkDaysPerWeek - standard work week (typically 5)
	WorkDaysPerWeek = 5

	// DefaultWeeklyGoal - weekly working-hours goal when none is configured
	DefaultWeeklyGoal = "39:00"

	// EarliestStart - start times before this are lifted to it
	EarliestStart = "6:00"
)

const (
	ShortBreak = ShortBreakMinutes * time.Minute
	LargeBreak = LargeBreakMinutes * time.Minute

	// LongDayThreshold - elapsed time at which the default break grows to
	// the large break
	LongDayThreshold = 9*time.Hour + ShortBreak
)

// DefaultBreak returns the break to assume when none was recorded.
func DefaultBreak(elapsed time.Duration) time.Duration {
	if elapsed >= LongDayThreshold {
		return LargeBreak
	}
	return ShortBreak
}

// AccumulateBreaks sums explicit break spans and tracks the single longest
// one; ties keep the first maximum encountered. With no explicit breaks the
// default break rule applies and the total doubles as the longest.
func AccumulateBreaks(elapsed time.Duration, breaks []time.Duration) (total, longest time.Duration) {
	if len(breaks) == 0 {
		total = DefaultBreak(elapsed)
		return total, total
	}
	for _, b := range breaks {
		if b > longest {
			longest = b
		}
		total += b
	}
	return total, longest
}

// ResolveDailyGoal parses the daily goal when given, otherwise derives it
// from the weekly goal divided across the work days of a week. At least one
// of the two must be set.
func ResolveDailyGoal(daily, weekly string) (time.Duration, error) {
	if daily != "" {
		return clock.ParseSpan(daily)
	}
	if weekly == "" {
		return 0, errors.New("no daily or weekly work-hour goal given")
	}
	week, err := clock.ParseSpan(weekly)
	if err != nil {
		return 0, err
	}
	return week / WorkDaysPerWeek, nil
}

// ClampStart lifts start times before floor up to floor. The second return
// reports whether clamping happened.
func ClampStart(start, floor time.Time) (time.Time, bool) {
	if start.Before(floor) {
		return floor, true
	}
	return start, false
}
