// internal/domain/schedule/resolver.go
package schedule

import "time"

// dateOnly truncates to midnight UTC so offsets count whole days
// regardless of the time-of-day or zone the caller passed in.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which would misplace dates in the
// week immediately before the anchor.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mod returns the mathematical modulus, always in [0, b).
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// cycleIndex maps a target date onto the repeating cycle. Requires a
// non-empty schedule.
func (s Schedule) cycleIndex(target time.Time) int {
	anchor := dateOnly(s[0].WeekStart)
	days := int(dateOnly(target).Sub(anchor).Hours() / 24)
	return mod(floorDiv(days, 7), len(s))
}

// Resolve returns the duty assignment in effect on target. The cycle
// repeats in both directions: dates before the first listed week wrap
// into the end of the cycle, dates past the last week wrap back to the
// start.
func (s Schedule) Resolve(target time.Time) (Assignment, error) {
	if len(s) == 0 {
		return Assignment{}, ErrEmptySchedule
	}
	entry := s[s.cycleIndex(target)]
	return Assignment{
		ReleaseArtistry: entry.ReleaseArtistry,
		FocusedWork:     entry.FocusedWork,
	}, nil
}

// WeekStartFor returns the anchor-aligned start of the week containing
// target. Every date in the same 7-day window maps to the same value.
func (s Schedule) WeekStartFor(target time.Time) time.Time {
	if len(s) == 0 {
		return dateOnly(target)
	}
	anchor := dateOnly(s[0].WeekStart)
	days := int(dateOnly(target).Sub(anchor).Hours() / 24)
	return anchor.AddDate(0, 0, floorDiv(days, 7)*7)
}

// CycleInfo describes the loaded cycle: its length in weeks and the
// first and last listed week-start dates.
func (s Schedule) CycleInfo() CycleInfo {
	if len(s) == 0 {
		return CycleInfo{}
	}
	return CycleInfo{
		CycleLength: len(s),
		StartDate:   FormatDate(s[0].WeekStart),
		EndDate:     FormatDate(s[len(s)-1].WeekStart),
	}
}
